// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"staffhub/ent/applicationhistory"
	"staffhub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ApplicationHistory is the model entity for the ApplicationHistory schema.
type ApplicationHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// PreviousStatus holds the value of the "previous_status" field.
	PreviousStatus string `json:"previous_status,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// DecisionReason holds the value of the "decision_reason" field.
	DecisionReason *models.DecisionReason `json:"decision_reason,omitempty"`
	// NotifyCandidate holds the value of the "notify_candidate" field.
	NotifyCandidate bool `json:"notify_candidate,omitempty"`
	// NotifyClient holds the value of the "notify_client" field.
	NotifyClient bool `json:"notify_client,omitempty"`
	// FollowUp holds the value of the "follow_up" field.
	FollowUp *models.FollowUp `json:"follow_up,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ApplicationHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case applicationhistory.FieldDecisionReason, applicationhistory.FieldFollowUp:
			values[i] = new([]byte)
		case applicationhistory.FieldNotifyCandidate, applicationhistory.FieldNotifyClient:
			values[i] = new(sql.NullBool)
		case applicationhistory.FieldStatus, applicationhistory.FieldPreviousStatus, applicationhistory.FieldNotes:
			values[i] = new(sql.NullString)
		case applicationhistory.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case applicationhistory.FieldID, applicationhistory.FieldApplicationID, applicationhistory.FieldOrganizationID, applicationhistory.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ApplicationHistory fields.
func (ah *ApplicationHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case applicationhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ah.ID = *value
			}
		case applicationhistory.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				ah.ApplicationID = *value
			}
		case applicationhistory.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ah.Status = value.String
			}
		case applicationhistory.FieldPreviousStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field previous_status", values[i])
			} else if value.Valid {
				ah.PreviousStatus = value.String
			}
		case applicationhistory.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				ah.Notes = value.String
			}
		case applicationhistory.FieldDecisionReason:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field decision_reason", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ah.DecisionReason); err != nil {
					return fmt.Errorf("unmarshal field decision_reason: %w", err)
				}
			}
		case applicationhistory.FieldNotifyCandidate:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field notify_candidate", values[i])
			} else if value.Valid {
				ah.NotifyCandidate = value.Bool
			}
		case applicationhistory.FieldNotifyClient:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field notify_client", values[i])
			} else if value.Valid {
				ah.NotifyClient = value.Bool
			}
		case applicationhistory.FieldFollowUp:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field follow_up", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ah.FollowUp); err != nil {
					return fmt.Errorf("unmarshal field follow_up: %w", err)
				}
			}
		case applicationhistory.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				ah.OrganizationID = *value
			}
		case applicationhistory.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				ah.CreatedBy = *value
			}
		case applicationhistory.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ah.CreatedAt = value.Time
			}
		default:
			ah.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ApplicationHistory.
// This includes values selected through modifiers, order, etc.
func (ah *ApplicationHistory) Value(name string) (ent.Value, error) {
	return ah.selectValues.Get(name)
}

// Update returns a builder for updating this ApplicationHistory.
// Note that you need to call ApplicationHistory.Unwrap() before calling this method if this ApplicationHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (ah *ApplicationHistory) Update() *ApplicationHistoryUpdateOne {
	return NewApplicationHistoryClient(ah.config).UpdateOne(ah)
}

// Unwrap unwraps the ApplicationHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ah *ApplicationHistory) Unwrap() *ApplicationHistory {
	_tx, ok := ah.config.driver.(*txDriver)
	if !ok {
		panic("ent: ApplicationHistory is not a transactional entity")
	}
	ah.config.driver = _tx.drv
	return ah
}

// String implements the fmt.Stringer.
func (ah *ApplicationHistory) String() string {
	var builder strings.Builder
	builder.WriteString("ApplicationHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ah.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", ah.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(ah.Status)
	builder.WriteString(", ")
	builder.WriteString("previous_status=")
	builder.WriteString(ah.PreviousStatus)
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(ah.Notes)
	builder.WriteString(", ")
	builder.WriteString("decision_reason=")
	builder.WriteString(fmt.Sprintf("%v", ah.DecisionReason))
	builder.WriteString(", ")
	builder.WriteString("notify_candidate=")
	builder.WriteString(fmt.Sprintf("%v", ah.NotifyCandidate))
	builder.WriteString(", ")
	builder.WriteString("notify_client=")
	builder.WriteString(fmt.Sprintf("%v", ah.NotifyClient))
	builder.WriteString(", ")
	builder.WriteString("follow_up=")
	builder.WriteString(fmt.Sprintf("%v", ah.FollowUp))
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", ah.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", ah.CreatedBy))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ah.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ApplicationHistories is a parsable slice of ApplicationHistory.
type ApplicationHistories []*ApplicationHistory
