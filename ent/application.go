// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"staffhub/ent/application"
	"staffhub/ent/requirement"
	"staffhub/ent/resource"
	"staffhub/ent/user"
	"staffhub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Application is the model entity for the Application schema.
type Application struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// RequirementID holds the value of the "requirement_id" field.
	RequirementID uuid.UUID `json:"requirement_id,omitempty"`
	// ResourceID holds the value of the "resource_id" field.
	ResourceID uuid.UUID `json:"resource_id,omitempty"`
	// Status holds the value of the "status" field.
	Status application.Status `json:"status,omitempty"`
	// ApplicationType holds the value of the "application_type" field.
	ApplicationType application.ApplicationType `json:"application_type,omitempty"`
	// OrganizationID holds the value of the "organization_id" field.
	OrganizationID uuid.UUID `json:"organization_id,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// ProposedRate holds the value of the "proposed_rate" field.
	ProposedRate *models.ProposedRate `json:"proposed_rate,omitempty"`
	// Availability holds the value of the "availability" field.
	Availability *models.Availability `json:"availability,omitempty"`
	// WorkflowInstanceID holds the value of the "workflow_instance_id" field.
	WorkflowInstanceID *uuid.UUID `json:"workflow_instance_id,omitempty"`
	// WorkflowStatus holds the value of the "workflow_status" field.
	WorkflowStatus application.WorkflowStatus `json:"workflow_status,omitempty"`
	// CurrentWorkflowStep holds the value of the "current_workflow_step" field.
	CurrentWorkflowStep int `json:"current_workflow_step,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ApplicationQuery when eager-loading is set.
	Edges        ApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ApplicationEdges holds the relations/edges for other nodes in the graph.
type ApplicationEdges struct {
	// Requirement holds the value of the requirement edge.
	Requirement *Requirement `json:"requirement,omitempty"`
	// Resource holds the value of the resource edge.
	Resource *Resource `json:"resource,omitempty"`
	// Creator holds the value of the creator edge.
	Creator *User `json:"creator,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// RequirementOrErr returns the Requirement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) RequirementOrErr() (*Requirement, error) {
	if e.Requirement != nil {
		return e.Requirement, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: requirement.Label}
	}
	return nil, &NotLoadedError{edge: "requirement"}
}

// ResourceOrErr returns the Resource value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) ResourceOrErr() (*Resource, error) {
	if e.Resource != nil {
		return e.Resource, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: resource.Label}
	}
	return nil, &NotLoadedError{edge: "resource"}
}

// CreatorOrErr returns the Creator value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ApplicationEdges) CreatorOrErr() (*User, error) {
	if e.Creator != nil {
		return e.Creator, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "creator"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Application) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case application.FieldWorkflowInstanceID, application.FieldUpdatedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case application.FieldProposedRate, application.FieldAvailability:
			values[i] = new([]byte)
		case application.FieldCurrentWorkflowStep:
			values[i] = new(sql.NullInt64)
		case application.FieldStatus, application.FieldApplicationType, application.FieldNotes, application.FieldWorkflowStatus:
			values[i] = new(sql.NullString)
		case application.FieldCreatedAt, application.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case application.FieldID, application.FieldRequirementID, application.FieldResourceID, application.FieldOrganizationID, application.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Application fields.
func (a *Application) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case application.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				a.ID = *value
			}
		case application.FieldRequirementID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field requirement_id", values[i])
			} else if value != nil {
				a.RequirementID = *value
			}
		case application.FieldResourceID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field resource_id", values[i])
			} else if value != nil {
				a.ResourceID = *value
			}
		case application.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				a.Status = application.Status(value.String)
			}
		case application.FieldApplicationType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field application_type", values[i])
			} else if value.Valid {
				a.ApplicationType = application.ApplicationType(value.String)
			}
		case application.FieldOrganizationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field organization_id", values[i])
			} else if value != nil {
				a.OrganizationID = *value
			}
		case application.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				a.Notes = value.String
			}
		case application.FieldProposedRate:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field proposed_rate", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.ProposedRate); err != nil {
					return fmt.Errorf("unmarshal field proposed_rate: %w", err)
				}
			}
		case application.FieldAvailability:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field availability", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &a.Availability); err != nil {
					return fmt.Errorf("unmarshal field availability: %w", err)
				}
			}
		case application.FieldWorkflowInstanceID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_instance_id", values[i])
			} else if value.Valid {
				a.WorkflowInstanceID = new(uuid.UUID)
				*a.WorkflowInstanceID = *value.S.(*uuid.UUID)
			}
		case application.FieldWorkflowStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_status", values[i])
			} else if value.Valid {
				a.WorkflowStatus = application.WorkflowStatus(value.String)
			}
		case application.FieldCurrentWorkflowStep:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field current_workflow_step", values[i])
			} else if value.Valid {
				a.CurrentWorkflowStep = int(value.Int64)
			}
		case application.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				a.CreatedBy = *value
			}
		case application.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				a.UpdatedBy = new(uuid.UUID)
				*a.UpdatedBy = *value.S.(*uuid.UUID)
			}
		case application.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				a.CreatedAt = value.Time
			}
		case application.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				a.UpdatedAt = value.Time
			}
		default:
			a.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Application.
// This includes values selected through modifiers, order, etc.
func (a *Application) Value(name string) (ent.Value, error) {
	return a.selectValues.Get(name)
}

// QueryRequirement queries the "requirement" edge of the Application entity.
func (a *Application) QueryRequirement() *RequirementQuery {
	return NewApplicationClient(a.config).QueryRequirement(a)
}

// QueryResource queries the "resource" edge of the Application entity.
func (a *Application) QueryResource() *ResourceQuery {
	return NewApplicationClient(a.config).QueryResource(a)
}

// QueryCreator queries the "creator" edge of the Application entity.
func (a *Application) QueryCreator() *UserQuery {
	return NewApplicationClient(a.config).QueryCreator(a)
}

// Update returns a builder for updating this Application.
// Note that you need to call Application.Unwrap() before calling this method if this Application
// was returned from a transaction, and the transaction was committed or rolled back.
func (a *Application) Update() *ApplicationUpdateOne {
	return NewApplicationClient(a.config).UpdateOne(a)
}

// Unwrap unwraps the Application entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (a *Application) Unwrap() *Application {
	_tx, ok := a.config.driver.(*txDriver)
	if !ok {
		panic("ent: Application is not a transactional entity")
	}
	a.config.driver = _tx.drv
	return a
}

// String implements the fmt.Stringer.
func (a *Application) String() string {
	var builder strings.Builder
	builder.WriteString("Application(")
	builder.WriteString(fmt.Sprintf("id=%v, ", a.ID))
	builder.WriteString("requirement_id=")
	builder.WriteString(fmt.Sprintf("%v", a.RequirementID))
	builder.WriteString(", ")
	builder.WriteString("resource_id=")
	builder.WriteString(fmt.Sprintf("%v", a.ResourceID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", a.Status))
	builder.WriteString(", ")
	builder.WriteString("application_type=")
	builder.WriteString(fmt.Sprintf("%v", a.ApplicationType))
	builder.WriteString(", ")
	builder.WriteString("organization_id=")
	builder.WriteString(fmt.Sprintf("%v", a.OrganizationID))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(a.Notes)
	builder.WriteString(", ")
	builder.WriteString("proposed_rate=")
	builder.WriteString(fmt.Sprintf("%v", a.ProposedRate))
	builder.WriteString(", ")
	builder.WriteString("availability=")
	builder.WriteString(fmt.Sprintf("%v", a.Availability))
	builder.WriteString(", ")
	if v := a.WorkflowInstanceID; v != nil {
		builder.WriteString("workflow_instance_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("workflow_status=")
	builder.WriteString(fmt.Sprintf("%v", a.WorkflowStatus))
	builder.WriteString(", ")
	builder.WriteString("current_workflow_step=")
	builder.WriteString(fmt.Sprintf("%v", a.CurrentWorkflowStep))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", a.CreatedBy))
	builder.WriteString(", ")
	if v := a.UpdatedBy; v != nil {
		builder.WriteString("updated_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(a.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(a.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Applications is a parsable slice of Application.
type Applications []*Application
