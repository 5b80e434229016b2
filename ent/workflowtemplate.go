// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"staffhub/ent/workflowtemplate"
	"staffhub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// WorkflowTemplate is the model entity for the WorkflowTemplate schema.
type WorkflowTemplate struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// ApplicationTypes holds the value of the "application_types" field.
	ApplicationTypes []string `json:"application_types,omitempty"`
	// Steps holds the value of the "steps" field.
	Steps []models.TemplateStep `json:"steps,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// IsDefault holds the value of the "is_default" field.
	IsDefault bool `json:"is_default,omitempty"`
	// CreatedBy holds the value of the "created_by" field.
	CreatedBy uuid.UUID `json:"created_by,omitempty"`
	// UpdatedBy holds the value of the "updated_by" field.
	UpdatedBy *uuid.UUID `json:"updated_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WorkflowTemplateQuery when eager-loading is set.
	Edges        WorkflowTemplateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WorkflowTemplateEdges holds the relations/edges for other nodes in the graph.
type WorkflowTemplateEdges struct {
	// Instances holds the value of the instances edge.
	Instances []*WorkflowInstance `json:"instances,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InstancesOrErr returns the Instances value or an error if the edge
// was not loaded in eager-loading.
func (e WorkflowTemplateEdges) InstancesOrErr() ([]*WorkflowInstance, error) {
	if e.loadedTypes[0] {
		return e.Instances, nil
	}
	return nil, &NotLoadedError{edge: "instances"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WorkflowTemplate) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case workflowtemplate.FieldUpdatedBy:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case workflowtemplate.FieldApplicationTypes, workflowtemplate.FieldSteps:
			values[i] = new([]byte)
		case workflowtemplate.FieldIsActive, workflowtemplate.FieldIsDefault:
			values[i] = new(sql.NullBool)
		case workflowtemplate.FieldName, workflowtemplate.FieldDescription:
			values[i] = new(sql.NullString)
		case workflowtemplate.FieldCreatedAt, workflowtemplate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case workflowtemplate.FieldID, workflowtemplate.FieldCreatedBy:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WorkflowTemplate fields.
func (wt *WorkflowTemplate) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case workflowtemplate.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				wt.ID = *value
			}
		case workflowtemplate.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				wt.Name = value.String
			}
		case workflowtemplate.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				wt.Description = value.String
			}
		case workflowtemplate.FieldApplicationTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field application_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &wt.ApplicationTypes); err != nil {
					return fmt.Errorf("unmarshal field application_types: %w", err)
				}
			}
		case workflowtemplate.FieldSteps:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field steps", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &wt.Steps); err != nil {
					return fmt.Errorf("unmarshal field steps: %w", err)
				}
			}
		case workflowtemplate.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				wt.IsActive = value.Bool
			}
		case workflowtemplate.FieldIsDefault:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_default", values[i])
			} else if value.Valid {
				wt.IsDefault = value.Bool
			}
		case workflowtemplate.FieldCreatedBy:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field created_by", values[i])
			} else if value != nil {
				wt.CreatedBy = *value
			}
		case workflowtemplate.FieldUpdatedBy:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field updated_by", values[i])
			} else if value.Valid {
				wt.UpdatedBy = new(uuid.UUID)
				*wt.UpdatedBy = *value.S.(*uuid.UUID)
			}
		case workflowtemplate.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				wt.CreatedAt = value.Time
			}
		case workflowtemplate.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				wt.UpdatedAt = value.Time
			}
		default:
			wt.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the WorkflowTemplate.
// This includes values selected through modifiers, order, etc.
func (wt *WorkflowTemplate) Value(name string) (ent.Value, error) {
	return wt.selectValues.Get(name)
}

// QueryInstances queries the "instances" edge of the WorkflowTemplate entity.
func (wt *WorkflowTemplate) QueryInstances() *WorkflowInstanceQuery {
	return NewWorkflowTemplateClient(wt.config).QueryInstances(wt)
}

// Update returns a builder for updating this WorkflowTemplate.
// Note that you need to call WorkflowTemplate.Unwrap() before calling this method if this WorkflowTemplate
// was returned from a transaction, and the transaction was committed or rolled back.
func (wt *WorkflowTemplate) Update() *WorkflowTemplateUpdateOne {
	return NewWorkflowTemplateClient(wt.config).UpdateOne(wt)
}

// Unwrap unwraps the WorkflowTemplate entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (wt *WorkflowTemplate) Unwrap() *WorkflowTemplate {
	_tx, ok := wt.config.driver.(*txDriver)
	if !ok {
		panic("ent: WorkflowTemplate is not a transactional entity")
	}
	wt.config.driver = _tx.drv
	return wt
}

// String implements the fmt.Stringer.
func (wt *WorkflowTemplate) String() string {
	var builder strings.Builder
	builder.WriteString("WorkflowTemplate(")
	builder.WriteString(fmt.Sprintf("id=%v, ", wt.ID))
	builder.WriteString("name=")
	builder.WriteString(wt.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(wt.Description)
	builder.WriteString(", ")
	builder.WriteString("application_types=")
	builder.WriteString(fmt.Sprintf("%v", wt.ApplicationTypes))
	builder.WriteString(", ")
	builder.WriteString("steps=")
	builder.WriteString(fmt.Sprintf("%v", wt.Steps))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", wt.IsActive))
	builder.WriteString(", ")
	builder.WriteString("is_default=")
	builder.WriteString(fmt.Sprintf("%v", wt.IsDefault))
	builder.WriteString(", ")
	builder.WriteString("created_by=")
	builder.WriteString(fmt.Sprintf("%v", wt.CreatedBy))
	builder.WriteString(", ")
	if v := wt.UpdatedBy; v != nil {
		builder.WriteString("updated_by=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(wt.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(wt.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WorkflowTemplates is a parsable slice of WorkflowTemplate.
type WorkflowTemplates []*WorkflowTemplate
