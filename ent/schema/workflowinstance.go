package schema

import (
	"time"

	"staffhub/internal/models"
	"staffhub/internal/status"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WorkflowInstance holds the schema definition for one execution of a
// template bound to a single application. Steps are a value snapshot taken at
// instantiation; template edits never reach a running instance.
type WorkflowInstance struct {
	ent.Schema
}

// Fields of the WorkflowInstance.
func (WorkflowInstance) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("application_id", uuid.UUID{}).Immutable(),
		field.UUID("template_id", uuid.UUID{}).StorageKey("template_id").Immutable(),

		field.JSON("steps", []models.InstanceStep{}),

		// 1-based pointer into steps; advances monotonically.
		field.Int("current_step").Default(1).Min(1),

		field.Enum("status").
			Values(status.InstanceStatusValues()...).
			Default(string(status.InstanceActive)),

		field.Time("completed_at").Optional().Nillable(),

		field.UUID("organization_id", uuid.UUID{}),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (WorkflowInstance) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_instance"},
	}
}

// Edges of the WorkflowInstance.
func (WorkflowInstance) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("template", WorkflowTemplate.Type).
			Ref("instances").
			Required().
			Unique().
			Immutable().
			Field("template_id"),
	}
}
