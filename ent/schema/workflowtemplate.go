package schema

import (
	"time"

	"staffhub/internal/models"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WorkflowTemplate holds the schema definition for admin-authored approval
// workflows. At most one active default may exist per application type; the
// repository clears competing defaults in the same transaction as any write
// that sets is_default.
type WorkflowTemplate struct {
	ent.Schema
}

// Fields of the WorkflowTemplate.
func (WorkflowTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").NotEmpty(),
		field.Text("description").Optional(),

		// Subset of {client_applied, vendor_applied, both}.
		field.JSON("application_types", []string{}),

		field.JSON("steps", []models.TemplateStep{}),

		field.Bool("is_active").Default(true),
		field.Bool("is_default").Default(false),

		field.UUID("created_by", uuid.UUID{}).Immutable(),
		field.UUID("updated_by", uuid.UUID{}).Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (WorkflowTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "workflow_template"},
	}
}

// Edges of the WorkflowTemplate.
func (WorkflowTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("instances", WorkflowInstance.Type),
	}
}
