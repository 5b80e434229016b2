package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Requirement holds the schema definition for the Requirement entity: a
// client-posted need for a resource. The lifecycle core only reads it.
type Requirement struct {
	ent.Schema
}

// Fields of the Requirement.
func (Requirement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("title").NotEmpty(),
		field.Text("description").Optional(),

		field.UUID("organization_id", uuid.UUID{}),
		field.UUID("created_by", uuid.UUID{}).Immutable(),

		field.Bool("is_active").Default(true),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Requirement.
func (Requirement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applications", Application.Type),
	}
}
