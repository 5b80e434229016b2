package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Notification holds the schema definition for the notification sink. The
// lifecycle writes these fire-and-forget; delivery is out of scope.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("recipient_id", uuid.UUID{}).StorageKey("recipient_id").Immutable(),

		field.String("type").NotEmpty(),
		field.String("title").NotEmpty(),
		field.Text("message"),

		field.String("related_entity_type").Optional(),
		field.UUID("related_entity_id", uuid.UUID{}).Optional().Nillable(),
		field.String("action_url").Optional(),

		field.Bool("read").Default(false),

		field.Time("created_at").Immutable().Default(time.Now),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipient", User.Type).
			Ref("notifications").
			Required().
			Unique().
			Immutable().
			Field("recipient_id"),
	}
}
