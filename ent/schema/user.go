package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity. The core treats users
// as an authenticated-principal read model: auth middleware loads one by id,
// notification messages interpolate names from it.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("email").Unique().NotEmpty(),
		field.String("first_name").NotEmpty(),
		field.String("last_name").Optional(),

		// Coarse account classification; the fallback of authz.EffectiveRole.
		field.Enum("user_type").Values("admin", "client", "vendor"),

		// Generic role, preferred over user_type when set.
		field.String("role").Optional(),

		// Organization-scoped role wins over everything.
		field.UUID("organization_id", uuid.UUID{}).Optional().Nillable(),
		field.String("organization_role").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("applicationsCreated", Application.Type),
		edge.To("notifications", Notification.Type),
	}
}
