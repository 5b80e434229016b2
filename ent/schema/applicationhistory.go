package schema

import (
	"time"

	"staffhub/internal/models"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// ApplicationHistory holds the schema definition for the history ledger.
// Entries are append-only: the repository exposes no update or delete.
// Status fields are plain strings rather than the application enum because
// the terminal deletion record carries a value outside it.
type ApplicationHistory struct {
	ent.Schema
}

// Fields of the ApplicationHistory.
func (ApplicationHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		// Weak reference on purpose: the terminal deletion record must
		// survive the application row it points at.
		field.UUID("application_id", uuid.UUID{}).StorageKey("application_id").Immutable(),

		field.String("status").NotEmpty().Immutable(),
		field.String("previous_status").Optional().Immutable(),

		field.Text("notes").Optional().Immutable(),
		field.JSON("decision_reason", &models.DecisionReason{}).Optional().Immutable(),

		field.Bool("notify_candidate").Default(false).Immutable(),
		field.Bool("notify_client").Default(false).Immutable(),

		field.JSON("follow_up", &models.FollowUp{}).Optional().Immutable(),

		field.UUID("organization_id", uuid.UUID{}).Immutable(),
		field.UUID("created_by", uuid.UUID{}).Immutable(),

		field.Time("created_at").Immutable().Default(time.Now),
	}
}

func (ApplicationHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "application_history"},
	}
}

// Indexes of the ApplicationHistory. Creation time is the canonical ordering.
func (ApplicationHistory) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "created_at"),
	}
}

