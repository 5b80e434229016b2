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
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Application holds the schema definition for the Application entity: a
// resource's bid against a requirement, tracked through the status lifecycle.
type Application struct {
	ent.Schema
}

// Fields of the Application.
func (Application) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("requirement_id", uuid.UUID{}).StorageKey("requirement_id").Immutable(),
		field.UUID("resource_id", uuid.UUID{}).StorageKey("resource_id").Immutable(),

		// Single source of truth for lifecycle state. Values come from the
		// status package so the enum cannot drift from the taxonomy.
		field.Enum("status").
			Values(status.Values()...).
			Default(string(status.Applied)),

		field.Enum("application_type").
			Values(models.ApplicationTypeValues()...),

		// Every application is partitioned by the creator's organization.
		field.UUID("organization_id", uuid.UUID{}),

		field.Text("notes").Optional(),
		field.JSON("proposed_rate", &models.ProposedRate{}).Optional(),
		field.JSON("availability", &models.Availability{}).Optional(),

		// Weak back-reference: the application caches a pointer to its
		// workflow instance plus denormalized progress for fast reads. The
		// instance's lifecycle is owned elsewhere.
		field.UUID("workflow_instance_id", uuid.UUID{}).Optional().Nillable(),
		field.Enum("workflow_status").
			Values(status.WorkflowStatusValues()...).
			Default(string(status.WorkflowNotStarted)),
		field.Int("current_workflow_step").Default(1).Min(1),

		field.UUID("created_by", uuid.UUID{}).Immutable(),
		field.UUID("updated_by", uuid.UUID{}).Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Application) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "application"},
	}
}

// Indexes of the Application. The composite unique index is the storage-level
// guarantee of one application per (requirement, resource) pair; concurrent
// duplicate submissions surface as constraint errors.
func (Application) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("requirement_id", "resource_id").Unique(),
		index.Fields("organization_id", "status"),
	}
}

// Edges of the Application.
func (Application) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("requirement", Requirement.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("requirement_id"),

		edge.From("resource", Resource.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("resource_id"),

		edge.From("creator", User.Type).
			Ref("applicationsCreated").
			Required().
			Unique().
			Immutable().
			Field("created_by"),
	}
}
