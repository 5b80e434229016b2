// Code generated by ent, DO NOT EDIT.

package application

import (
	"staffhub/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldID, id))
}

// RequirementID applies equality check predicate on the "requirement_id" field. It's identical to RequirementIDEQ.
func RequirementID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldRequirementID, v))
}

// ResourceID applies equality check predicate on the "resource_id" field. It's identical to ResourceIDEQ.
func ResourceID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldResourceID, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldOrganizationID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNotes, v))
}

// WorkflowInstanceID applies equality check predicate on the "workflow_instance_id" field. It's identical to WorkflowInstanceIDEQ.
func WorkflowInstanceID(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWorkflowInstanceID, v))
}

// CurrentWorkflowStep applies equality check predicate on the "current_workflow_step" field. It's identical to CurrentWorkflowStepEQ.
func CurrentWorkflowStep(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCurrentWorkflowStep, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedBy, v))
}

// UpdatedBy applies equality check predicate on the "updated_by" field. It's identical to UpdatedByEQ.
func UpdatedBy(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequirementIDEQ applies the EQ predicate on the "requirement_id" field.
func RequirementIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldRequirementID, v))
}

// RequirementIDNEQ applies the NEQ predicate on the "requirement_id" field.
func RequirementIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldRequirementID, v))
}

// RequirementIDIn applies the In predicate on the "requirement_id" field.
func RequirementIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldRequirementID, vs...))
}

// RequirementIDNotIn applies the NotIn predicate on the "requirement_id" field.
func RequirementIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldRequirementID, vs...))
}

// ResourceIDEQ applies the EQ predicate on the "resource_id" field.
func ResourceIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldResourceID, v))
}

// ResourceIDNEQ applies the NEQ predicate on the "resource_id" field.
func ResourceIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldResourceID, v))
}

// ResourceIDIn applies the In predicate on the "resource_id" field.
func ResourceIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldResourceID, vs...))
}

// ResourceIDNotIn applies the NotIn predicate on the "resource_id" field.
func ResourceIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldResourceID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldStatus, vs...))
}

// ApplicationTypeEQ applies the EQ predicate on the "application_type" field.
func ApplicationTypeEQ(v ApplicationType) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldApplicationType, v))
}

// ApplicationTypeNEQ applies the NEQ predicate on the "application_type" field.
func ApplicationTypeNEQ(v ApplicationType) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldApplicationType, v))
}

// ApplicationTypeIn applies the In predicate on the "application_type" field.
func ApplicationTypeIn(vs ...ApplicationType) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldApplicationType, vs...))
}

// ApplicationTypeNotIn applies the NotIn predicate on the "application_type" field.
func ApplicationTypeNotIn(vs ...ApplicationType) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldApplicationType, vs...))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldOrganizationID, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Application {
	return predicate.Application(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Application {
	return predicate.Application(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Application {
	return predicate.Application(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Application {
	return predicate.Application(sql.FieldContainsFold(FieldNotes, v))
}

// ProposedRateIsNil applies the IsNil predicate on the "proposed_rate" field.
func ProposedRateIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldProposedRate))
}

// ProposedRateNotNil applies the NotNil predicate on the "proposed_rate" field.
func ProposedRateNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldProposedRate))
}

// AvailabilityIsNil applies the IsNil predicate on the "availability" field.
func AvailabilityIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldAvailability))
}

// AvailabilityNotNil applies the NotNil predicate on the "availability" field.
func AvailabilityNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldAvailability))
}

// WorkflowInstanceIDEQ applies the EQ predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWorkflowInstanceID, v))
}

// WorkflowInstanceIDNEQ applies the NEQ predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldWorkflowInstanceID, v))
}

// WorkflowInstanceIDIn applies the In predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldWorkflowInstanceID, vs...))
}

// WorkflowInstanceIDNotIn applies the NotIn predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldWorkflowInstanceID, vs...))
}

// WorkflowInstanceIDGT applies the GT predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDGT(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldWorkflowInstanceID, v))
}

// WorkflowInstanceIDGTE applies the GTE predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDGTE(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldWorkflowInstanceID, v))
}

// WorkflowInstanceIDLT applies the LT predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDLT(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldWorkflowInstanceID, v))
}

// WorkflowInstanceIDLTE applies the LTE predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDLTE(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldWorkflowInstanceID, v))
}

// WorkflowInstanceIDIsNil applies the IsNil predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldWorkflowInstanceID))
}

// WorkflowInstanceIDNotNil applies the NotNil predicate on the "workflow_instance_id" field.
func WorkflowInstanceIDNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldWorkflowInstanceID))
}

// WorkflowStatusEQ applies the EQ predicate on the "workflow_status" field.
func WorkflowStatusEQ(v WorkflowStatus) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldWorkflowStatus, v))
}

// WorkflowStatusNEQ applies the NEQ predicate on the "workflow_status" field.
func WorkflowStatusNEQ(v WorkflowStatus) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldWorkflowStatus, v))
}

// WorkflowStatusIn applies the In predicate on the "workflow_status" field.
func WorkflowStatusIn(vs ...WorkflowStatus) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldWorkflowStatus, vs...))
}

// WorkflowStatusNotIn applies the NotIn predicate on the "workflow_status" field.
func WorkflowStatusNotIn(vs ...WorkflowStatus) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldWorkflowStatus, vs...))
}

// CurrentWorkflowStepEQ applies the EQ predicate on the "current_workflow_step" field.
func CurrentWorkflowStepEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCurrentWorkflowStep, v))
}

// CurrentWorkflowStepNEQ applies the NEQ predicate on the "current_workflow_step" field.
func CurrentWorkflowStepNEQ(v int) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCurrentWorkflowStep, v))
}

// CurrentWorkflowStepIn applies the In predicate on the "current_workflow_step" field.
func CurrentWorkflowStepIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCurrentWorkflowStep, vs...))
}

// CurrentWorkflowStepNotIn applies the NotIn predicate on the "current_workflow_step" field.
func CurrentWorkflowStepNotIn(vs ...int) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCurrentWorkflowStep, vs...))
}

// CurrentWorkflowStepGT applies the GT predicate on the "current_workflow_step" field.
func CurrentWorkflowStepGT(v int) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCurrentWorkflowStep, v))
}

// CurrentWorkflowStepGTE applies the GTE predicate on the "current_workflow_step" field.
func CurrentWorkflowStepGTE(v int) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCurrentWorkflowStep, v))
}

// CurrentWorkflowStepLT applies the LT predicate on the "current_workflow_step" field.
func CurrentWorkflowStepLT(v int) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCurrentWorkflowStep, v))
}

// CurrentWorkflowStepLTE applies the LTE predicate on the "current_workflow_step" field.
func CurrentWorkflowStepLTE(v int) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCurrentWorkflowStep, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// UpdatedByEQ applies the EQ predicate on the "updated_by" field.
func UpdatedByEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedBy, v))
}

// UpdatedByNEQ applies the NEQ predicate on the "updated_by" field.
func UpdatedByNEQ(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedBy, v))
}

// UpdatedByIn applies the In predicate on the "updated_by" field.
func UpdatedByIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedBy, vs...))
}

// UpdatedByNotIn applies the NotIn predicate on the "updated_by" field.
func UpdatedByNotIn(vs ...uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedBy, vs...))
}

// UpdatedByGT applies the GT predicate on the "updated_by" field.
func UpdatedByGT(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedBy, v))
}

// UpdatedByGTE applies the GTE predicate on the "updated_by" field.
func UpdatedByGTE(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedBy, v))
}

// UpdatedByLT applies the LT predicate on the "updated_by" field.
func UpdatedByLT(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedBy, v))
}

// UpdatedByLTE applies the LTE predicate on the "updated_by" field.
func UpdatedByLTE(v uuid.UUID) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedBy, v))
}

// UpdatedByIsNil applies the IsNil predicate on the "updated_by" field.
func UpdatedByIsNil() predicate.Application {
	return predicate.Application(sql.FieldIsNull(FieldUpdatedBy))
}

// UpdatedByNotNil applies the NotNil predicate on the "updated_by" field.
func UpdatedByNotNil() predicate.Application {
	return predicate.Application(sql.FieldNotNull(FieldUpdatedBy))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Application {
	return predicate.Application(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Application {
	return predicate.Application(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRequirement applies the HasEdge predicate on the "requirement" edge.
func HasRequirement() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequirementTable, RequirementColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequirementWith applies the HasEdge predicate on the "requirement" edge with a given conditions (other predicates).
func HasRequirementWith(preds ...predicate.Requirement) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newRequirementStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResource applies the HasEdge predicate on the "resource" edge.
func HasResource() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ResourceTable, ResourceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResourceWith applies the HasEdge predicate on the "resource" edge with a given conditions (other predicates).
func HasResourceWith(preds ...predicate.Resource) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newResourceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCreator applies the HasEdge predicate on the "creator" edge.
func HasCreator() predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCreatorWith applies the HasEdge predicate on the "creator" edge with a given conditions (other predicates).
func HasCreatorWith(preds ...predicate.User) predicate.Application {
	return predicate.Application(func(s *sql.Selector) {
		step := newCreatorStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Application) predicate.Application {
	return predicate.Application(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Application) predicate.Application {
	return predicate.Application(sql.NotPredicates(p))
}
