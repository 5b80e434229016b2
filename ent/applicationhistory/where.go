// Code generated by ent, DO NOT EDIT.

package applicationhistory

import (
	"staffhub/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldApplicationID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldStatus, v))
}

// PreviousStatus applies equality check predicate on the "previous_status" field. It's identical to PreviousStatusEQ.
func PreviousStatus(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldPreviousStatus, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldNotes, v))
}

// NotifyCandidate applies equality check predicate on the "notify_candidate" field. It's identical to NotifyCandidateEQ.
func NotifyCandidate(v bool) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldNotifyCandidate, v))
}

// NotifyClient applies equality check predicate on the "notify_client" field. It's identical to NotifyClientEQ.
func NotifyClient(v bool) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldNotifyClient, v))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldOrganizationID, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldApplicationID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldContainsFold(FieldStatus, v))
}

// PreviousStatusEQ applies the EQ predicate on the "previous_status" field.
func PreviousStatusEQ(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldPreviousStatus, v))
}

// PreviousStatusNEQ applies the NEQ predicate on the "previous_status" field.
func PreviousStatusNEQ(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldPreviousStatus, v))
}

// PreviousStatusIn applies the In predicate on the "previous_status" field.
func PreviousStatusIn(vs ...string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldPreviousStatus, vs...))
}

// PreviousStatusNotIn applies the NotIn predicate on the "previous_status" field.
func PreviousStatusNotIn(vs ...string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldPreviousStatus, vs...))
}

// PreviousStatusGT applies the GT predicate on the "previous_status" field.
func PreviousStatusGT(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldPreviousStatus, v))
}

// PreviousStatusGTE applies the GTE predicate on the "previous_status" field.
func PreviousStatusGTE(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldPreviousStatus, v))
}

// PreviousStatusLT applies the LT predicate on the "previous_status" field.
func PreviousStatusLT(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldPreviousStatus, v))
}

// PreviousStatusLTE applies the LTE predicate on the "previous_status" field.
func PreviousStatusLTE(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldPreviousStatus, v))
}

// PreviousStatusContains applies the Contains predicate on the "previous_status" field.
func PreviousStatusContains(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldContains(FieldPreviousStatus, v))
}

// PreviousStatusHasPrefix applies the HasPrefix predicate on the "previous_status" field.
func PreviousStatusHasPrefix(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldHasPrefix(FieldPreviousStatus, v))
}

// PreviousStatusHasSuffix applies the HasSuffix predicate on the "previous_status" field.
func PreviousStatusHasSuffix(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldHasSuffix(FieldPreviousStatus, v))
}

// PreviousStatusIsNil applies the IsNil predicate on the "previous_status" field.
func PreviousStatusIsNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIsNull(FieldPreviousStatus))
}

// PreviousStatusNotNil applies the NotNil predicate on the "previous_status" field.
func PreviousStatusNotNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotNull(FieldPreviousStatus))
}

// PreviousStatusEqualFold applies the EqualFold predicate on the "previous_status" field.
func PreviousStatusEqualFold(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEqualFold(FieldPreviousStatus, v))
}

// PreviousStatusContainsFold applies the ContainsFold predicate on the "previous_status" field.
func PreviousStatusContainsFold(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldContainsFold(FieldPreviousStatus, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldContainsFold(FieldNotes, v))
}

// DecisionReasonIsNil applies the IsNil predicate on the "decision_reason" field.
func DecisionReasonIsNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIsNull(FieldDecisionReason))
}

// DecisionReasonNotNil applies the NotNil predicate on the "decision_reason" field.
func DecisionReasonNotNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotNull(FieldDecisionReason))
}

// NotifyCandidateEQ applies the EQ predicate on the "notify_candidate" field.
func NotifyCandidateEQ(v bool) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldNotifyCandidate, v))
}

// NotifyCandidateNEQ applies the NEQ predicate on the "notify_candidate" field.
func NotifyCandidateNEQ(v bool) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldNotifyCandidate, v))
}

// NotifyClientEQ applies the EQ predicate on the "notify_client" field.
func NotifyClientEQ(v bool) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldNotifyClient, v))
}

// NotifyClientNEQ applies the NEQ predicate on the "notify_client" field.
func NotifyClientNEQ(v bool) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldNotifyClient, v))
}

// FollowUpIsNil applies the IsNil predicate on the "follow_up" field.
func FollowUpIsNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIsNull(FieldFollowUp))
}

// FollowUpNotNil applies the NotNil predicate on the "follow_up" field.
func FollowUpNotNil() predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotNull(FieldFollowUp))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// OrganizationIDGT applies the GT predicate on the "organization_id" field.
func OrganizationIDGT(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldOrganizationID, v))
}

// OrganizationIDGTE applies the GTE predicate on the "organization_id" field.
func OrganizationIDGTE(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldOrganizationID, v))
}

// OrganizationIDLT applies the LT predicate on the "organization_id" field.
func OrganizationIDLT(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldOrganizationID, v))
}

// OrganizationIDLTE applies the LTE predicate on the "organization_id" field.
func OrganizationIDLTE(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldOrganizationID, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v uuid.UUID) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApplicationHistory) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApplicationHistory) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApplicationHistory) predicate.ApplicationHistory {
	return predicate.ApplicationHistory(sql.NotPredicates(p))
}
