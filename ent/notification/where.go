// Code generated by ent, DO NOT EDIT.

package notification

import (
	"staffhub/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldID, id))
}

// RecipientID applies equality check predicate on the "recipient_id" field. It's identical to RecipientIDEQ.
func RecipientID(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRecipientID, v))
}

// Type applies equality check predicate on the "type" field. It's identical to TypeEQ.
func Type(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldType, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldTitle, v))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldMessage, v))
}

// RelatedEntityType applies equality check predicate on the "related_entity_type" field. It's identical to RelatedEntityTypeEQ.
func RelatedEntityType(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRelatedEntityType, v))
}

// RelatedEntityID applies equality check predicate on the "related_entity_id" field. It's identical to RelatedEntityIDEQ.
func RelatedEntityID(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRelatedEntityID, v))
}

// ActionURL applies equality check predicate on the "action_url" field. It's identical to ActionURLEQ.
func ActionURL(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldActionURL, v))
}

// Read applies equality check predicate on the "read" field. It's identical to ReadEQ.
func Read(v bool) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRead, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// RecipientIDEQ applies the EQ predicate on the "recipient_id" field.
func RecipientIDEQ(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRecipientID, v))
}

// RecipientIDNEQ applies the NEQ predicate on the "recipient_id" field.
func RecipientIDNEQ(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldRecipientID, v))
}

// RecipientIDIn applies the In predicate on the "recipient_id" field.
func RecipientIDIn(vs ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldRecipientID, vs...))
}

// RecipientIDNotIn applies the NotIn predicate on the "recipient_id" field.
func RecipientIDNotIn(vs ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldRecipientID, vs...))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldType, vs...))
}

// TypeGT applies the GT predicate on the "type" field.
func TypeGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldType, v))
}

// TypeGTE applies the GTE predicate on the "type" field.
func TypeGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldType, v))
}

// TypeLT applies the LT predicate on the "type" field.
func TypeLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldType, v))
}

// TypeLTE applies the LTE predicate on the "type" field.
func TypeLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldType, v))
}

// TypeContains applies the Contains predicate on the "type" field.
func TypeContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldType, v))
}

// TypeHasPrefix applies the HasPrefix predicate on the "type" field.
func TypeHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldType, v))
}

// TypeHasSuffix applies the HasSuffix predicate on the "type" field.
func TypeHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldType, v))
}

// TypeEqualFold applies the EqualFold predicate on the "type" field.
func TypeEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldType, v))
}

// TypeContainsFold applies the ContainsFold predicate on the "type" field.
func TypeContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldType, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldTitle, v))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldMessage, v))
}

// RelatedEntityTypeEQ applies the EQ predicate on the "related_entity_type" field.
func RelatedEntityTypeEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRelatedEntityType, v))
}

// RelatedEntityTypeNEQ applies the NEQ predicate on the "related_entity_type" field.
func RelatedEntityTypeNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldRelatedEntityType, v))
}

// RelatedEntityTypeIn applies the In predicate on the "related_entity_type" field.
func RelatedEntityTypeIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldRelatedEntityType, vs...))
}

// RelatedEntityTypeNotIn applies the NotIn predicate on the "related_entity_type" field.
func RelatedEntityTypeNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldRelatedEntityType, vs...))
}

// RelatedEntityTypeGT applies the GT predicate on the "related_entity_type" field.
func RelatedEntityTypeGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldRelatedEntityType, v))
}

// RelatedEntityTypeGTE applies the GTE predicate on the "related_entity_type" field.
func RelatedEntityTypeGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldRelatedEntityType, v))
}

// RelatedEntityTypeLT applies the LT predicate on the "related_entity_type" field.
func RelatedEntityTypeLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldRelatedEntityType, v))
}

// RelatedEntityTypeLTE applies the LTE predicate on the "related_entity_type" field.
func RelatedEntityTypeLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldRelatedEntityType, v))
}

// RelatedEntityTypeContains applies the Contains predicate on the "related_entity_type" field.
func RelatedEntityTypeContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldRelatedEntityType, v))
}

// RelatedEntityTypeHasPrefix applies the HasPrefix predicate on the "related_entity_type" field.
func RelatedEntityTypeHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldRelatedEntityType, v))
}

// RelatedEntityTypeHasSuffix applies the HasSuffix predicate on the "related_entity_type" field.
func RelatedEntityTypeHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldRelatedEntityType, v))
}

// RelatedEntityTypeIsNil applies the IsNil predicate on the "related_entity_type" field.
func RelatedEntityTypeIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldRelatedEntityType))
}

// RelatedEntityTypeNotNil applies the NotNil predicate on the "related_entity_type" field.
func RelatedEntityTypeNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldRelatedEntityType))
}

// RelatedEntityTypeEqualFold applies the EqualFold predicate on the "related_entity_type" field.
func RelatedEntityTypeEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldRelatedEntityType, v))
}

// RelatedEntityTypeContainsFold applies the ContainsFold predicate on the "related_entity_type" field.
func RelatedEntityTypeContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldRelatedEntityType, v))
}

// RelatedEntityIDEQ applies the EQ predicate on the "related_entity_id" field.
func RelatedEntityIDEQ(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRelatedEntityID, v))
}

// RelatedEntityIDNEQ applies the NEQ predicate on the "related_entity_id" field.
func RelatedEntityIDNEQ(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldRelatedEntityID, v))
}

// RelatedEntityIDIn applies the In predicate on the "related_entity_id" field.
func RelatedEntityIDIn(vs ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldRelatedEntityID, vs...))
}

// RelatedEntityIDNotIn applies the NotIn predicate on the "related_entity_id" field.
func RelatedEntityIDNotIn(vs ...uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldRelatedEntityID, vs...))
}

// RelatedEntityIDGT applies the GT predicate on the "related_entity_id" field.
func RelatedEntityIDGT(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldRelatedEntityID, v))
}

// RelatedEntityIDGTE applies the GTE predicate on the "related_entity_id" field.
func RelatedEntityIDGTE(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldRelatedEntityID, v))
}

// RelatedEntityIDLT applies the LT predicate on the "related_entity_id" field.
func RelatedEntityIDLT(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldRelatedEntityID, v))
}

// RelatedEntityIDLTE applies the LTE predicate on the "related_entity_id" field.
func RelatedEntityIDLTE(v uuid.UUID) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldRelatedEntityID, v))
}

// RelatedEntityIDIsNil applies the IsNil predicate on the "related_entity_id" field.
func RelatedEntityIDIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldRelatedEntityID))
}

// RelatedEntityIDNotNil applies the NotNil predicate on the "related_entity_id" field.
func RelatedEntityIDNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldRelatedEntityID))
}

// ActionURLEQ applies the EQ predicate on the "action_url" field.
func ActionURLEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldActionURL, v))
}

// ActionURLNEQ applies the NEQ predicate on the "action_url" field.
func ActionURLNEQ(v string) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldActionURL, v))
}

// ActionURLIn applies the In predicate on the "action_url" field.
func ActionURLIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldActionURL, vs...))
}

// ActionURLNotIn applies the NotIn predicate on the "action_url" field.
func ActionURLNotIn(vs ...string) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldActionURL, vs...))
}

// ActionURLGT applies the GT predicate on the "action_url" field.
func ActionURLGT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldActionURL, v))
}

// ActionURLGTE applies the GTE predicate on the "action_url" field.
func ActionURLGTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldActionURL, v))
}

// ActionURLLT applies the LT predicate on the "action_url" field.
func ActionURLLT(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldActionURL, v))
}

// ActionURLLTE applies the LTE predicate on the "action_url" field.
func ActionURLLTE(v string) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldActionURL, v))
}

// ActionURLContains applies the Contains predicate on the "action_url" field.
func ActionURLContains(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContains(FieldActionURL, v))
}

// ActionURLHasPrefix applies the HasPrefix predicate on the "action_url" field.
func ActionURLHasPrefix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasPrefix(FieldActionURL, v))
}

// ActionURLHasSuffix applies the HasSuffix predicate on the "action_url" field.
func ActionURLHasSuffix(v string) predicate.Notification {
	return predicate.Notification(sql.FieldHasSuffix(FieldActionURL, v))
}

// ActionURLIsNil applies the IsNil predicate on the "action_url" field.
func ActionURLIsNil() predicate.Notification {
	return predicate.Notification(sql.FieldIsNull(FieldActionURL))
}

// ActionURLNotNil applies the NotNil predicate on the "action_url" field.
func ActionURLNotNil() predicate.Notification {
	return predicate.Notification(sql.FieldNotNull(FieldActionURL))
}

// ActionURLEqualFold applies the EqualFold predicate on the "action_url" field.
func ActionURLEqualFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldEqualFold(FieldActionURL, v))
}

// ActionURLContainsFold applies the ContainsFold predicate on the "action_url" field.
func ActionURLContainsFold(v string) predicate.Notification {
	return predicate.Notification(sql.FieldContainsFold(FieldActionURL, v))
}

// ReadEQ applies the EQ predicate on the "read" field.
func ReadEQ(v bool) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldRead, v))
}

// ReadNEQ applies the NEQ predicate on the "read" field.
func ReadNEQ(v bool) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldRead, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notification {
	return predicate.Notification(sql.FieldLTE(FieldCreatedAt, v))
}

// HasRecipient applies the HasEdge predicate on the "recipient" edge.
func HasRecipient() predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecipientTable, RecipientColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecipientWith applies the HasEdge predicate on the "recipient" edge with a given conditions (other predicates).
func HasRecipientWith(preds ...predicate.User) predicate.Notification {
	return predicate.Notification(func(s *sql.Selector) {
		step := newRecipientStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notification) predicate.Notification {
	return predicate.Notification(sql.NotPredicates(p))
}
