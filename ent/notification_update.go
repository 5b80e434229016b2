// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/notification"
	"staffhub/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// NotificationUpdate is the builder for updating Notification entities.
type NotificationUpdate struct {
	config
	hooks    []Hook
	mutation *NotificationMutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (nu *NotificationUpdate) Where(ps ...predicate.Notification) *NotificationUpdate {
	nu.mutation.Where(ps...)
	return nu
}

// SetType sets the "type" field.
func (nu *NotificationUpdate) SetType(s string) *NotificationUpdate {
	nu.mutation.SetType(s)
	return nu
}

// SetNillableType sets the "type" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableType(s *string) *NotificationUpdate {
	if s != nil {
		nu.SetType(*s)
	}
	return nu
}

// SetTitle sets the "title" field.
func (nu *NotificationUpdate) SetTitle(s string) *NotificationUpdate {
	nu.mutation.SetTitle(s)
	return nu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableTitle(s *string) *NotificationUpdate {
	if s != nil {
		nu.SetTitle(*s)
	}
	return nu
}

// SetMessage sets the "message" field.
func (nu *NotificationUpdate) SetMessage(s string) *NotificationUpdate {
	nu.mutation.SetMessage(s)
	return nu
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableMessage(s *string) *NotificationUpdate {
	if s != nil {
		nu.SetMessage(*s)
	}
	return nu
}

// SetRelatedEntityType sets the "related_entity_type" field.
func (nu *NotificationUpdate) SetRelatedEntityType(s string) *NotificationUpdate {
	nu.mutation.SetRelatedEntityType(s)
	return nu
}

// SetNillableRelatedEntityType sets the "related_entity_type" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableRelatedEntityType(s *string) *NotificationUpdate {
	if s != nil {
		nu.SetRelatedEntityType(*s)
	}
	return nu
}

// ClearRelatedEntityType clears the value of the "related_entity_type" field.
func (nu *NotificationUpdate) ClearRelatedEntityType() *NotificationUpdate {
	nu.mutation.ClearRelatedEntityType()
	return nu
}

// SetRelatedEntityID sets the "related_entity_id" field.
func (nu *NotificationUpdate) SetRelatedEntityID(u uuid.UUID) *NotificationUpdate {
	nu.mutation.SetRelatedEntityID(u)
	return nu
}

// SetNillableRelatedEntityID sets the "related_entity_id" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableRelatedEntityID(u *uuid.UUID) *NotificationUpdate {
	if u != nil {
		nu.SetRelatedEntityID(*u)
	}
	return nu
}

// ClearRelatedEntityID clears the value of the "related_entity_id" field.
func (nu *NotificationUpdate) ClearRelatedEntityID() *NotificationUpdate {
	nu.mutation.ClearRelatedEntityID()
	return nu
}

// SetActionURL sets the "action_url" field.
func (nu *NotificationUpdate) SetActionURL(s string) *NotificationUpdate {
	nu.mutation.SetActionURL(s)
	return nu
}

// SetNillableActionURL sets the "action_url" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableActionURL(s *string) *NotificationUpdate {
	if s != nil {
		nu.SetActionURL(*s)
	}
	return nu
}

// ClearActionURL clears the value of the "action_url" field.
func (nu *NotificationUpdate) ClearActionURL() *NotificationUpdate {
	nu.mutation.ClearActionURL()
	return nu
}

// SetRead sets the "read" field.
func (nu *NotificationUpdate) SetRead(b bool) *NotificationUpdate {
	nu.mutation.SetRead(b)
	return nu
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (nu *NotificationUpdate) SetNillableRead(b *bool) *NotificationUpdate {
	if b != nil {
		nu.SetRead(*b)
	}
	return nu
}

// Mutation returns the NotificationMutation object of the builder.
func (nu *NotificationUpdate) Mutation() *NotificationMutation {
	return nu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (nu *NotificationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, nu.sqlSave, nu.mutation, nu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (nu *NotificationUpdate) SaveX(ctx context.Context) int {
	affected, err := nu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (nu *NotificationUpdate) Exec(ctx context.Context) error {
	_, err := nu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nu *NotificationUpdate) ExecX(ctx context.Context) {
	if err := nu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (nu *NotificationUpdate) check() error {
	if v, ok := nu.mutation.GetType(); ok {
		if err := notification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Notification.type": %w`, err)}
		}
	}
	if v, ok := nu.mutation.Title(); ok {
		if err := notification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notification.title": %w`, err)}
		}
	}
	if nu.mutation.RecipientCleared() && len(nu.mutation.RecipientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Notification.recipient"`)
	}
	return nil
}

func (nu *NotificationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := nu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeUUID))
	if ps := nu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := nu.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeString, value)
	}
	if value, ok := nu.mutation.Title(); ok {
		_spec.SetField(notification.FieldTitle, field.TypeString, value)
	}
	if value, ok := nu.mutation.Message(); ok {
		_spec.SetField(notification.FieldMessage, field.TypeString, value)
	}
	if value, ok := nu.mutation.RelatedEntityType(); ok {
		_spec.SetField(notification.FieldRelatedEntityType, field.TypeString, value)
	}
	if nu.mutation.RelatedEntityTypeCleared() {
		_spec.ClearField(notification.FieldRelatedEntityType, field.TypeString)
	}
	if value, ok := nu.mutation.RelatedEntityID(); ok {
		_spec.SetField(notification.FieldRelatedEntityID, field.TypeUUID, value)
	}
	if nu.mutation.RelatedEntityIDCleared() {
		_spec.ClearField(notification.FieldRelatedEntityID, field.TypeUUID)
	}
	if value, ok := nu.mutation.ActionURL(); ok {
		_spec.SetField(notification.FieldActionURL, field.TypeString, value)
	}
	if nu.mutation.ActionURLCleared() {
		_spec.ClearField(notification.FieldActionURL, field.TypeString)
	}
	if value, ok := nu.mutation.Read(); ok {
		_spec.SetField(notification.FieldRead, field.TypeBool, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, nu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	nu.mutation.done = true
	return n, nil
}

// NotificationUpdateOne is the builder for updating a single Notification entity.
type NotificationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NotificationMutation
}

// SetType sets the "type" field.
func (nuo *NotificationUpdateOne) SetType(s string) *NotificationUpdateOne {
	nuo.mutation.SetType(s)
	return nuo
}

// SetNillableType sets the "type" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableType(s *string) *NotificationUpdateOne {
	if s != nil {
		nuo.SetType(*s)
	}
	return nuo
}

// SetTitle sets the "title" field.
func (nuo *NotificationUpdateOne) SetTitle(s string) *NotificationUpdateOne {
	nuo.mutation.SetTitle(s)
	return nuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableTitle(s *string) *NotificationUpdateOne {
	if s != nil {
		nuo.SetTitle(*s)
	}
	return nuo
}

// SetMessage sets the "message" field.
func (nuo *NotificationUpdateOne) SetMessage(s string) *NotificationUpdateOne {
	nuo.mutation.SetMessage(s)
	return nuo
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableMessage(s *string) *NotificationUpdateOne {
	if s != nil {
		nuo.SetMessage(*s)
	}
	return nuo
}

// SetRelatedEntityType sets the "related_entity_type" field.
func (nuo *NotificationUpdateOne) SetRelatedEntityType(s string) *NotificationUpdateOne {
	nuo.mutation.SetRelatedEntityType(s)
	return nuo
}

// SetNillableRelatedEntityType sets the "related_entity_type" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableRelatedEntityType(s *string) *NotificationUpdateOne {
	if s != nil {
		nuo.SetRelatedEntityType(*s)
	}
	return nuo
}

// ClearRelatedEntityType clears the value of the "related_entity_type" field.
func (nuo *NotificationUpdateOne) ClearRelatedEntityType() *NotificationUpdateOne {
	nuo.mutation.ClearRelatedEntityType()
	return nuo
}

// SetRelatedEntityID sets the "related_entity_id" field.
func (nuo *NotificationUpdateOne) SetRelatedEntityID(u uuid.UUID) *NotificationUpdateOne {
	nuo.mutation.SetRelatedEntityID(u)
	return nuo
}

// SetNillableRelatedEntityID sets the "related_entity_id" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableRelatedEntityID(u *uuid.UUID) *NotificationUpdateOne {
	if u != nil {
		nuo.SetRelatedEntityID(*u)
	}
	return nuo
}

// ClearRelatedEntityID clears the value of the "related_entity_id" field.
func (nuo *NotificationUpdateOne) ClearRelatedEntityID() *NotificationUpdateOne {
	nuo.mutation.ClearRelatedEntityID()
	return nuo
}

// SetActionURL sets the "action_url" field.
func (nuo *NotificationUpdateOne) SetActionURL(s string) *NotificationUpdateOne {
	nuo.mutation.SetActionURL(s)
	return nuo
}

// SetNillableActionURL sets the "action_url" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableActionURL(s *string) *NotificationUpdateOne {
	if s != nil {
		nuo.SetActionURL(*s)
	}
	return nuo
}

// ClearActionURL clears the value of the "action_url" field.
func (nuo *NotificationUpdateOne) ClearActionURL() *NotificationUpdateOne {
	nuo.mutation.ClearActionURL()
	return nuo
}

// SetRead sets the "read" field.
func (nuo *NotificationUpdateOne) SetRead(b bool) *NotificationUpdateOne {
	nuo.mutation.SetRead(b)
	return nuo
}

// SetNillableRead sets the "read" field if the given value is not nil.
func (nuo *NotificationUpdateOne) SetNillableRead(b *bool) *NotificationUpdateOne {
	if b != nil {
		nuo.SetRead(*b)
	}
	return nuo
}

// Mutation returns the NotificationMutation object of the builder.
func (nuo *NotificationUpdateOne) Mutation() *NotificationMutation {
	return nuo.mutation
}

// Where appends a list predicates to the NotificationUpdate builder.
func (nuo *NotificationUpdateOne) Where(ps ...predicate.Notification) *NotificationUpdateOne {
	nuo.mutation.Where(ps...)
	return nuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (nuo *NotificationUpdateOne) Select(field string, fields ...string) *NotificationUpdateOne {
	nuo.fields = append([]string{field}, fields...)
	return nuo
}

// Save executes the query and returns the updated Notification entity.
func (nuo *NotificationUpdateOne) Save(ctx context.Context) (*Notification, error) {
	return withHooks(ctx, nuo.sqlSave, nuo.mutation, nuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (nuo *NotificationUpdateOne) SaveX(ctx context.Context) *Notification {
	node, err := nuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (nuo *NotificationUpdateOne) Exec(ctx context.Context) error {
	_, err := nuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (nuo *NotificationUpdateOne) ExecX(ctx context.Context) {
	if err := nuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (nuo *NotificationUpdateOne) check() error {
	if v, ok := nuo.mutation.GetType(); ok {
		if err := notification.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "Notification.type": %w`, err)}
		}
	}
	if v, ok := nuo.mutation.Title(); ok {
		if err := notification.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Notification.title": %w`, err)}
		}
	}
	if nuo.mutation.RecipientCleared() && len(nuo.mutation.RecipientIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Notification.recipient"`)
	}
	return nil
}

func (nuo *NotificationUpdateOne) sqlSave(ctx context.Context) (_node *Notification, err error) {
	if err := nuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notification.Table, notification.Columns, sqlgraph.NewFieldSpec(notification.FieldID, field.TypeUUID))
	id, ok := nuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notification.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := nuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notification.FieldID)
		for _, f := range fields {
			if !notification.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notification.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := nuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := nuo.mutation.GetType(); ok {
		_spec.SetField(notification.FieldType, field.TypeString, value)
	}
	if value, ok := nuo.mutation.Title(); ok {
		_spec.SetField(notification.FieldTitle, field.TypeString, value)
	}
	if value, ok := nuo.mutation.Message(); ok {
		_spec.SetField(notification.FieldMessage, field.TypeString, value)
	}
	if value, ok := nuo.mutation.RelatedEntityType(); ok {
		_spec.SetField(notification.FieldRelatedEntityType, field.TypeString, value)
	}
	if nuo.mutation.RelatedEntityTypeCleared() {
		_spec.ClearField(notification.FieldRelatedEntityType, field.TypeString)
	}
	if value, ok := nuo.mutation.RelatedEntityID(); ok {
		_spec.SetField(notification.FieldRelatedEntityID, field.TypeUUID, value)
	}
	if nuo.mutation.RelatedEntityIDCleared() {
		_spec.ClearField(notification.FieldRelatedEntityID, field.TypeUUID)
	}
	if value, ok := nuo.mutation.ActionURL(); ok {
		_spec.SetField(notification.FieldActionURL, field.TypeString, value)
	}
	if nuo.mutation.ActionURLCleared() {
		_spec.ClearField(notification.FieldActionURL, field.TypeString)
	}
	if value, ok := nuo.mutation.Read(); ok {
		_spec.SetField(notification.FieldRead, field.TypeBool, value)
	}
	_node = &Notification{config: nuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, nuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notification.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	nuo.mutation.done = true
	return _node, nil
}
