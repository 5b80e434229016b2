// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/applicationhistory"
	"staffhub/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ApplicationHistoryUpdate is the builder for updating ApplicationHistory entities.
type ApplicationHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationHistoryMutation
}

// Where appends a list predicates to the ApplicationHistoryUpdate builder.
func (ahu *ApplicationHistoryUpdate) Where(ps ...predicate.ApplicationHistory) *ApplicationHistoryUpdate {
	ahu.mutation.Where(ps...)
	return ahu
}

// Mutation returns the ApplicationHistoryMutation object of the builder.
func (ahu *ApplicationHistoryUpdate) Mutation() *ApplicationHistoryMutation {
	return ahu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ahu *ApplicationHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, ahu.sqlSave, ahu.mutation, ahu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ahu *ApplicationHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := ahu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ahu *ApplicationHistoryUpdate) Exec(ctx context.Context) error {
	_, err := ahu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ahu *ApplicationHistoryUpdate) ExecX(ctx context.Context) {
	if err := ahu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ahu *ApplicationHistoryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(applicationhistory.Table, applicationhistory.Columns, sqlgraph.NewFieldSpec(applicationhistory.FieldID, field.TypeUUID))
	if ps := ahu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if ahu.mutation.PreviousStatusCleared() {
		_spec.ClearField(applicationhistory.FieldPreviousStatus, field.TypeString)
	}
	if ahu.mutation.NotesCleared() {
		_spec.ClearField(applicationhistory.FieldNotes, field.TypeString)
	}
	if ahu.mutation.DecisionReasonCleared() {
		_spec.ClearField(applicationhistory.FieldDecisionReason, field.TypeJSON)
	}
	if ahu.mutation.FollowUpCleared() {
		_spec.ClearField(applicationhistory.FieldFollowUp, field.TypeJSON)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ahu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ahu.mutation.done = true
	return n, nil
}

// ApplicationHistoryUpdateOne is the builder for updating a single ApplicationHistory entity.
type ApplicationHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationHistoryMutation
}

// Mutation returns the ApplicationHistoryMutation object of the builder.
func (ahuo *ApplicationHistoryUpdateOne) Mutation() *ApplicationHistoryMutation {
	return ahuo.mutation
}

// Where appends a list predicates to the ApplicationHistoryUpdate builder.
func (ahuo *ApplicationHistoryUpdateOne) Where(ps ...predicate.ApplicationHistory) *ApplicationHistoryUpdateOne {
	ahuo.mutation.Where(ps...)
	return ahuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ahuo *ApplicationHistoryUpdateOne) Select(field string, fields ...string) *ApplicationHistoryUpdateOne {
	ahuo.fields = append([]string{field}, fields...)
	return ahuo
}

// Save executes the query and returns the updated ApplicationHistory entity.
func (ahuo *ApplicationHistoryUpdateOne) Save(ctx context.Context) (*ApplicationHistory, error) {
	return withHooks(ctx, ahuo.sqlSave, ahuo.mutation, ahuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ahuo *ApplicationHistoryUpdateOne) SaveX(ctx context.Context) *ApplicationHistory {
	node, err := ahuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ahuo *ApplicationHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := ahuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ahuo *ApplicationHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := ahuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (ahuo *ApplicationHistoryUpdateOne) sqlSave(ctx context.Context) (_node *ApplicationHistory, err error) {
	_spec := sqlgraph.NewUpdateSpec(applicationhistory.Table, applicationhistory.Columns, sqlgraph.NewFieldSpec(applicationhistory.FieldID, field.TypeUUID))
	id, ok := ahuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApplicationHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ahuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, applicationhistory.FieldID)
		for _, f := range fields {
			if !applicationhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != applicationhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ahuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if ahuo.mutation.PreviousStatusCleared() {
		_spec.ClearField(applicationhistory.FieldPreviousStatus, field.TypeString)
	}
	if ahuo.mutation.NotesCleared() {
		_spec.ClearField(applicationhistory.FieldNotes, field.TypeString)
	}
	if ahuo.mutation.DecisionReasonCleared() {
		_spec.ClearField(applicationhistory.FieldDecisionReason, field.TypeJSON)
	}
	if ahuo.mutation.FollowUpCleared() {
		_spec.ClearField(applicationhistory.FieldFollowUp, field.TypeJSON)
	}
	_node = &ApplicationHistory{config: ahuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ahuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{applicationhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ahuo.mutation.done = true
	return _node, nil
}
