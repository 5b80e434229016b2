// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"staffhub/ent/applicationhistory"
	"staffhub/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// ApplicationHistoryDelete is the builder for deleting a ApplicationHistory entity.
type ApplicationHistoryDelete struct {
	config
	hooks    []Hook
	mutation *ApplicationHistoryMutation
}

// Where appends a list predicates to the ApplicationHistoryDelete builder.
func (ahd *ApplicationHistoryDelete) Where(ps ...predicate.ApplicationHistory) *ApplicationHistoryDelete {
	ahd.mutation.Where(ps...)
	return ahd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (ahd *ApplicationHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, ahd.sqlExec, ahd.mutation, ahd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (ahd *ApplicationHistoryDelete) ExecX(ctx context.Context) int {
	n, err := ahd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (ahd *ApplicationHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(applicationhistory.Table, sqlgraph.NewFieldSpec(applicationhistory.FieldID, field.TypeUUID))
	if ps := ahd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, ahd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	ahd.mutation.done = true
	return affected, err
}

// ApplicationHistoryDeleteOne is the builder for deleting a single ApplicationHistory entity.
type ApplicationHistoryDeleteOne struct {
	ahd *ApplicationHistoryDelete
}

// Where appends a list predicates to the ApplicationHistoryDelete builder.
func (ahdo *ApplicationHistoryDeleteOne) Where(ps ...predicate.ApplicationHistory) *ApplicationHistoryDeleteOne {
	ahdo.ahd.mutation.Where(ps...)
	return ahdo
}

// Exec executes the deletion query.
func (ahdo *ApplicationHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := ahdo.ahd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{applicationhistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (ahdo *ApplicationHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := ahdo.Exec(ctx); err != nil {
		panic(err)
	}
}
