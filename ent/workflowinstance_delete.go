// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"staffhub/ent/predicate"
	"staffhub/ent/workflowinstance"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// WorkflowInstanceDelete is the builder for deleting a WorkflowInstance entity.
type WorkflowInstanceDelete struct {
	config
	hooks    []Hook
	mutation *WorkflowInstanceMutation
}

// Where appends a list predicates to the WorkflowInstanceDelete builder.
func (wid *WorkflowInstanceDelete) Where(ps ...predicate.WorkflowInstance) *WorkflowInstanceDelete {
	wid.mutation.Where(ps...)
	return wid
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wid *WorkflowInstanceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wid.sqlExec, wid.mutation, wid.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wid *WorkflowInstanceDelete) ExecX(ctx context.Context) int {
	n, err := wid.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wid *WorkflowInstanceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workflowinstance.Table, sqlgraph.NewFieldSpec(workflowinstance.FieldID, field.TypeUUID))
	if ps := wid.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wid.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wid.mutation.done = true
	return affected, err
}

// WorkflowInstanceDeleteOne is the builder for deleting a single WorkflowInstance entity.
type WorkflowInstanceDeleteOne struct {
	wid *WorkflowInstanceDelete
}

// Where appends a list predicates to the WorkflowInstanceDelete builder.
func (wido *WorkflowInstanceDeleteOne) Where(ps ...predicate.WorkflowInstance) *WorkflowInstanceDeleteOne {
	wido.wid.mutation.Where(ps...)
	return wido
}

// Exec executes the deletion query.
func (wido *WorkflowInstanceDeleteOne) Exec(ctx context.Context) error {
	n, err := wido.wid.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workflowinstance.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wido *WorkflowInstanceDeleteOne) ExecX(ctx context.Context) {
	if err := wido.Exec(ctx); err != nil {
		panic(err)
	}
}
