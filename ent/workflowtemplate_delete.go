// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"staffhub/ent/predicate"
	"staffhub/ent/workflowtemplate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// WorkflowTemplateDelete is the builder for deleting a WorkflowTemplate entity.
type WorkflowTemplateDelete struct {
	config
	hooks    []Hook
	mutation *WorkflowTemplateMutation
}

// Where appends a list predicates to the WorkflowTemplateDelete builder.
func (wtd *WorkflowTemplateDelete) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateDelete {
	wtd.mutation.Where(ps...)
	return wtd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (wtd *WorkflowTemplateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, wtd.sqlExec, wtd.mutation, wtd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (wtd *WorkflowTemplateDelete) ExecX(ctx context.Context) int {
	n, err := wtd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (wtd *WorkflowTemplateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(workflowtemplate.Table, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeUUID))
	if ps := wtd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, wtd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	wtd.mutation.done = true
	return affected, err
}

// WorkflowTemplateDeleteOne is the builder for deleting a single WorkflowTemplate entity.
type WorkflowTemplateDeleteOne struct {
	wtd *WorkflowTemplateDelete
}

// Where appends a list predicates to the WorkflowTemplateDelete builder.
func (wtdo *WorkflowTemplateDeleteOne) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateDeleteOne {
	wtdo.wtd.mutation.Where(ps...)
	return wtdo
}

// Exec executes the deletion query.
func (wtdo *WorkflowTemplateDeleteOne) Exec(ctx context.Context) error {
	n, err := wtdo.wtd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{workflowtemplate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (wtdo *WorkflowTemplateDeleteOne) ExecX(ctx context.Context) {
	if err := wtdo.Exec(ctx); err != nil {
		panic(err)
	}
}
