// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/predicate"
	"staffhub/ent/workflowinstance"
	"staffhub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WorkflowInstanceUpdate is the builder for updating WorkflowInstance entities.
type WorkflowInstanceUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowInstanceMutation
}

// Where appends a list predicates to the WorkflowInstanceUpdate builder.
func (wiu *WorkflowInstanceUpdate) Where(ps ...predicate.WorkflowInstance) *WorkflowInstanceUpdate {
	wiu.mutation.Where(ps...)
	return wiu
}

// SetSteps sets the "steps" field.
func (wiu *WorkflowInstanceUpdate) SetSteps(ms []models.InstanceStep) *WorkflowInstanceUpdate {
	wiu.mutation.SetSteps(ms)
	return wiu
}

// AppendSteps appends ms to the "steps" field.
func (wiu *WorkflowInstanceUpdate) AppendSteps(ms []models.InstanceStep) *WorkflowInstanceUpdate {
	wiu.mutation.AppendSteps(ms)
	return wiu
}

// SetCurrentStep sets the "current_step" field.
func (wiu *WorkflowInstanceUpdate) SetCurrentStep(i int) *WorkflowInstanceUpdate {
	wiu.mutation.ResetCurrentStep()
	wiu.mutation.SetCurrentStep(i)
	return wiu
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (wiu *WorkflowInstanceUpdate) SetNillableCurrentStep(i *int) *WorkflowInstanceUpdate {
	if i != nil {
		wiu.SetCurrentStep(*i)
	}
	return wiu
}

// AddCurrentStep adds i to the "current_step" field.
func (wiu *WorkflowInstanceUpdate) AddCurrentStep(i int) *WorkflowInstanceUpdate {
	wiu.mutation.AddCurrentStep(i)
	return wiu
}

// SetStatus sets the "status" field.
func (wiu *WorkflowInstanceUpdate) SetStatus(w workflowinstance.Status) *WorkflowInstanceUpdate {
	wiu.mutation.SetStatus(w)
	return wiu
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wiu *WorkflowInstanceUpdate) SetNillableStatus(w *workflowinstance.Status) *WorkflowInstanceUpdate {
	if w != nil {
		wiu.SetStatus(*w)
	}
	return wiu
}

// SetCompletedAt sets the "completed_at" field.
func (wiu *WorkflowInstanceUpdate) SetCompletedAt(t time.Time) *WorkflowInstanceUpdate {
	wiu.mutation.SetCompletedAt(t)
	return wiu
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (wiu *WorkflowInstanceUpdate) SetNillableCompletedAt(t *time.Time) *WorkflowInstanceUpdate {
	if t != nil {
		wiu.SetCompletedAt(*t)
	}
	return wiu
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (wiu *WorkflowInstanceUpdate) ClearCompletedAt() *WorkflowInstanceUpdate {
	wiu.mutation.ClearCompletedAt()
	return wiu
}

// SetOrganizationID sets the "organization_id" field.
func (wiu *WorkflowInstanceUpdate) SetOrganizationID(u uuid.UUID) *WorkflowInstanceUpdate {
	wiu.mutation.SetOrganizationID(u)
	return wiu
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (wiu *WorkflowInstanceUpdate) SetNillableOrganizationID(u *uuid.UUID) *WorkflowInstanceUpdate {
	if u != nil {
		wiu.SetOrganizationID(*u)
	}
	return wiu
}

// SetUpdatedAt sets the "updated_at" field.
func (wiu *WorkflowInstanceUpdate) SetUpdatedAt(t time.Time) *WorkflowInstanceUpdate {
	wiu.mutation.SetUpdatedAt(t)
	return wiu
}

// Mutation returns the WorkflowInstanceMutation object of the builder.
func (wiu *WorkflowInstanceUpdate) Mutation() *WorkflowInstanceMutation {
	return wiu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wiu *WorkflowInstanceUpdate) Save(ctx context.Context) (int, error) {
	wiu.defaults()
	return withHooks(ctx, wiu.sqlSave, wiu.mutation, wiu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wiu *WorkflowInstanceUpdate) SaveX(ctx context.Context) int {
	affected, err := wiu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wiu *WorkflowInstanceUpdate) Exec(ctx context.Context) error {
	_, err := wiu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wiu *WorkflowInstanceUpdate) ExecX(ctx context.Context) {
	if err := wiu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wiu *WorkflowInstanceUpdate) defaults() {
	if _, ok := wiu.mutation.UpdatedAt(); !ok {
		v := workflowinstance.UpdateDefaultUpdatedAt()
		wiu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wiu *WorkflowInstanceUpdate) check() error {
	if v, ok := wiu.mutation.CurrentStep(); ok {
		if err := workflowinstance.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "WorkflowInstance.current_step": %w`, err)}
		}
	}
	if v, ok := wiu.mutation.Status(); ok {
		if err := workflowinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowInstance.status": %w`, err)}
		}
	}
	if wiu.mutation.TemplateCleared() && len(wiu.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowInstance.template"`)
	}
	return nil
}

func (wiu *WorkflowInstanceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wiu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowinstance.Table, workflowinstance.Columns, sqlgraph.NewFieldSpec(workflowinstance.FieldID, field.TypeUUID))
	if ps := wiu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wiu.mutation.Steps(); ok {
		_spec.SetField(workflowinstance.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := wiu.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowinstance.FieldSteps, value)
		})
	}
	if value, ok := wiu.mutation.CurrentStep(); ok {
		_spec.SetField(workflowinstance.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := wiu.mutation.AddedCurrentStep(); ok {
		_spec.AddField(workflowinstance.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := wiu.mutation.Status(); ok {
		_spec.SetField(workflowinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wiu.mutation.CompletedAt(); ok {
		_spec.SetField(workflowinstance.FieldCompletedAt, field.TypeTime, value)
	}
	if wiu.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowinstance.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := wiu.mutation.OrganizationID(); ok {
		_spec.SetField(workflowinstance.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := wiu.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowinstance.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wiu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wiu.mutation.done = true
	return n, nil
}

// WorkflowInstanceUpdateOne is the builder for updating a single WorkflowInstance entity.
type WorkflowInstanceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowInstanceMutation
}

// SetSteps sets the "steps" field.
func (wiuo *WorkflowInstanceUpdateOne) SetSteps(ms []models.InstanceStep) *WorkflowInstanceUpdateOne {
	wiuo.mutation.SetSteps(ms)
	return wiuo
}

// AppendSteps appends ms to the "steps" field.
func (wiuo *WorkflowInstanceUpdateOne) AppendSteps(ms []models.InstanceStep) *WorkflowInstanceUpdateOne {
	wiuo.mutation.AppendSteps(ms)
	return wiuo
}

// SetCurrentStep sets the "current_step" field.
func (wiuo *WorkflowInstanceUpdateOne) SetCurrentStep(i int) *WorkflowInstanceUpdateOne {
	wiuo.mutation.ResetCurrentStep()
	wiuo.mutation.SetCurrentStep(i)
	return wiuo
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (wiuo *WorkflowInstanceUpdateOne) SetNillableCurrentStep(i *int) *WorkflowInstanceUpdateOne {
	if i != nil {
		wiuo.SetCurrentStep(*i)
	}
	return wiuo
}

// AddCurrentStep adds i to the "current_step" field.
func (wiuo *WorkflowInstanceUpdateOne) AddCurrentStep(i int) *WorkflowInstanceUpdateOne {
	wiuo.mutation.AddCurrentStep(i)
	return wiuo
}

// SetStatus sets the "status" field.
func (wiuo *WorkflowInstanceUpdateOne) SetStatus(w workflowinstance.Status) *WorkflowInstanceUpdateOne {
	wiuo.mutation.SetStatus(w)
	return wiuo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wiuo *WorkflowInstanceUpdateOne) SetNillableStatus(w *workflowinstance.Status) *WorkflowInstanceUpdateOne {
	if w != nil {
		wiuo.SetStatus(*w)
	}
	return wiuo
}

// SetCompletedAt sets the "completed_at" field.
func (wiuo *WorkflowInstanceUpdateOne) SetCompletedAt(t time.Time) *WorkflowInstanceUpdateOne {
	wiuo.mutation.SetCompletedAt(t)
	return wiuo
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (wiuo *WorkflowInstanceUpdateOne) SetNillableCompletedAt(t *time.Time) *WorkflowInstanceUpdateOne {
	if t != nil {
		wiuo.SetCompletedAt(*t)
	}
	return wiuo
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (wiuo *WorkflowInstanceUpdateOne) ClearCompletedAt() *WorkflowInstanceUpdateOne {
	wiuo.mutation.ClearCompletedAt()
	return wiuo
}

// SetOrganizationID sets the "organization_id" field.
func (wiuo *WorkflowInstanceUpdateOne) SetOrganizationID(u uuid.UUID) *WorkflowInstanceUpdateOne {
	wiuo.mutation.SetOrganizationID(u)
	return wiuo
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (wiuo *WorkflowInstanceUpdateOne) SetNillableOrganizationID(u *uuid.UUID) *WorkflowInstanceUpdateOne {
	if u != nil {
		wiuo.SetOrganizationID(*u)
	}
	return wiuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wiuo *WorkflowInstanceUpdateOne) SetUpdatedAt(t time.Time) *WorkflowInstanceUpdateOne {
	wiuo.mutation.SetUpdatedAt(t)
	return wiuo
}

// Mutation returns the WorkflowInstanceMutation object of the builder.
func (wiuo *WorkflowInstanceUpdateOne) Mutation() *WorkflowInstanceMutation {
	return wiuo.mutation
}

// Where appends a list predicates to the WorkflowInstanceUpdate builder.
func (wiuo *WorkflowInstanceUpdateOne) Where(ps ...predicate.WorkflowInstance) *WorkflowInstanceUpdateOne {
	wiuo.mutation.Where(ps...)
	return wiuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wiuo *WorkflowInstanceUpdateOne) Select(field string, fields ...string) *WorkflowInstanceUpdateOne {
	wiuo.fields = append([]string{field}, fields...)
	return wiuo
}

// Save executes the query and returns the updated WorkflowInstance entity.
func (wiuo *WorkflowInstanceUpdateOne) Save(ctx context.Context) (*WorkflowInstance, error) {
	wiuo.defaults()
	return withHooks(ctx, wiuo.sqlSave, wiuo.mutation, wiuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wiuo *WorkflowInstanceUpdateOne) SaveX(ctx context.Context) *WorkflowInstance {
	node, err := wiuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wiuo *WorkflowInstanceUpdateOne) Exec(ctx context.Context) error {
	_, err := wiuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wiuo *WorkflowInstanceUpdateOne) ExecX(ctx context.Context) {
	if err := wiuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wiuo *WorkflowInstanceUpdateOne) defaults() {
	if _, ok := wiuo.mutation.UpdatedAt(); !ok {
		v := workflowinstance.UpdateDefaultUpdatedAt()
		wiuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wiuo *WorkflowInstanceUpdateOne) check() error {
	if v, ok := wiuo.mutation.CurrentStep(); ok {
		if err := workflowinstance.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "WorkflowInstance.current_step": %w`, err)}
		}
	}
	if v, ok := wiuo.mutation.Status(); ok {
		if err := workflowinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowInstance.status": %w`, err)}
		}
	}
	if wiuo.mutation.TemplateCleared() && len(wiuo.mutation.TemplateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WorkflowInstance.template"`)
	}
	return nil
}

func (wiuo *WorkflowInstanceUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowInstance, err error) {
	if err := wiuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowinstance.Table, workflowinstance.Columns, sqlgraph.NewFieldSpec(workflowinstance.FieldID, field.TypeUUID))
	id, ok := wiuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowInstance.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wiuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowinstance.FieldID)
		for _, f := range fields {
			if !workflowinstance.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowinstance.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wiuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wiuo.mutation.Steps(); ok {
		_spec.SetField(workflowinstance.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := wiuo.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowinstance.FieldSteps, value)
		})
	}
	if value, ok := wiuo.mutation.CurrentStep(); ok {
		_spec.SetField(workflowinstance.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := wiuo.mutation.AddedCurrentStep(); ok {
		_spec.AddField(workflowinstance.FieldCurrentStep, field.TypeInt, value)
	}
	if value, ok := wiuo.mutation.Status(); ok {
		_spec.SetField(workflowinstance.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := wiuo.mutation.CompletedAt(); ok {
		_spec.SetField(workflowinstance.FieldCompletedAt, field.TypeTime, value)
	}
	if wiuo.mutation.CompletedAtCleared() {
		_spec.ClearField(workflowinstance.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := wiuo.mutation.OrganizationID(); ok {
		_spec.SetField(workflowinstance.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := wiuo.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowinstance.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &WorkflowInstance{config: wiuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wiuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowinstance.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wiuo.mutation.done = true
	return _node, nil
}
