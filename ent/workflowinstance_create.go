// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/workflowinstance"
	"staffhub/ent/workflowtemplate"
	"staffhub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WorkflowInstanceCreate is the builder for creating a WorkflowInstance entity.
type WorkflowInstanceCreate struct {
	config
	mutation *WorkflowInstanceMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (wic *WorkflowInstanceCreate) SetApplicationID(u uuid.UUID) *WorkflowInstanceCreate {
	wic.mutation.SetApplicationID(u)
	return wic
}

// SetTemplateID sets the "template_id" field.
func (wic *WorkflowInstanceCreate) SetTemplateID(u uuid.UUID) *WorkflowInstanceCreate {
	wic.mutation.SetTemplateID(u)
	return wic
}

// SetSteps sets the "steps" field.
func (wic *WorkflowInstanceCreate) SetSteps(ms []models.InstanceStep) *WorkflowInstanceCreate {
	wic.mutation.SetSteps(ms)
	return wic
}

// SetCurrentStep sets the "current_step" field.
func (wic *WorkflowInstanceCreate) SetCurrentStep(i int) *WorkflowInstanceCreate {
	wic.mutation.SetCurrentStep(i)
	return wic
}

// SetNillableCurrentStep sets the "current_step" field if the given value is not nil.
func (wic *WorkflowInstanceCreate) SetNillableCurrentStep(i *int) *WorkflowInstanceCreate {
	if i != nil {
		wic.SetCurrentStep(*i)
	}
	return wic
}

// SetStatus sets the "status" field.
func (wic *WorkflowInstanceCreate) SetStatus(w workflowinstance.Status) *WorkflowInstanceCreate {
	wic.mutation.SetStatus(w)
	return wic
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (wic *WorkflowInstanceCreate) SetNillableStatus(w *workflowinstance.Status) *WorkflowInstanceCreate {
	if w != nil {
		wic.SetStatus(*w)
	}
	return wic
}

// SetCompletedAt sets the "completed_at" field.
func (wic *WorkflowInstanceCreate) SetCompletedAt(t time.Time) *WorkflowInstanceCreate {
	wic.mutation.SetCompletedAt(t)
	return wic
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (wic *WorkflowInstanceCreate) SetNillableCompletedAt(t *time.Time) *WorkflowInstanceCreate {
	if t != nil {
		wic.SetCompletedAt(*t)
	}
	return wic
}

// SetOrganizationID sets the "organization_id" field.
func (wic *WorkflowInstanceCreate) SetOrganizationID(u uuid.UUID) *WorkflowInstanceCreate {
	wic.mutation.SetOrganizationID(u)
	return wic
}

// SetCreatedAt sets the "created_at" field.
func (wic *WorkflowInstanceCreate) SetCreatedAt(t time.Time) *WorkflowInstanceCreate {
	wic.mutation.SetCreatedAt(t)
	return wic
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wic *WorkflowInstanceCreate) SetNillableCreatedAt(t *time.Time) *WorkflowInstanceCreate {
	if t != nil {
		wic.SetCreatedAt(*t)
	}
	return wic
}

// SetUpdatedAt sets the "updated_at" field.
func (wic *WorkflowInstanceCreate) SetUpdatedAt(t time.Time) *WorkflowInstanceCreate {
	wic.mutation.SetUpdatedAt(t)
	return wic
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wic *WorkflowInstanceCreate) SetNillableUpdatedAt(t *time.Time) *WorkflowInstanceCreate {
	if t != nil {
		wic.SetUpdatedAt(*t)
	}
	return wic
}

// SetID sets the "id" field.
func (wic *WorkflowInstanceCreate) SetID(u uuid.UUID) *WorkflowInstanceCreate {
	wic.mutation.SetID(u)
	return wic
}

// SetNillableID sets the "id" field if the given value is not nil.
func (wic *WorkflowInstanceCreate) SetNillableID(u *uuid.UUID) *WorkflowInstanceCreate {
	if u != nil {
		wic.SetID(*u)
	}
	return wic
}

// SetTemplate sets the "template" edge to the WorkflowTemplate entity.
func (wic *WorkflowInstanceCreate) SetTemplate(w *WorkflowTemplate) *WorkflowInstanceCreate {
	return wic.SetTemplateID(w.ID)
}

// Mutation returns the WorkflowInstanceMutation object of the builder.
func (wic *WorkflowInstanceCreate) Mutation() *WorkflowInstanceMutation {
	return wic.mutation
}

// Save creates the WorkflowInstance in the database.
func (wic *WorkflowInstanceCreate) Save(ctx context.Context) (*WorkflowInstance, error) {
	wic.defaults()
	return withHooks(ctx, wic.sqlSave, wic.mutation, wic.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wic *WorkflowInstanceCreate) SaveX(ctx context.Context) *WorkflowInstance {
	v, err := wic.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wic *WorkflowInstanceCreate) Exec(ctx context.Context) error {
	_, err := wic.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wic *WorkflowInstanceCreate) ExecX(ctx context.Context) {
	if err := wic.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wic *WorkflowInstanceCreate) defaults() {
	if _, ok := wic.mutation.CurrentStep(); !ok {
		v := workflowinstance.DefaultCurrentStep
		wic.mutation.SetCurrentStep(v)
	}
	if _, ok := wic.mutation.Status(); !ok {
		v := workflowinstance.DefaultStatus
		wic.mutation.SetStatus(v)
	}
	if _, ok := wic.mutation.CreatedAt(); !ok {
		v := workflowinstance.DefaultCreatedAt()
		wic.mutation.SetCreatedAt(v)
	}
	if _, ok := wic.mutation.UpdatedAt(); !ok {
		v := workflowinstance.DefaultUpdatedAt()
		wic.mutation.SetUpdatedAt(v)
	}
	if _, ok := wic.mutation.ID(); !ok {
		v := workflowinstance.DefaultID()
		wic.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wic *WorkflowInstanceCreate) check() error {
	if _, ok := wic.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "WorkflowInstance.application_id"`)}
	}
	if _, ok := wic.mutation.TemplateID(); !ok {
		return &ValidationError{Name: "template_id", err: errors.New(`ent: missing required field "WorkflowInstance.template_id"`)}
	}
	if _, ok := wic.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "WorkflowInstance.steps"`)}
	}
	if _, ok := wic.mutation.CurrentStep(); !ok {
		return &ValidationError{Name: "current_step", err: errors.New(`ent: missing required field "WorkflowInstance.current_step"`)}
	}
	if v, ok := wic.mutation.CurrentStep(); ok {
		if err := workflowinstance.CurrentStepValidator(v); err != nil {
			return &ValidationError{Name: "current_step", err: fmt.Errorf(`ent: validator failed for field "WorkflowInstance.current_step": %w`, err)}
		}
	}
	if _, ok := wic.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkflowInstance.status"`)}
	}
	if v, ok := wic.mutation.Status(); ok {
		if err := workflowinstance.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkflowInstance.status": %w`, err)}
		}
	}
	if _, ok := wic.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "WorkflowInstance.organization_id"`)}
	}
	if _, ok := wic.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowInstance.created_at"`)}
	}
	if _, ok := wic.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowInstance.updated_at"`)}
	}
	if len(wic.mutation.TemplateIDs()) == 0 {
		return &ValidationError{Name: "template", err: errors.New(`ent: missing required edge "WorkflowInstance.template"`)}
	}
	return nil
}

func (wic *WorkflowInstanceCreate) sqlSave(ctx context.Context) (*WorkflowInstance, error) {
	if err := wic.check(); err != nil {
		return nil, err
	}
	_node, _spec := wic.createSpec()
	if err := sqlgraph.CreateNode(ctx, wic.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	wic.mutation.id = &_node.ID
	wic.mutation.done = true
	return _node, nil
}

func (wic *WorkflowInstanceCreate) createSpec() (*WorkflowInstance, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowInstance{config: wic.config}
		_spec = sqlgraph.NewCreateSpec(workflowinstance.Table, sqlgraph.NewFieldSpec(workflowinstance.FieldID, field.TypeUUID))
	)
	if id, ok := wic.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := wic.mutation.ApplicationID(); ok {
		_spec.SetField(workflowinstance.FieldApplicationID, field.TypeUUID, value)
		_node.ApplicationID = value
	}
	if value, ok := wic.mutation.Steps(); ok {
		_spec.SetField(workflowinstance.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := wic.mutation.CurrentStep(); ok {
		_spec.SetField(workflowinstance.FieldCurrentStep, field.TypeInt, value)
		_node.CurrentStep = value
	}
	if value, ok := wic.mutation.Status(); ok {
		_spec.SetField(workflowinstance.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := wic.mutation.CompletedAt(); ok {
		_spec.SetField(workflowinstance.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := wic.mutation.OrganizationID(); ok {
		_spec.SetField(workflowinstance.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := wic.mutation.CreatedAt(); ok {
		_spec.SetField(workflowinstance.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wic.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowinstance.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := wic.mutation.TemplateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   workflowinstance.TemplateTable,
			Columns: []string{workflowinstance.TemplateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TemplateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowInstanceCreateBulk is the builder for creating many WorkflowInstance entities in bulk.
type WorkflowInstanceCreateBulk struct {
	config
	err      error
	builders []*WorkflowInstanceCreate
}

// Save creates the WorkflowInstance entities in the database.
func (wicb *WorkflowInstanceCreateBulk) Save(ctx context.Context) ([]*WorkflowInstance, error) {
	if wicb.err != nil {
		return nil, wicb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wicb.builders))
	nodes := make([]*WorkflowInstance, len(wicb.builders))
	mutators := make([]Mutator, len(wicb.builders))
	for i := range wicb.builders {
		func(i int, root context.Context) {
			builder := wicb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowInstanceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, wicb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wicb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, wicb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wicb *WorkflowInstanceCreateBulk) SaveX(ctx context.Context) []*WorkflowInstance {
	v, err := wicb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wicb *WorkflowInstanceCreateBulk) Exec(ctx context.Context) error {
	_, err := wicb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wicb *WorkflowInstanceCreateBulk) ExecX(ctx context.Context) {
	if err := wicb.Exec(ctx); err != nil {
		panic(err)
	}
}
