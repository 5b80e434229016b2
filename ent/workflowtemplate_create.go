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

// WorkflowTemplateCreate is the builder for creating a WorkflowTemplate entity.
type WorkflowTemplateCreate struct {
	config
	mutation *WorkflowTemplateMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (wtc *WorkflowTemplateCreate) SetName(s string) *WorkflowTemplateCreate {
	wtc.mutation.SetName(s)
	return wtc
}

// SetDescription sets the "description" field.
func (wtc *WorkflowTemplateCreate) SetDescription(s string) *WorkflowTemplateCreate {
	wtc.mutation.SetDescription(s)
	return wtc
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableDescription(s *string) *WorkflowTemplateCreate {
	if s != nil {
		wtc.SetDescription(*s)
	}
	return wtc
}

// SetApplicationTypes sets the "application_types" field.
func (wtc *WorkflowTemplateCreate) SetApplicationTypes(s []string) *WorkflowTemplateCreate {
	wtc.mutation.SetApplicationTypes(s)
	return wtc
}

// SetSteps sets the "steps" field.
func (wtc *WorkflowTemplateCreate) SetSteps(ms []models.TemplateStep) *WorkflowTemplateCreate {
	wtc.mutation.SetSteps(ms)
	return wtc
}

// SetIsActive sets the "is_active" field.
func (wtc *WorkflowTemplateCreate) SetIsActive(b bool) *WorkflowTemplateCreate {
	wtc.mutation.SetIsActive(b)
	return wtc
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableIsActive(b *bool) *WorkflowTemplateCreate {
	if b != nil {
		wtc.SetIsActive(*b)
	}
	return wtc
}

// SetIsDefault sets the "is_default" field.
func (wtc *WorkflowTemplateCreate) SetIsDefault(b bool) *WorkflowTemplateCreate {
	wtc.mutation.SetIsDefault(b)
	return wtc
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableIsDefault(b *bool) *WorkflowTemplateCreate {
	if b != nil {
		wtc.SetIsDefault(*b)
	}
	return wtc
}

// SetCreatedBy sets the "created_by" field.
func (wtc *WorkflowTemplateCreate) SetCreatedBy(u uuid.UUID) *WorkflowTemplateCreate {
	wtc.mutation.SetCreatedBy(u)
	return wtc
}

// SetUpdatedBy sets the "updated_by" field.
func (wtc *WorkflowTemplateCreate) SetUpdatedBy(u uuid.UUID) *WorkflowTemplateCreate {
	wtc.mutation.SetUpdatedBy(u)
	return wtc
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableUpdatedBy(u *uuid.UUID) *WorkflowTemplateCreate {
	if u != nil {
		wtc.SetUpdatedBy(*u)
	}
	return wtc
}

// SetCreatedAt sets the "created_at" field.
func (wtc *WorkflowTemplateCreate) SetCreatedAt(t time.Time) *WorkflowTemplateCreate {
	wtc.mutation.SetCreatedAt(t)
	return wtc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableCreatedAt(t *time.Time) *WorkflowTemplateCreate {
	if t != nil {
		wtc.SetCreatedAt(*t)
	}
	return wtc
}

// SetUpdatedAt sets the "updated_at" field.
func (wtc *WorkflowTemplateCreate) SetUpdatedAt(t time.Time) *WorkflowTemplateCreate {
	wtc.mutation.SetUpdatedAt(t)
	return wtc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableUpdatedAt(t *time.Time) *WorkflowTemplateCreate {
	if t != nil {
		wtc.SetUpdatedAt(*t)
	}
	return wtc
}

// SetID sets the "id" field.
func (wtc *WorkflowTemplateCreate) SetID(u uuid.UUID) *WorkflowTemplateCreate {
	wtc.mutation.SetID(u)
	return wtc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (wtc *WorkflowTemplateCreate) SetNillableID(u *uuid.UUID) *WorkflowTemplateCreate {
	if u != nil {
		wtc.SetID(*u)
	}
	return wtc
}

// AddInstanceIDs adds the "instances" edge to the WorkflowInstance entity by IDs.
func (wtc *WorkflowTemplateCreate) AddInstanceIDs(ids ...uuid.UUID) *WorkflowTemplateCreate {
	wtc.mutation.AddInstanceIDs(ids...)
	return wtc
}

// AddInstances adds the "instances" edges to the WorkflowInstance entity.
func (wtc *WorkflowTemplateCreate) AddInstances(w ...*WorkflowInstance) *WorkflowTemplateCreate {
	ids := make([]uuid.UUID, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wtc.AddInstanceIDs(ids...)
}

// Mutation returns the WorkflowTemplateMutation object of the builder.
func (wtc *WorkflowTemplateCreate) Mutation() *WorkflowTemplateMutation {
	return wtc.mutation
}

// Save creates the WorkflowTemplate in the database.
func (wtc *WorkflowTemplateCreate) Save(ctx context.Context) (*WorkflowTemplate, error) {
	wtc.defaults()
	return withHooks(ctx, wtc.sqlSave, wtc.mutation, wtc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (wtc *WorkflowTemplateCreate) SaveX(ctx context.Context) *WorkflowTemplate {
	v, err := wtc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wtc *WorkflowTemplateCreate) Exec(ctx context.Context) error {
	_, err := wtc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtc *WorkflowTemplateCreate) ExecX(ctx context.Context) {
	if err := wtc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wtc *WorkflowTemplateCreate) defaults() {
	if _, ok := wtc.mutation.IsActive(); !ok {
		v := workflowtemplate.DefaultIsActive
		wtc.mutation.SetIsActive(v)
	}
	if _, ok := wtc.mutation.IsDefault(); !ok {
		v := workflowtemplate.DefaultIsDefault
		wtc.mutation.SetIsDefault(v)
	}
	if _, ok := wtc.mutation.CreatedAt(); !ok {
		v := workflowtemplate.DefaultCreatedAt()
		wtc.mutation.SetCreatedAt(v)
	}
	if _, ok := wtc.mutation.UpdatedAt(); !ok {
		v := workflowtemplate.DefaultUpdatedAt()
		wtc.mutation.SetUpdatedAt(v)
	}
	if _, ok := wtc.mutation.ID(); !ok {
		v := workflowtemplate.DefaultID()
		wtc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wtc *WorkflowTemplateCreate) check() error {
	if _, ok := wtc.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "WorkflowTemplate.name"`)}
	}
	if v, ok := wtc.mutation.Name(); ok {
		if err := workflowtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.name": %w`, err)}
		}
	}
	if _, ok := wtc.mutation.ApplicationTypes(); !ok {
		return &ValidationError{Name: "application_types", err: errors.New(`ent: missing required field "WorkflowTemplate.application_types"`)}
	}
	if _, ok := wtc.mutation.Steps(); !ok {
		return &ValidationError{Name: "steps", err: errors.New(`ent: missing required field "WorkflowTemplate.steps"`)}
	}
	if _, ok := wtc.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "WorkflowTemplate.is_active"`)}
	}
	if _, ok := wtc.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "WorkflowTemplate.is_default"`)}
	}
	if _, ok := wtc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "WorkflowTemplate.created_by"`)}
	}
	if _, ok := wtc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkflowTemplate.created_at"`)}
	}
	if _, ok := wtc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "WorkflowTemplate.updated_at"`)}
	}
	return nil
}

func (wtc *WorkflowTemplateCreate) sqlSave(ctx context.Context) (*WorkflowTemplate, error) {
	if err := wtc.check(); err != nil {
		return nil, err
	}
	_node, _spec := wtc.createSpec()
	if err := sqlgraph.CreateNode(ctx, wtc.driver, _spec); err != nil {
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
	wtc.mutation.id = &_node.ID
	wtc.mutation.done = true
	return _node, nil
}

func (wtc *WorkflowTemplateCreate) createSpec() (*WorkflowTemplate, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkflowTemplate{config: wtc.config}
		_spec = sqlgraph.NewCreateSpec(workflowtemplate.Table, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeUUID))
	)
	if id, ok := wtc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := wtc.mutation.Name(); ok {
		_spec.SetField(workflowtemplate.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := wtc.mutation.Description(); ok {
		_spec.SetField(workflowtemplate.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := wtc.mutation.ApplicationTypes(); ok {
		_spec.SetField(workflowtemplate.FieldApplicationTypes, field.TypeJSON, value)
		_node.ApplicationTypes = value
	}
	if value, ok := wtc.mutation.Steps(); ok {
		_spec.SetField(workflowtemplate.FieldSteps, field.TypeJSON, value)
		_node.Steps = value
	}
	if value, ok := wtc.mutation.IsActive(); ok {
		_spec.SetField(workflowtemplate.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := wtc.mutation.IsDefault(); ok {
		_spec.SetField(workflowtemplate.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := wtc.mutation.CreatedBy(); ok {
		_spec.SetField(workflowtemplate.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if value, ok := wtc.mutation.UpdatedBy(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedBy, field.TypeUUID, value)
		_node.UpdatedBy = &value
	}
	if value, ok := wtc.mutation.CreatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := wtc.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := wtc.mutation.InstancesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   workflowtemplate.InstancesTable,
			Columns: []string{workflowtemplate.InstancesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(workflowinstance.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WorkflowTemplateCreateBulk is the builder for creating many WorkflowTemplate entities in bulk.
type WorkflowTemplateCreateBulk struct {
	config
	err      error
	builders []*WorkflowTemplateCreate
}

// Save creates the WorkflowTemplate entities in the database.
func (wtcb *WorkflowTemplateCreateBulk) Save(ctx context.Context) ([]*WorkflowTemplate, error) {
	if wtcb.err != nil {
		return nil, wtcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(wtcb.builders))
	nodes := make([]*WorkflowTemplate, len(wtcb.builders))
	mutators := make([]Mutator, len(wtcb.builders))
	for i := range wtcb.builders {
		func(i int, root context.Context) {
			builder := wtcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkflowTemplateMutation)
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
					_, err = mutators[i+1].Mutate(root, wtcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, wtcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, wtcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (wtcb *WorkflowTemplateCreateBulk) SaveX(ctx context.Context) []*WorkflowTemplate {
	v, err := wtcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (wtcb *WorkflowTemplateCreateBulk) Exec(ctx context.Context) error {
	_, err := wtcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtcb *WorkflowTemplateCreateBulk) ExecX(ctx context.Context) {
	if err := wtcb.Exec(ctx); err != nil {
		panic(err)
	}
}
