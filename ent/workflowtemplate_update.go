// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/predicate"
	"staffhub/ent/workflowinstance"
	"staffhub/ent/workflowtemplate"
	"staffhub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WorkflowTemplateUpdate is the builder for updating WorkflowTemplate entities.
type WorkflowTemplateUpdate struct {
	config
	hooks    []Hook
	mutation *WorkflowTemplateMutation
}

// Where appends a list predicates to the WorkflowTemplateUpdate builder.
func (wtu *WorkflowTemplateUpdate) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateUpdate {
	wtu.mutation.Where(ps...)
	return wtu
}

// SetName sets the "name" field.
func (wtu *WorkflowTemplateUpdate) SetName(s string) *WorkflowTemplateUpdate {
	wtu.mutation.SetName(s)
	return wtu
}

// SetNillableName sets the "name" field if the given value is not nil.
func (wtu *WorkflowTemplateUpdate) SetNillableName(s *string) *WorkflowTemplateUpdate {
	if s != nil {
		wtu.SetName(*s)
	}
	return wtu
}

// SetDescription sets the "description" field.
func (wtu *WorkflowTemplateUpdate) SetDescription(s string) *WorkflowTemplateUpdate {
	wtu.mutation.SetDescription(s)
	return wtu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wtu *WorkflowTemplateUpdate) SetNillableDescription(s *string) *WorkflowTemplateUpdate {
	if s != nil {
		wtu.SetDescription(*s)
	}
	return wtu
}

// ClearDescription clears the value of the "description" field.
func (wtu *WorkflowTemplateUpdate) ClearDescription() *WorkflowTemplateUpdate {
	wtu.mutation.ClearDescription()
	return wtu
}

// SetApplicationTypes sets the "application_types" field.
func (wtu *WorkflowTemplateUpdate) SetApplicationTypes(s []string) *WorkflowTemplateUpdate {
	wtu.mutation.SetApplicationTypes(s)
	return wtu
}

// AppendApplicationTypes appends s to the "application_types" field.
func (wtu *WorkflowTemplateUpdate) AppendApplicationTypes(s []string) *WorkflowTemplateUpdate {
	wtu.mutation.AppendApplicationTypes(s)
	return wtu
}

// SetSteps sets the "steps" field.
func (wtu *WorkflowTemplateUpdate) SetSteps(ms []models.TemplateStep) *WorkflowTemplateUpdate {
	wtu.mutation.SetSteps(ms)
	return wtu
}

// AppendSteps appends ms to the "steps" field.
func (wtu *WorkflowTemplateUpdate) AppendSteps(ms []models.TemplateStep) *WorkflowTemplateUpdate {
	wtu.mutation.AppendSteps(ms)
	return wtu
}

// SetIsActive sets the "is_active" field.
func (wtu *WorkflowTemplateUpdate) SetIsActive(b bool) *WorkflowTemplateUpdate {
	wtu.mutation.SetIsActive(b)
	return wtu
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (wtu *WorkflowTemplateUpdate) SetNillableIsActive(b *bool) *WorkflowTemplateUpdate {
	if b != nil {
		wtu.SetIsActive(*b)
	}
	return wtu
}

// SetIsDefault sets the "is_default" field.
func (wtu *WorkflowTemplateUpdate) SetIsDefault(b bool) *WorkflowTemplateUpdate {
	wtu.mutation.SetIsDefault(b)
	return wtu
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (wtu *WorkflowTemplateUpdate) SetNillableIsDefault(b *bool) *WorkflowTemplateUpdate {
	if b != nil {
		wtu.SetIsDefault(*b)
	}
	return wtu
}

// SetUpdatedBy sets the "updated_by" field.
func (wtu *WorkflowTemplateUpdate) SetUpdatedBy(u uuid.UUID) *WorkflowTemplateUpdate {
	wtu.mutation.SetUpdatedBy(u)
	return wtu
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (wtu *WorkflowTemplateUpdate) SetNillableUpdatedBy(u *uuid.UUID) *WorkflowTemplateUpdate {
	if u != nil {
		wtu.SetUpdatedBy(*u)
	}
	return wtu
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (wtu *WorkflowTemplateUpdate) ClearUpdatedBy() *WorkflowTemplateUpdate {
	wtu.mutation.ClearUpdatedBy()
	return wtu
}

// SetUpdatedAt sets the "updated_at" field.
func (wtu *WorkflowTemplateUpdate) SetUpdatedAt(t time.Time) *WorkflowTemplateUpdate {
	wtu.mutation.SetUpdatedAt(t)
	return wtu
}

// AddInstanceIDs adds the "instances" edge to the WorkflowInstance entity by IDs.
func (wtu *WorkflowTemplateUpdate) AddInstanceIDs(ids ...uuid.UUID) *WorkflowTemplateUpdate {
	wtu.mutation.AddInstanceIDs(ids...)
	return wtu
}

// AddInstances adds the "instances" edges to the WorkflowInstance entity.
func (wtu *WorkflowTemplateUpdate) AddInstances(w ...*WorkflowInstance) *WorkflowTemplateUpdate {
	ids := make([]uuid.UUID, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wtu.AddInstanceIDs(ids...)
}

// Mutation returns the WorkflowTemplateMutation object of the builder.
func (wtu *WorkflowTemplateUpdate) Mutation() *WorkflowTemplateMutation {
	return wtu.mutation
}

// ClearInstances clears all "instances" edges to the WorkflowInstance entity.
func (wtu *WorkflowTemplateUpdate) ClearInstances() *WorkflowTemplateUpdate {
	wtu.mutation.ClearInstances()
	return wtu
}

// RemoveInstanceIDs removes the "instances" edge to WorkflowInstance entities by IDs.
func (wtu *WorkflowTemplateUpdate) RemoveInstanceIDs(ids ...uuid.UUID) *WorkflowTemplateUpdate {
	wtu.mutation.RemoveInstanceIDs(ids...)
	return wtu
}

// RemoveInstances removes "instances" edges to WorkflowInstance entities.
func (wtu *WorkflowTemplateUpdate) RemoveInstances(w ...*WorkflowInstance) *WorkflowTemplateUpdate {
	ids := make([]uuid.UUID, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wtu.RemoveInstanceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (wtu *WorkflowTemplateUpdate) Save(ctx context.Context) (int, error) {
	wtu.defaults()
	return withHooks(ctx, wtu.sqlSave, wtu.mutation, wtu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wtu *WorkflowTemplateUpdate) SaveX(ctx context.Context) int {
	affected, err := wtu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (wtu *WorkflowTemplateUpdate) Exec(ctx context.Context) error {
	_, err := wtu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtu *WorkflowTemplateUpdate) ExecX(ctx context.Context) {
	if err := wtu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wtu *WorkflowTemplateUpdate) defaults() {
	if _, ok := wtu.mutation.UpdatedAt(); !ok {
		v := workflowtemplate.UpdateDefaultUpdatedAt()
		wtu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wtu *WorkflowTemplateUpdate) check() error {
	if v, ok := wtu.mutation.Name(); ok {
		if err := workflowtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.name": %w`, err)}
		}
	}
	return nil
}

func (wtu *WorkflowTemplateUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := wtu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowtemplate.Table, workflowtemplate.Columns, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeUUID))
	if ps := wtu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wtu.mutation.Name(); ok {
		_spec.SetField(workflowtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := wtu.mutation.Description(); ok {
		_spec.SetField(workflowtemplate.FieldDescription, field.TypeString, value)
	}
	if wtu.mutation.DescriptionCleared() {
		_spec.ClearField(workflowtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := wtu.mutation.ApplicationTypes(); ok {
		_spec.SetField(workflowtemplate.FieldApplicationTypes, field.TypeJSON, value)
	}
	if value, ok := wtu.mutation.AppendedApplicationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldApplicationTypes, value)
		})
	}
	if value, ok := wtu.mutation.Steps(); ok {
		_spec.SetField(workflowtemplate.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := wtu.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldSteps, value)
		})
	}
	if value, ok := wtu.mutation.IsActive(); ok {
		_spec.SetField(workflowtemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := wtu.mutation.IsDefault(); ok {
		_spec.SetField(workflowtemplate.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := wtu.mutation.UpdatedBy(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedBy, field.TypeUUID, value)
	}
	if wtu.mutation.UpdatedByCleared() {
		_spec.ClearField(workflowtemplate.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := wtu.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if wtu.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wtu.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !wtu.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wtu.mutation.InstancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, wtu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	wtu.mutation.done = true
	return n, nil
}

// WorkflowTemplateUpdateOne is the builder for updating a single WorkflowTemplate entity.
type WorkflowTemplateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkflowTemplateMutation
}

// SetName sets the "name" field.
func (wtuo *WorkflowTemplateUpdateOne) SetName(s string) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetName(s)
	return wtuo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (wtuo *WorkflowTemplateUpdateOne) SetNillableName(s *string) *WorkflowTemplateUpdateOne {
	if s != nil {
		wtuo.SetName(*s)
	}
	return wtuo
}

// SetDescription sets the "description" field.
func (wtuo *WorkflowTemplateUpdateOne) SetDescription(s string) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetDescription(s)
	return wtuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (wtuo *WorkflowTemplateUpdateOne) SetNillableDescription(s *string) *WorkflowTemplateUpdateOne {
	if s != nil {
		wtuo.SetDescription(*s)
	}
	return wtuo
}

// ClearDescription clears the value of the "description" field.
func (wtuo *WorkflowTemplateUpdateOne) ClearDescription() *WorkflowTemplateUpdateOne {
	wtuo.mutation.ClearDescription()
	return wtuo
}

// SetApplicationTypes sets the "application_types" field.
func (wtuo *WorkflowTemplateUpdateOne) SetApplicationTypes(s []string) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetApplicationTypes(s)
	return wtuo
}

// AppendApplicationTypes appends s to the "application_types" field.
func (wtuo *WorkflowTemplateUpdateOne) AppendApplicationTypes(s []string) *WorkflowTemplateUpdateOne {
	wtuo.mutation.AppendApplicationTypes(s)
	return wtuo
}

// SetSteps sets the "steps" field.
func (wtuo *WorkflowTemplateUpdateOne) SetSteps(ms []models.TemplateStep) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetSteps(ms)
	return wtuo
}

// AppendSteps appends ms to the "steps" field.
func (wtuo *WorkflowTemplateUpdateOne) AppendSteps(ms []models.TemplateStep) *WorkflowTemplateUpdateOne {
	wtuo.mutation.AppendSteps(ms)
	return wtuo
}

// SetIsActive sets the "is_active" field.
func (wtuo *WorkflowTemplateUpdateOne) SetIsActive(b bool) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetIsActive(b)
	return wtuo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (wtuo *WorkflowTemplateUpdateOne) SetNillableIsActive(b *bool) *WorkflowTemplateUpdateOne {
	if b != nil {
		wtuo.SetIsActive(*b)
	}
	return wtuo
}

// SetIsDefault sets the "is_default" field.
func (wtuo *WorkflowTemplateUpdateOne) SetIsDefault(b bool) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetIsDefault(b)
	return wtuo
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (wtuo *WorkflowTemplateUpdateOne) SetNillableIsDefault(b *bool) *WorkflowTemplateUpdateOne {
	if b != nil {
		wtuo.SetIsDefault(*b)
	}
	return wtuo
}

// SetUpdatedBy sets the "updated_by" field.
func (wtuo *WorkflowTemplateUpdateOne) SetUpdatedBy(u uuid.UUID) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetUpdatedBy(u)
	return wtuo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (wtuo *WorkflowTemplateUpdateOne) SetNillableUpdatedBy(u *uuid.UUID) *WorkflowTemplateUpdateOne {
	if u != nil {
		wtuo.SetUpdatedBy(*u)
	}
	return wtuo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (wtuo *WorkflowTemplateUpdateOne) ClearUpdatedBy() *WorkflowTemplateUpdateOne {
	wtuo.mutation.ClearUpdatedBy()
	return wtuo
}

// SetUpdatedAt sets the "updated_at" field.
func (wtuo *WorkflowTemplateUpdateOne) SetUpdatedAt(t time.Time) *WorkflowTemplateUpdateOne {
	wtuo.mutation.SetUpdatedAt(t)
	return wtuo
}

// AddInstanceIDs adds the "instances" edge to the WorkflowInstance entity by IDs.
func (wtuo *WorkflowTemplateUpdateOne) AddInstanceIDs(ids ...uuid.UUID) *WorkflowTemplateUpdateOne {
	wtuo.mutation.AddInstanceIDs(ids...)
	return wtuo
}

// AddInstances adds the "instances" edges to the WorkflowInstance entity.
func (wtuo *WorkflowTemplateUpdateOne) AddInstances(w ...*WorkflowInstance) *WorkflowTemplateUpdateOne {
	ids := make([]uuid.UUID, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wtuo.AddInstanceIDs(ids...)
}

// Mutation returns the WorkflowTemplateMutation object of the builder.
func (wtuo *WorkflowTemplateUpdateOne) Mutation() *WorkflowTemplateMutation {
	return wtuo.mutation
}

// ClearInstances clears all "instances" edges to the WorkflowInstance entity.
func (wtuo *WorkflowTemplateUpdateOne) ClearInstances() *WorkflowTemplateUpdateOne {
	wtuo.mutation.ClearInstances()
	return wtuo
}

// RemoveInstanceIDs removes the "instances" edge to WorkflowInstance entities by IDs.
func (wtuo *WorkflowTemplateUpdateOne) RemoveInstanceIDs(ids ...uuid.UUID) *WorkflowTemplateUpdateOne {
	wtuo.mutation.RemoveInstanceIDs(ids...)
	return wtuo
}

// RemoveInstances removes "instances" edges to WorkflowInstance entities.
func (wtuo *WorkflowTemplateUpdateOne) RemoveInstances(w ...*WorkflowInstance) *WorkflowTemplateUpdateOne {
	ids := make([]uuid.UUID, len(w))
	for i := range w {
		ids[i] = w[i].ID
	}
	return wtuo.RemoveInstanceIDs(ids...)
}

// Where appends a list predicates to the WorkflowTemplateUpdate builder.
func (wtuo *WorkflowTemplateUpdateOne) Where(ps ...predicate.WorkflowTemplate) *WorkflowTemplateUpdateOne {
	wtuo.mutation.Where(ps...)
	return wtuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (wtuo *WorkflowTemplateUpdateOne) Select(field string, fields ...string) *WorkflowTemplateUpdateOne {
	wtuo.fields = append([]string{field}, fields...)
	return wtuo
}

// Save executes the query and returns the updated WorkflowTemplate entity.
func (wtuo *WorkflowTemplateUpdateOne) Save(ctx context.Context) (*WorkflowTemplate, error) {
	wtuo.defaults()
	return withHooks(ctx, wtuo.sqlSave, wtuo.mutation, wtuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (wtuo *WorkflowTemplateUpdateOne) SaveX(ctx context.Context) *WorkflowTemplate {
	node, err := wtuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (wtuo *WorkflowTemplateUpdateOne) Exec(ctx context.Context) error {
	_, err := wtuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (wtuo *WorkflowTemplateUpdateOne) ExecX(ctx context.Context) {
	if err := wtuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (wtuo *WorkflowTemplateUpdateOne) defaults() {
	if _, ok := wtuo.mutation.UpdatedAt(); !ok {
		v := workflowtemplate.UpdateDefaultUpdatedAt()
		wtuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (wtuo *WorkflowTemplateUpdateOne) check() error {
	if v, ok := wtuo.mutation.Name(); ok {
		if err := workflowtemplate.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "WorkflowTemplate.name": %w`, err)}
		}
	}
	return nil
}

func (wtuo *WorkflowTemplateUpdateOne) sqlSave(ctx context.Context) (_node *WorkflowTemplate, err error) {
	if err := wtuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workflowtemplate.Table, workflowtemplate.Columns, sqlgraph.NewFieldSpec(workflowtemplate.FieldID, field.TypeUUID))
	id, ok := wtuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkflowTemplate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := wtuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workflowtemplate.FieldID)
		for _, f := range fields {
			if !workflowtemplate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workflowtemplate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := wtuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := wtuo.mutation.Name(); ok {
		_spec.SetField(workflowtemplate.FieldName, field.TypeString, value)
	}
	if value, ok := wtuo.mutation.Description(); ok {
		_spec.SetField(workflowtemplate.FieldDescription, field.TypeString, value)
	}
	if wtuo.mutation.DescriptionCleared() {
		_spec.ClearField(workflowtemplate.FieldDescription, field.TypeString)
	}
	if value, ok := wtuo.mutation.ApplicationTypes(); ok {
		_spec.SetField(workflowtemplate.FieldApplicationTypes, field.TypeJSON, value)
	}
	if value, ok := wtuo.mutation.AppendedApplicationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldApplicationTypes, value)
		})
	}
	if value, ok := wtuo.mutation.Steps(); ok {
		_spec.SetField(workflowtemplate.FieldSteps, field.TypeJSON, value)
	}
	if value, ok := wtuo.mutation.AppendedSteps(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, workflowtemplate.FieldSteps, value)
		})
	}
	if value, ok := wtuo.mutation.IsActive(); ok {
		_spec.SetField(workflowtemplate.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := wtuo.mutation.IsDefault(); ok {
		_spec.SetField(workflowtemplate.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := wtuo.mutation.UpdatedBy(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedBy, field.TypeUUID, value)
	}
	if wtuo.mutation.UpdatedByCleared() {
		_spec.ClearField(workflowtemplate.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := wtuo.mutation.UpdatedAt(); ok {
		_spec.SetField(workflowtemplate.FieldUpdatedAt, field.TypeTime, value)
	}
	if wtuo.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wtuo.mutation.RemovedInstancesIDs(); len(nodes) > 0 && !wtuo.mutation.InstancesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := wtuo.mutation.InstancesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &WorkflowTemplate{config: wtuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, wtuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workflowtemplate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	wtuo.mutation.done = true
	return _node, nil
}
