// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/application"
	"staffhub/ent/predicate"
	"staffhub/ent/resource"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ResourceUpdate is the builder for updating Resource entities.
type ResourceUpdate struct {
	config
	hooks    []Hook
	mutation *ResourceMutation
}

// Where appends a list predicates to the ResourceUpdate builder.
func (ru *ResourceUpdate) Where(ps ...predicate.Resource) *ResourceUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetName sets the "name" field.
func (ru *ResourceUpdate) SetName(s string) *ResourceUpdate {
	ru.mutation.SetName(s)
	return ru
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ru *ResourceUpdate) SetNillableName(s *string) *ResourceUpdate {
	if s != nil {
		ru.SetName(*s)
	}
	return ru
}

// SetSummary sets the "summary" field.
func (ru *ResourceUpdate) SetSummary(s string) *ResourceUpdate {
	ru.mutation.SetSummary(s)
	return ru
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (ru *ResourceUpdate) SetNillableSummary(s *string) *ResourceUpdate {
	if s != nil {
		ru.SetSummary(*s)
	}
	return ru
}

// ClearSummary clears the value of the "summary" field.
func (ru *ResourceUpdate) ClearSummary() *ResourceUpdate {
	ru.mutation.ClearSummary()
	return ru
}

// SetOrganizationID sets the "organization_id" field.
func (ru *ResourceUpdate) SetOrganizationID(u uuid.UUID) *ResourceUpdate {
	ru.mutation.SetOrganizationID(u)
	return ru
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (ru *ResourceUpdate) SetNillableOrganizationID(u *uuid.UUID) *ResourceUpdate {
	if u != nil {
		ru.SetOrganizationID(*u)
	}
	return ru
}

// SetIsActive sets the "is_active" field.
func (ru *ResourceUpdate) SetIsActive(b bool) *ResourceUpdate {
	ru.mutation.SetIsActive(b)
	return ru
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ru *ResourceUpdate) SetNillableIsActive(b *bool) *ResourceUpdate {
	if b != nil {
		ru.SetIsActive(*b)
	}
	return ru
}

// SetUpdatedAt sets the "updated_at" field.
func (ru *ResourceUpdate) SetUpdatedAt(t time.Time) *ResourceUpdate {
	ru.mutation.SetUpdatedAt(t)
	return ru
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (ru *ResourceUpdate) AddApplicationIDs(ids ...uuid.UUID) *ResourceUpdate {
	ru.mutation.AddApplicationIDs(ids...)
	return ru
}

// AddApplications adds the "applications" edges to the Application entity.
func (ru *ResourceUpdate) AddApplications(a ...*Application) *ResourceUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ru.AddApplicationIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (ru *ResourceUpdate) Mutation() *ResourceMutation {
	return ru.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (ru *ResourceUpdate) ClearApplications() *ResourceUpdate {
	ru.mutation.ClearApplications()
	return ru
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (ru *ResourceUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *ResourceUpdate {
	ru.mutation.RemoveApplicationIDs(ids...)
	return ru
}

// RemoveApplications removes "applications" edges to Application entities.
func (ru *ResourceUpdate) RemoveApplications(a ...*Application) *ResourceUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ru.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *ResourceUpdate) Save(ctx context.Context) (int, error) {
	ru.defaults()
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *ResourceUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *ResourceUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *ResourceUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ru *ResourceUpdate) defaults() {
	if _, ok := ru.mutation.UpdatedAt(); !ok {
		v := resource.UpdateDefaultUpdatedAt()
		ru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *ResourceUpdate) check() error {
	if v, ok := ru.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	return nil
}

func (ru *ResourceUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
	}
	if value, ok := ru.mutation.Summary(); ok {
		_spec.SetField(resource.FieldSummary, field.TypeString, value)
	}
	if ru.mutation.SummaryCleared() {
		_spec.ClearField(resource.FieldSummary, field.TypeString)
	}
	if value, ok := ru.mutation.OrganizationID(); ok {
		_spec.SetField(resource.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := ru.mutation.IsActive(); ok {
		_spec.SetField(resource.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := ru.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
	}
	if ru.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.ApplicationsTable,
			Columns: []string{resource.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !ru.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.ApplicationsTable,
			Columns: []string{resource.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ru.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.ApplicationsTable,
			Columns: []string{resource.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, ru.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// ResourceUpdateOne is the builder for updating a single Resource entity.
type ResourceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResourceMutation
}

// SetName sets the "name" field.
func (ruo *ResourceUpdateOne) SetName(s string) *ResourceUpdateOne {
	ruo.mutation.SetName(s)
	return ruo
}

// SetNillableName sets the "name" field if the given value is not nil.
func (ruo *ResourceUpdateOne) SetNillableName(s *string) *ResourceUpdateOne {
	if s != nil {
		ruo.SetName(*s)
	}
	return ruo
}

// SetSummary sets the "summary" field.
func (ruo *ResourceUpdateOne) SetSummary(s string) *ResourceUpdateOne {
	ruo.mutation.SetSummary(s)
	return ruo
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (ruo *ResourceUpdateOne) SetNillableSummary(s *string) *ResourceUpdateOne {
	if s != nil {
		ruo.SetSummary(*s)
	}
	return ruo
}

// ClearSummary clears the value of the "summary" field.
func (ruo *ResourceUpdateOne) ClearSummary() *ResourceUpdateOne {
	ruo.mutation.ClearSummary()
	return ruo
}

// SetOrganizationID sets the "organization_id" field.
func (ruo *ResourceUpdateOne) SetOrganizationID(u uuid.UUID) *ResourceUpdateOne {
	ruo.mutation.SetOrganizationID(u)
	return ruo
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (ruo *ResourceUpdateOne) SetNillableOrganizationID(u *uuid.UUID) *ResourceUpdateOne {
	if u != nil {
		ruo.SetOrganizationID(*u)
	}
	return ruo
}

// SetIsActive sets the "is_active" field.
func (ruo *ResourceUpdateOne) SetIsActive(b bool) *ResourceUpdateOne {
	ruo.mutation.SetIsActive(b)
	return ruo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ruo *ResourceUpdateOne) SetNillableIsActive(b *bool) *ResourceUpdateOne {
	if b != nil {
		ruo.SetIsActive(*b)
	}
	return ruo
}

// SetUpdatedAt sets the "updated_at" field.
func (ruo *ResourceUpdateOne) SetUpdatedAt(t time.Time) *ResourceUpdateOne {
	ruo.mutation.SetUpdatedAt(t)
	return ruo
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (ruo *ResourceUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *ResourceUpdateOne {
	ruo.mutation.AddApplicationIDs(ids...)
	return ruo
}

// AddApplications adds the "applications" edges to the Application entity.
func (ruo *ResourceUpdateOne) AddApplications(a ...*Application) *ResourceUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ruo.AddApplicationIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (ruo *ResourceUpdateOne) Mutation() *ResourceMutation {
	return ruo.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (ruo *ResourceUpdateOne) ClearApplications() *ResourceUpdateOne {
	ruo.mutation.ClearApplications()
	return ruo
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (ruo *ResourceUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *ResourceUpdateOne {
	ruo.mutation.RemoveApplicationIDs(ids...)
	return ruo
}

// RemoveApplications removes "applications" edges to Application entities.
func (ruo *ResourceUpdateOne) RemoveApplications(a ...*Application) *ResourceUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ruo.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the ResourceUpdate builder.
func (ruo *ResourceUpdateOne) Where(ps ...predicate.Resource) *ResourceUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *ResourceUpdateOne) Select(field string, fields ...string) *ResourceUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Resource entity.
func (ruo *ResourceUpdateOne) Save(ctx context.Context) (*Resource, error) {
	ruo.defaults()
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *ResourceUpdateOne) SaveX(ctx context.Context) *Resource {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *ResourceUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *ResourceUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ruo *ResourceUpdateOne) defaults() {
	if _, ok := ruo.mutation.UpdatedAt(); !ok {
		v := resource.UpdateDefaultUpdatedAt()
		ruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *ResourceUpdateOne) check() error {
	if v, ok := ruo.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	return nil
}

func (ruo *ResourceUpdateOne) sqlSave(ctx context.Context) (_node *Resource, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(resource.Table, resource.Columns, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Resource.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, resource.FieldID)
		for _, f := range fields {
			if !resource.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != resource.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := ruo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ruo.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Summary(); ok {
		_spec.SetField(resource.FieldSummary, field.TypeString, value)
	}
	if ruo.mutation.SummaryCleared() {
		_spec.ClearField(resource.FieldSummary, field.TypeString)
	}
	if value, ok := ruo.mutation.OrganizationID(); ok {
		_spec.SetField(resource.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := ruo.mutation.IsActive(); ok {
		_spec.SetField(resource.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.UpdatedAt(); ok {
		_spec.SetField(resource.FieldUpdatedAt, field.TypeTime, value)
	}
	if ruo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.ApplicationsTable,
			Columns: []string{resource.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.RemovedApplicationsIDs(); len(nodes) > 0 && !ruo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.ApplicationsTable,
			Columns: []string{resource.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := ruo.mutation.ApplicationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   resource.ApplicationsTable,
			Columns: []string{resource.ApplicationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Resource{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{resource.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
