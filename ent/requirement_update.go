// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/application"
	"staffhub/ent/predicate"
	"staffhub/ent/requirement"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// RequirementUpdate is the builder for updating Requirement entities.
type RequirementUpdate struct {
	config
	hooks    []Hook
	mutation *RequirementMutation
}

// Where appends a list predicates to the RequirementUpdate builder.
func (ru *RequirementUpdate) Where(ps ...predicate.Requirement) *RequirementUpdate {
	ru.mutation.Where(ps...)
	return ru
}

// SetTitle sets the "title" field.
func (ru *RequirementUpdate) SetTitle(s string) *RequirementUpdate {
	ru.mutation.SetTitle(s)
	return ru
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ru *RequirementUpdate) SetNillableTitle(s *string) *RequirementUpdate {
	if s != nil {
		ru.SetTitle(*s)
	}
	return ru
}

// SetDescription sets the "description" field.
func (ru *RequirementUpdate) SetDescription(s string) *RequirementUpdate {
	ru.mutation.SetDescription(s)
	return ru
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ru *RequirementUpdate) SetNillableDescription(s *string) *RequirementUpdate {
	if s != nil {
		ru.SetDescription(*s)
	}
	return ru
}

// ClearDescription clears the value of the "description" field.
func (ru *RequirementUpdate) ClearDescription() *RequirementUpdate {
	ru.mutation.ClearDescription()
	return ru
}

// SetOrganizationID sets the "organization_id" field.
func (ru *RequirementUpdate) SetOrganizationID(u uuid.UUID) *RequirementUpdate {
	ru.mutation.SetOrganizationID(u)
	return ru
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (ru *RequirementUpdate) SetNillableOrganizationID(u *uuid.UUID) *RequirementUpdate {
	if u != nil {
		ru.SetOrganizationID(*u)
	}
	return ru
}

// SetIsActive sets the "is_active" field.
func (ru *RequirementUpdate) SetIsActive(b bool) *RequirementUpdate {
	ru.mutation.SetIsActive(b)
	return ru
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ru *RequirementUpdate) SetNillableIsActive(b *bool) *RequirementUpdate {
	if b != nil {
		ru.SetIsActive(*b)
	}
	return ru
}

// SetUpdatedAt sets the "updated_at" field.
func (ru *RequirementUpdate) SetUpdatedAt(t time.Time) *RequirementUpdate {
	ru.mutation.SetUpdatedAt(t)
	return ru
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (ru *RequirementUpdate) AddApplicationIDs(ids ...uuid.UUID) *RequirementUpdate {
	ru.mutation.AddApplicationIDs(ids...)
	return ru
}

// AddApplications adds the "applications" edges to the Application entity.
func (ru *RequirementUpdate) AddApplications(a ...*Application) *RequirementUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ru.AddApplicationIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (ru *RequirementUpdate) Mutation() *RequirementMutation {
	return ru.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (ru *RequirementUpdate) ClearApplications() *RequirementUpdate {
	ru.mutation.ClearApplications()
	return ru
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (ru *RequirementUpdate) RemoveApplicationIDs(ids ...uuid.UUID) *RequirementUpdate {
	ru.mutation.RemoveApplicationIDs(ids...)
	return ru
}

// RemoveApplications removes "applications" edges to Application entities.
func (ru *RequirementUpdate) RemoveApplications(a ...*Application) *RequirementUpdate {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ru.RemoveApplicationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (ru *RequirementUpdate) Save(ctx context.Context) (int, error) {
	ru.defaults()
	return withHooks(ctx, ru.sqlSave, ru.mutation, ru.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ru *RequirementUpdate) SaveX(ctx context.Context) int {
	affected, err := ru.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (ru *RequirementUpdate) Exec(ctx context.Context) error {
	_, err := ru.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ru *RequirementUpdate) ExecX(ctx context.Context) {
	if err := ru.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ru *RequirementUpdate) defaults() {
	if _, ok := ru.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		ru.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ru *RequirementUpdate) check() error {
	if v, ok := ru.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	return nil
}

func (ru *RequirementUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := ru.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	if ps := ru.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := ru.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
	}
	if value, ok := ru.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
	}
	if ru.mutation.DescriptionCleared() {
		_spec.ClearField(requirement.FieldDescription, field.TypeString)
	}
	if value, ok := ru.mutation.OrganizationID(); ok {
		_spec.SetField(requirement.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := ru.mutation.IsActive(); ok {
		_spec.SetField(requirement.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := ru.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if ru.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   requirement.ApplicationsTable,
			Columns: []string{requirement.ApplicationsColumn},
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
			Table:   requirement.ApplicationsTable,
			Columns: []string{requirement.ApplicationsColumn},
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
			Table:   requirement.ApplicationsTable,
			Columns: []string{requirement.ApplicationsColumn},
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
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	ru.mutation.done = true
	return n, nil
}

// RequirementUpdateOne is the builder for updating a single Requirement entity.
type RequirementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequirementMutation
}

// SetTitle sets the "title" field.
func (ruo *RequirementUpdateOne) SetTitle(s string) *RequirementUpdateOne {
	ruo.mutation.SetTitle(s)
	return ruo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (ruo *RequirementUpdateOne) SetNillableTitle(s *string) *RequirementUpdateOne {
	if s != nil {
		ruo.SetTitle(*s)
	}
	return ruo
}

// SetDescription sets the "description" field.
func (ruo *RequirementUpdateOne) SetDescription(s string) *RequirementUpdateOne {
	ruo.mutation.SetDescription(s)
	return ruo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (ruo *RequirementUpdateOne) SetNillableDescription(s *string) *RequirementUpdateOne {
	if s != nil {
		ruo.SetDescription(*s)
	}
	return ruo
}

// ClearDescription clears the value of the "description" field.
func (ruo *RequirementUpdateOne) ClearDescription() *RequirementUpdateOne {
	ruo.mutation.ClearDescription()
	return ruo
}

// SetOrganizationID sets the "organization_id" field.
func (ruo *RequirementUpdateOne) SetOrganizationID(u uuid.UUID) *RequirementUpdateOne {
	ruo.mutation.SetOrganizationID(u)
	return ruo
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (ruo *RequirementUpdateOne) SetNillableOrganizationID(u *uuid.UUID) *RequirementUpdateOne {
	if u != nil {
		ruo.SetOrganizationID(*u)
	}
	return ruo
}

// SetIsActive sets the "is_active" field.
func (ruo *RequirementUpdateOne) SetIsActive(b bool) *RequirementUpdateOne {
	ruo.mutation.SetIsActive(b)
	return ruo
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (ruo *RequirementUpdateOne) SetNillableIsActive(b *bool) *RequirementUpdateOne {
	if b != nil {
		ruo.SetIsActive(*b)
	}
	return ruo
}

// SetUpdatedAt sets the "updated_at" field.
func (ruo *RequirementUpdateOne) SetUpdatedAt(t time.Time) *RequirementUpdateOne {
	ruo.mutation.SetUpdatedAt(t)
	return ruo
}

// AddApplicationIDs adds the "applications" edge to the Application entity by IDs.
func (ruo *RequirementUpdateOne) AddApplicationIDs(ids ...uuid.UUID) *RequirementUpdateOne {
	ruo.mutation.AddApplicationIDs(ids...)
	return ruo
}

// AddApplications adds the "applications" edges to the Application entity.
func (ruo *RequirementUpdateOne) AddApplications(a ...*Application) *RequirementUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ruo.AddApplicationIDs(ids...)
}

// Mutation returns the RequirementMutation object of the builder.
func (ruo *RequirementUpdateOne) Mutation() *RequirementMutation {
	return ruo.mutation
}

// ClearApplications clears all "applications" edges to the Application entity.
func (ruo *RequirementUpdateOne) ClearApplications() *RequirementUpdateOne {
	ruo.mutation.ClearApplications()
	return ruo
}

// RemoveApplicationIDs removes the "applications" edge to Application entities by IDs.
func (ruo *RequirementUpdateOne) RemoveApplicationIDs(ids ...uuid.UUID) *RequirementUpdateOne {
	ruo.mutation.RemoveApplicationIDs(ids...)
	return ruo
}

// RemoveApplications removes "applications" edges to Application entities.
func (ruo *RequirementUpdateOne) RemoveApplications(a ...*Application) *RequirementUpdateOne {
	ids := make([]uuid.UUID, len(a))
	for i := range a {
		ids[i] = a[i].ID
	}
	return ruo.RemoveApplicationIDs(ids...)
}

// Where appends a list predicates to the RequirementUpdate builder.
func (ruo *RequirementUpdateOne) Where(ps ...predicate.Requirement) *RequirementUpdateOne {
	ruo.mutation.Where(ps...)
	return ruo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (ruo *RequirementUpdateOne) Select(field string, fields ...string) *RequirementUpdateOne {
	ruo.fields = append([]string{field}, fields...)
	return ruo
}

// Save executes the query and returns the updated Requirement entity.
func (ruo *RequirementUpdateOne) Save(ctx context.Context) (*Requirement, error) {
	ruo.defaults()
	return withHooks(ctx, ruo.sqlSave, ruo.mutation, ruo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (ruo *RequirementUpdateOne) SaveX(ctx context.Context) *Requirement {
	node, err := ruo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (ruo *RequirementUpdateOne) Exec(ctx context.Context) error {
	_, err := ruo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ruo *RequirementUpdateOne) ExecX(ctx context.Context) {
	if err := ruo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ruo *RequirementUpdateOne) defaults() {
	if _, ok := ruo.mutation.UpdatedAt(); !ok {
		v := requirement.UpdateDefaultUpdatedAt()
		ruo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ruo *RequirementUpdateOne) check() error {
	if v, ok := ruo.mutation.Title(); ok {
		if err := requirement.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Requirement.title": %w`, err)}
		}
	}
	return nil
}

func (ruo *RequirementUpdateOne) sqlSave(ctx context.Context) (_node *Requirement, err error) {
	if err := ruo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requirement.Table, requirement.Columns, sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID))
	id, ok := ruo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Requirement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := ruo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requirement.FieldID)
		for _, f := range fields {
			if !requirement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requirement.FieldID {
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
	if value, ok := ruo.mutation.Title(); ok {
		_spec.SetField(requirement.FieldTitle, field.TypeString, value)
	}
	if value, ok := ruo.mutation.Description(); ok {
		_spec.SetField(requirement.FieldDescription, field.TypeString, value)
	}
	if ruo.mutation.DescriptionCleared() {
		_spec.ClearField(requirement.FieldDescription, field.TypeString)
	}
	if value, ok := ruo.mutation.OrganizationID(); ok {
		_spec.SetField(requirement.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := ruo.mutation.IsActive(); ok {
		_spec.SetField(requirement.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := ruo.mutation.UpdatedAt(); ok {
		_spec.SetField(requirement.FieldUpdatedAt, field.TypeTime, value)
	}
	if ruo.mutation.ApplicationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   requirement.ApplicationsTable,
			Columns: []string{requirement.ApplicationsColumn},
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
			Table:   requirement.ApplicationsTable,
			Columns: []string{requirement.ApplicationsColumn},
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
			Table:   requirement.ApplicationsTable,
			Columns: []string{requirement.ApplicationsColumn},
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
	_node = &Requirement{config: ruo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, ruo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requirement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	ruo.mutation.done = true
	return _node, nil
}
