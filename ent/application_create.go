// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/application"
	"staffhub/ent/requirement"
	"staffhub/ent/resource"
	"staffhub/ent/user"
	"staffhub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ApplicationCreate is the builder for creating a Application entity.
type ApplicationCreate struct {
	config
	mutation *ApplicationMutation
	hooks    []Hook
}

// SetRequirementID sets the "requirement_id" field.
func (ac *ApplicationCreate) SetRequirementID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetRequirementID(u)
	return ac
}

// SetResourceID sets the "resource_id" field.
func (ac *ApplicationCreate) SetResourceID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetResourceID(u)
	return ac
}

// SetStatus sets the "status" field.
func (ac *ApplicationCreate) SetStatus(a application.Status) *ApplicationCreate {
	ac.mutation.SetStatus(a)
	return ac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableStatus(a *application.Status) *ApplicationCreate {
	if a != nil {
		ac.SetStatus(*a)
	}
	return ac
}

// SetApplicationType sets the "application_type" field.
func (ac *ApplicationCreate) SetApplicationType(at application.ApplicationType) *ApplicationCreate {
	ac.mutation.SetApplicationType(at)
	return ac
}

// SetOrganizationID sets the "organization_id" field.
func (ac *ApplicationCreate) SetOrganizationID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetOrganizationID(u)
	return ac
}

// SetNotes sets the "notes" field.
func (ac *ApplicationCreate) SetNotes(s string) *ApplicationCreate {
	ac.mutation.SetNotes(s)
	return ac
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableNotes(s *string) *ApplicationCreate {
	if s != nil {
		ac.SetNotes(*s)
	}
	return ac
}

// SetProposedRate sets the "proposed_rate" field.
func (ac *ApplicationCreate) SetProposedRate(mr *models.ProposedRate) *ApplicationCreate {
	ac.mutation.SetProposedRate(mr)
	return ac
}

// SetAvailability sets the "availability" field.
func (ac *ApplicationCreate) SetAvailability(m *models.Availability) *ApplicationCreate {
	ac.mutation.SetAvailability(m)
	return ac
}

// SetWorkflowInstanceID sets the "workflow_instance_id" field.
func (ac *ApplicationCreate) SetWorkflowInstanceID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetWorkflowInstanceID(u)
	return ac
}

// SetNillableWorkflowInstanceID sets the "workflow_instance_id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableWorkflowInstanceID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetWorkflowInstanceID(*u)
	}
	return ac
}

// SetWorkflowStatus sets the "workflow_status" field.
func (ac *ApplicationCreate) SetWorkflowStatus(as application.WorkflowStatus) *ApplicationCreate {
	ac.mutation.SetWorkflowStatus(as)
	return ac
}

// SetNillableWorkflowStatus sets the "workflow_status" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableWorkflowStatus(as *application.WorkflowStatus) *ApplicationCreate {
	if as != nil {
		ac.SetWorkflowStatus(*as)
	}
	return ac
}

// SetCurrentWorkflowStep sets the "current_workflow_step" field.
func (ac *ApplicationCreate) SetCurrentWorkflowStep(i int) *ApplicationCreate {
	ac.mutation.SetCurrentWorkflowStep(i)
	return ac
}

// SetNillableCurrentWorkflowStep sets the "current_workflow_step" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableCurrentWorkflowStep(i *int) *ApplicationCreate {
	if i != nil {
		ac.SetCurrentWorkflowStep(*i)
	}
	return ac
}

// SetCreatedBy sets the "created_by" field.
func (ac *ApplicationCreate) SetCreatedBy(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetCreatedBy(u)
	return ac
}

// SetUpdatedBy sets the "updated_by" field.
func (ac *ApplicationCreate) SetUpdatedBy(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetUpdatedBy(u)
	return ac
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableUpdatedBy(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetUpdatedBy(*u)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *ApplicationCreate) SetCreatedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableCreatedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetCreatedAt(*t)
	}
	return ac
}

// SetUpdatedAt sets the "updated_at" field.
func (ac *ApplicationCreate) SetUpdatedAt(t time.Time) *ApplicationCreate {
	ac.mutation.SetUpdatedAt(t)
	return ac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableUpdatedAt(t *time.Time) *ApplicationCreate {
	if t != nil {
		ac.SetUpdatedAt(*t)
	}
	return ac
}

// SetID sets the "id" field.
func (ac *ApplicationCreate) SetID(u uuid.UUID) *ApplicationCreate {
	ac.mutation.SetID(u)
	return ac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ac *ApplicationCreate) SetNillableID(u *uuid.UUID) *ApplicationCreate {
	if u != nil {
		ac.SetID(*u)
	}
	return ac
}

// SetRequirement sets the "requirement" edge to the Requirement entity.
func (ac *ApplicationCreate) SetRequirement(r *Requirement) *ApplicationCreate {
	return ac.SetRequirementID(r.ID)
}

// SetResource sets the "resource" edge to the Resource entity.
func (ac *ApplicationCreate) SetResource(r *Resource) *ApplicationCreate {
	return ac.SetResourceID(r.ID)
}

// SetCreatorID sets the "creator" edge to the User entity by ID.
func (ac *ApplicationCreate) SetCreatorID(id uuid.UUID) *ApplicationCreate {
	ac.mutation.SetCreatorID(id)
	return ac
}

// SetCreator sets the "creator" edge to the User entity.
func (ac *ApplicationCreate) SetCreator(u *User) *ApplicationCreate {
	return ac.SetCreatorID(u.ID)
}

// Mutation returns the ApplicationMutation object of the builder.
func (ac *ApplicationCreate) Mutation() *ApplicationMutation {
	return ac.mutation
}

// Save creates the Application in the database.
func (ac *ApplicationCreate) Save(ctx context.Context) (*Application, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *ApplicationCreate) SaveX(ctx context.Context) *Application {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *ApplicationCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *ApplicationCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *ApplicationCreate) defaults() {
	if _, ok := ac.mutation.Status(); !ok {
		v := application.DefaultStatus
		ac.mutation.SetStatus(v)
	}
	if _, ok := ac.mutation.WorkflowStatus(); !ok {
		v := application.DefaultWorkflowStatus
		ac.mutation.SetWorkflowStatus(v)
	}
	if _, ok := ac.mutation.CurrentWorkflowStep(); !ok {
		v := application.DefaultCurrentWorkflowStep
		ac.mutation.SetCurrentWorkflowStep(v)
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		v := application.DefaultCreatedAt()
		ac.mutation.SetCreatedAt(v)
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		v := application.DefaultUpdatedAt()
		ac.mutation.SetUpdatedAt(v)
	}
	if _, ok := ac.mutation.ID(); !ok {
		v := application.DefaultID()
		ac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *ApplicationCreate) check() error {
	if _, ok := ac.mutation.RequirementID(); !ok {
		return &ValidationError{Name: "requirement_id", err: errors.New(`ent: missing required field "Application.requirement_id"`)}
	}
	if _, ok := ac.mutation.ResourceID(); !ok {
		return &ValidationError{Name: "resource_id", err: errors.New(`ent: missing required field "Application.resource_id"`)}
	}
	if _, ok := ac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Application.status"`)}
	}
	if v, ok := ac.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.ApplicationType(); !ok {
		return &ValidationError{Name: "application_type", err: errors.New(`ent: missing required field "Application.application_type"`)}
	}
	if v, ok := ac.mutation.ApplicationType(); ok {
		if err := application.ApplicationTypeValidator(v); err != nil {
			return &ValidationError{Name: "application_type", err: fmt.Errorf(`ent: validator failed for field "Application.application_type": %w`, err)}
		}
	}
	if _, ok := ac.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Application.organization_id"`)}
	}
	if _, ok := ac.mutation.WorkflowStatus(); !ok {
		return &ValidationError{Name: "workflow_status", err: errors.New(`ent: missing required field "Application.workflow_status"`)}
	}
	if v, ok := ac.mutation.WorkflowStatus(); ok {
		if err := application.WorkflowStatusValidator(v); err != nil {
			return &ValidationError{Name: "workflow_status", err: fmt.Errorf(`ent: validator failed for field "Application.workflow_status": %w`, err)}
		}
	}
	if _, ok := ac.mutation.CurrentWorkflowStep(); !ok {
		return &ValidationError{Name: "current_workflow_step", err: errors.New(`ent: missing required field "Application.current_workflow_step"`)}
	}
	if v, ok := ac.mutation.CurrentWorkflowStep(); ok {
		if err := application.CurrentWorkflowStepValidator(v); err != nil {
			return &ValidationError{Name: "current_workflow_step", err: fmt.Errorf(`ent: validator failed for field "Application.current_workflow_step": %w`, err)}
		}
	}
	if _, ok := ac.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "Application.created_by"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Application.created_at"`)}
	}
	if _, ok := ac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Application.updated_at"`)}
	}
	if len(ac.mutation.RequirementIDs()) == 0 {
		return &ValidationError{Name: "requirement", err: errors.New(`ent: missing required edge "Application.requirement"`)}
	}
	if len(ac.mutation.ResourceIDs()) == 0 {
		return &ValidationError{Name: "resource", err: errors.New(`ent: missing required edge "Application.resource"`)}
	}
	if len(ac.mutation.CreatorIDs()) == 0 {
		return &ValidationError{Name: "creator", err: errors.New(`ent: missing required edge "Application.creator"`)}
	}
	return nil
}

func (ac *ApplicationCreate) sqlSave(ctx context.Context) (*Application, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
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
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *ApplicationCreate) createSpec() (*Application, *sqlgraph.CreateSpec) {
	var (
		_node = &Application{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(application.Table, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	)
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ac.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := ac.mutation.ApplicationType(); ok {
		_spec.SetField(application.FieldApplicationType, field.TypeEnum, value)
		_node.ApplicationType = value
	}
	if value, ok := ac.mutation.OrganizationID(); ok {
		_spec.SetField(application.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := ac.mutation.Notes(); ok {
		_spec.SetField(application.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := ac.mutation.ProposedRate(); ok {
		_spec.SetField(application.FieldProposedRate, field.TypeJSON, value)
		_node.ProposedRate = value
	}
	if value, ok := ac.mutation.Availability(); ok {
		_spec.SetField(application.FieldAvailability, field.TypeJSON, value)
		_node.Availability = value
	}
	if value, ok := ac.mutation.WorkflowInstanceID(); ok {
		_spec.SetField(application.FieldWorkflowInstanceID, field.TypeUUID, value)
		_node.WorkflowInstanceID = &value
	}
	if value, ok := ac.mutation.WorkflowStatus(); ok {
		_spec.SetField(application.FieldWorkflowStatus, field.TypeEnum, value)
		_node.WorkflowStatus = value
	}
	if value, ok := ac.mutation.CurrentWorkflowStep(); ok {
		_spec.SetField(application.FieldCurrentWorkflowStep, field.TypeInt, value)
		_node.CurrentWorkflowStep = value
	}
	if value, ok := ac.mutation.UpdatedBy(); ok {
		_spec.SetField(application.FieldUpdatedBy, field.TypeUUID, value)
		_node.UpdatedBy = &value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(application.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := ac.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := ac.mutation.RequirementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.RequirementTable,
			Columns: []string{application.RequirementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requirement.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequirementID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.ResourceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.ResourceTable,
			Columns: []string{application.ResourceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resource.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ResourceID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := ac.mutation.CreatorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   application.CreatorTable,
			Columns: []string{application.CreatorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CreatedBy = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApplicationCreateBulk is the builder for creating many Application entities in bulk.
type ApplicationCreateBulk struct {
	config
	err      error
	builders []*ApplicationCreate
}

// Save creates the Application entities in the database.
func (acb *ApplicationCreateBulk) Save(ctx context.Context) ([]*Application, error) {
	if acb.err != nil {
		return nil, acb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Application, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *ApplicationCreateBulk) SaveX(ctx context.Context) []*Application {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *ApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *ApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}
