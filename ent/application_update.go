// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/application"
	"staffhub/ent/predicate"
	"staffhub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ApplicationUpdate is the builder for updating Application entities.
type ApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *ApplicationMutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (au *ApplicationUpdate) Where(ps ...predicate.Application) *ApplicationUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetStatus sets the "status" field.
func (au *ApplicationUpdate) SetStatus(a application.Status) *ApplicationUpdate {
	au.mutation.SetStatus(a)
	return au
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableStatus(a *application.Status) *ApplicationUpdate {
	if a != nil {
		au.SetStatus(*a)
	}
	return au
}

// SetApplicationType sets the "application_type" field.
func (au *ApplicationUpdate) SetApplicationType(at application.ApplicationType) *ApplicationUpdate {
	au.mutation.SetApplicationType(at)
	return au
}

// SetNillableApplicationType sets the "application_type" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableApplicationType(at *application.ApplicationType) *ApplicationUpdate {
	if at != nil {
		au.SetApplicationType(*at)
	}
	return au
}

// SetOrganizationID sets the "organization_id" field.
func (au *ApplicationUpdate) SetOrganizationID(u uuid.UUID) *ApplicationUpdate {
	au.mutation.SetOrganizationID(u)
	return au
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableOrganizationID(u *uuid.UUID) *ApplicationUpdate {
	if u != nil {
		au.SetOrganizationID(*u)
	}
	return au
}

// SetNotes sets the "notes" field.
func (au *ApplicationUpdate) SetNotes(s string) *ApplicationUpdate {
	au.mutation.SetNotes(s)
	return au
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableNotes(s *string) *ApplicationUpdate {
	if s != nil {
		au.SetNotes(*s)
	}
	return au
}

// ClearNotes clears the value of the "notes" field.
func (au *ApplicationUpdate) ClearNotes() *ApplicationUpdate {
	au.mutation.ClearNotes()
	return au
}

// SetProposedRate sets the "proposed_rate" field.
func (au *ApplicationUpdate) SetProposedRate(mr *models.ProposedRate) *ApplicationUpdate {
	au.mutation.SetProposedRate(mr)
	return au
}

// ClearProposedRate clears the value of the "proposed_rate" field.
func (au *ApplicationUpdate) ClearProposedRate() *ApplicationUpdate {
	au.mutation.ClearProposedRate()
	return au
}

// SetAvailability sets the "availability" field.
func (au *ApplicationUpdate) SetAvailability(m *models.Availability) *ApplicationUpdate {
	au.mutation.SetAvailability(m)
	return au
}

// ClearAvailability clears the value of the "availability" field.
func (au *ApplicationUpdate) ClearAvailability() *ApplicationUpdate {
	au.mutation.ClearAvailability()
	return au
}

// SetWorkflowInstanceID sets the "workflow_instance_id" field.
func (au *ApplicationUpdate) SetWorkflowInstanceID(u uuid.UUID) *ApplicationUpdate {
	au.mutation.SetWorkflowInstanceID(u)
	return au
}

// SetNillableWorkflowInstanceID sets the "workflow_instance_id" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableWorkflowInstanceID(u *uuid.UUID) *ApplicationUpdate {
	if u != nil {
		au.SetWorkflowInstanceID(*u)
	}
	return au
}

// ClearWorkflowInstanceID clears the value of the "workflow_instance_id" field.
func (au *ApplicationUpdate) ClearWorkflowInstanceID() *ApplicationUpdate {
	au.mutation.ClearWorkflowInstanceID()
	return au
}

// SetWorkflowStatus sets the "workflow_status" field.
func (au *ApplicationUpdate) SetWorkflowStatus(as application.WorkflowStatus) *ApplicationUpdate {
	au.mutation.SetWorkflowStatus(as)
	return au
}

// SetNillableWorkflowStatus sets the "workflow_status" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableWorkflowStatus(as *application.WorkflowStatus) *ApplicationUpdate {
	if as != nil {
		au.SetWorkflowStatus(*as)
	}
	return au
}

// SetCurrentWorkflowStep sets the "current_workflow_step" field.
func (au *ApplicationUpdate) SetCurrentWorkflowStep(i int) *ApplicationUpdate {
	au.mutation.ResetCurrentWorkflowStep()
	au.mutation.SetCurrentWorkflowStep(i)
	return au
}

// SetNillableCurrentWorkflowStep sets the "current_workflow_step" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableCurrentWorkflowStep(i *int) *ApplicationUpdate {
	if i != nil {
		au.SetCurrentWorkflowStep(*i)
	}
	return au
}

// AddCurrentWorkflowStep adds i to the "current_workflow_step" field.
func (au *ApplicationUpdate) AddCurrentWorkflowStep(i int) *ApplicationUpdate {
	au.mutation.AddCurrentWorkflowStep(i)
	return au
}

// SetUpdatedBy sets the "updated_by" field.
func (au *ApplicationUpdate) SetUpdatedBy(u uuid.UUID) *ApplicationUpdate {
	au.mutation.SetUpdatedBy(u)
	return au
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (au *ApplicationUpdate) SetNillableUpdatedBy(u *uuid.UUID) *ApplicationUpdate {
	if u != nil {
		au.SetUpdatedBy(*u)
	}
	return au
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (au *ApplicationUpdate) ClearUpdatedBy() *ApplicationUpdate {
	au.mutation.ClearUpdatedBy()
	return au
}

// SetUpdatedAt sets the "updated_at" field.
func (au *ApplicationUpdate) SetUpdatedAt(t time.Time) *ApplicationUpdate {
	au.mutation.SetUpdatedAt(t)
	return au
}

// Mutation returns the ApplicationMutation object of the builder.
func (au *ApplicationUpdate) Mutation() *ApplicationMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *ApplicationUpdate) Save(ctx context.Context) (int, error) {
	au.defaults()
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *ApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *ApplicationUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *ApplicationUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (au *ApplicationUpdate) defaults() {
	if _, ok := au.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		au.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (au *ApplicationUpdate) check() error {
	if v, ok := au.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := au.mutation.ApplicationType(); ok {
		if err := application.ApplicationTypeValidator(v); err != nil {
			return &ValidationError{Name: "application_type", err: fmt.Errorf(`ent: validator failed for field "Application.application_type": %w`, err)}
		}
	}
	if v, ok := au.mutation.WorkflowStatus(); ok {
		if err := application.WorkflowStatusValidator(v); err != nil {
			return &ValidationError{Name: "workflow_status", err: fmt.Errorf(`ent: validator failed for field "Application.workflow_status": %w`, err)}
		}
	}
	if v, ok := au.mutation.CurrentWorkflowStep(); ok {
		if err := application.CurrentWorkflowStepValidator(v); err != nil {
			return &ValidationError{Name: "current_workflow_step", err: fmt.Errorf(`ent: validator failed for field "Application.current_workflow_step": %w`, err)}
		}
	}
	if au.mutation.RequirementCleared() && len(au.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.requirement"`)
	}
	if au.mutation.ResourceCleared() && len(au.mutation.ResourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.resource"`)
	}
	if au.mutation.CreatorCleared() && len(au.mutation.CreatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.creator"`)
	}
	return nil
}

func (au *ApplicationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := au.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.ApplicationType(); ok {
		_spec.SetField(application.FieldApplicationType, field.TypeEnum, value)
	}
	if value, ok := au.mutation.OrganizationID(); ok {
		_spec.SetField(application.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := au.mutation.Notes(); ok {
		_spec.SetField(application.FieldNotes, field.TypeString, value)
	}
	if au.mutation.NotesCleared() {
		_spec.ClearField(application.FieldNotes, field.TypeString)
	}
	if value, ok := au.mutation.ProposedRate(); ok {
		_spec.SetField(application.FieldProposedRate, field.TypeJSON, value)
	}
	if au.mutation.ProposedRateCleared() {
		_spec.ClearField(application.FieldProposedRate, field.TypeJSON)
	}
	if value, ok := au.mutation.Availability(); ok {
		_spec.SetField(application.FieldAvailability, field.TypeJSON, value)
	}
	if au.mutation.AvailabilityCleared() {
		_spec.ClearField(application.FieldAvailability, field.TypeJSON)
	}
	if value, ok := au.mutation.WorkflowInstanceID(); ok {
		_spec.SetField(application.FieldWorkflowInstanceID, field.TypeUUID, value)
	}
	if au.mutation.WorkflowInstanceIDCleared() {
		_spec.ClearField(application.FieldWorkflowInstanceID, field.TypeUUID)
	}
	if value, ok := au.mutation.WorkflowStatus(); ok {
		_spec.SetField(application.FieldWorkflowStatus, field.TypeEnum, value)
	}
	if value, ok := au.mutation.CurrentWorkflowStep(); ok {
		_spec.SetField(application.FieldCurrentWorkflowStep, field.TypeInt, value)
	}
	if value, ok := au.mutation.AddedCurrentWorkflowStep(); ok {
		_spec.AddField(application.FieldCurrentWorkflowStep, field.TypeInt, value)
	}
	if value, ok := au.mutation.UpdatedBy(); ok {
		_spec.SetField(application.FieldUpdatedBy, field.TypeUUID, value)
	}
	if au.mutation.UpdatedByCleared() {
		_spec.ClearField(application.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := au.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// ApplicationUpdateOne is the builder for updating a single Application entity.
type ApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApplicationMutation
}

// SetStatus sets the "status" field.
func (auo *ApplicationUpdateOne) SetStatus(a application.Status) *ApplicationUpdateOne {
	auo.mutation.SetStatus(a)
	return auo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableStatus(a *application.Status) *ApplicationUpdateOne {
	if a != nil {
		auo.SetStatus(*a)
	}
	return auo
}

// SetApplicationType sets the "application_type" field.
func (auo *ApplicationUpdateOne) SetApplicationType(at application.ApplicationType) *ApplicationUpdateOne {
	auo.mutation.SetApplicationType(at)
	return auo
}

// SetNillableApplicationType sets the "application_type" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableApplicationType(at *application.ApplicationType) *ApplicationUpdateOne {
	if at != nil {
		auo.SetApplicationType(*at)
	}
	return auo
}

// SetOrganizationID sets the "organization_id" field.
func (auo *ApplicationUpdateOne) SetOrganizationID(u uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.SetOrganizationID(u)
	return auo
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableOrganizationID(u *uuid.UUID) *ApplicationUpdateOne {
	if u != nil {
		auo.SetOrganizationID(*u)
	}
	return auo
}

// SetNotes sets the "notes" field.
func (auo *ApplicationUpdateOne) SetNotes(s string) *ApplicationUpdateOne {
	auo.mutation.SetNotes(s)
	return auo
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableNotes(s *string) *ApplicationUpdateOne {
	if s != nil {
		auo.SetNotes(*s)
	}
	return auo
}

// ClearNotes clears the value of the "notes" field.
func (auo *ApplicationUpdateOne) ClearNotes() *ApplicationUpdateOne {
	auo.mutation.ClearNotes()
	return auo
}

// SetProposedRate sets the "proposed_rate" field.
func (auo *ApplicationUpdateOne) SetProposedRate(mr *models.ProposedRate) *ApplicationUpdateOne {
	auo.mutation.SetProposedRate(mr)
	return auo
}

// ClearProposedRate clears the value of the "proposed_rate" field.
func (auo *ApplicationUpdateOne) ClearProposedRate() *ApplicationUpdateOne {
	auo.mutation.ClearProposedRate()
	return auo
}

// SetAvailability sets the "availability" field.
func (auo *ApplicationUpdateOne) SetAvailability(m *models.Availability) *ApplicationUpdateOne {
	auo.mutation.SetAvailability(m)
	return auo
}

// ClearAvailability clears the value of the "availability" field.
func (auo *ApplicationUpdateOne) ClearAvailability() *ApplicationUpdateOne {
	auo.mutation.ClearAvailability()
	return auo
}

// SetWorkflowInstanceID sets the "workflow_instance_id" field.
func (auo *ApplicationUpdateOne) SetWorkflowInstanceID(u uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.SetWorkflowInstanceID(u)
	return auo
}

// SetNillableWorkflowInstanceID sets the "workflow_instance_id" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableWorkflowInstanceID(u *uuid.UUID) *ApplicationUpdateOne {
	if u != nil {
		auo.SetWorkflowInstanceID(*u)
	}
	return auo
}

// ClearWorkflowInstanceID clears the value of the "workflow_instance_id" field.
func (auo *ApplicationUpdateOne) ClearWorkflowInstanceID() *ApplicationUpdateOne {
	auo.mutation.ClearWorkflowInstanceID()
	return auo
}

// SetWorkflowStatus sets the "workflow_status" field.
func (auo *ApplicationUpdateOne) SetWorkflowStatus(as application.WorkflowStatus) *ApplicationUpdateOne {
	auo.mutation.SetWorkflowStatus(as)
	return auo
}

// SetNillableWorkflowStatus sets the "workflow_status" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableWorkflowStatus(as *application.WorkflowStatus) *ApplicationUpdateOne {
	if as != nil {
		auo.SetWorkflowStatus(*as)
	}
	return auo
}

// SetCurrentWorkflowStep sets the "current_workflow_step" field.
func (auo *ApplicationUpdateOne) SetCurrentWorkflowStep(i int) *ApplicationUpdateOne {
	auo.mutation.ResetCurrentWorkflowStep()
	auo.mutation.SetCurrentWorkflowStep(i)
	return auo
}

// SetNillableCurrentWorkflowStep sets the "current_workflow_step" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableCurrentWorkflowStep(i *int) *ApplicationUpdateOne {
	if i != nil {
		auo.SetCurrentWorkflowStep(*i)
	}
	return auo
}

// AddCurrentWorkflowStep adds i to the "current_workflow_step" field.
func (auo *ApplicationUpdateOne) AddCurrentWorkflowStep(i int) *ApplicationUpdateOne {
	auo.mutation.AddCurrentWorkflowStep(i)
	return auo
}

// SetUpdatedBy sets the "updated_by" field.
func (auo *ApplicationUpdateOne) SetUpdatedBy(u uuid.UUID) *ApplicationUpdateOne {
	auo.mutation.SetUpdatedBy(u)
	return auo
}

// SetNillableUpdatedBy sets the "updated_by" field if the given value is not nil.
func (auo *ApplicationUpdateOne) SetNillableUpdatedBy(u *uuid.UUID) *ApplicationUpdateOne {
	if u != nil {
		auo.SetUpdatedBy(*u)
	}
	return auo
}

// ClearUpdatedBy clears the value of the "updated_by" field.
func (auo *ApplicationUpdateOne) ClearUpdatedBy() *ApplicationUpdateOne {
	auo.mutation.ClearUpdatedBy()
	return auo
}

// SetUpdatedAt sets the "updated_at" field.
func (auo *ApplicationUpdateOne) SetUpdatedAt(t time.Time) *ApplicationUpdateOne {
	auo.mutation.SetUpdatedAt(t)
	return auo
}

// Mutation returns the ApplicationMutation object of the builder.
func (auo *ApplicationUpdateOne) Mutation() *ApplicationMutation {
	return auo.mutation
}

// Where appends a list predicates to the ApplicationUpdate builder.
func (auo *ApplicationUpdateOne) Where(ps ...predicate.Application) *ApplicationUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *ApplicationUpdateOne) Select(field string, fields ...string) *ApplicationUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Application entity.
func (auo *ApplicationUpdateOne) Save(ctx context.Context) (*Application, error) {
	auo.defaults()
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *ApplicationUpdateOne) SaveX(ctx context.Context) *Application {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *ApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *ApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (auo *ApplicationUpdateOne) defaults() {
	if _, ok := auo.mutation.UpdatedAt(); !ok {
		v := application.UpdateDefaultUpdatedAt()
		auo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (auo *ApplicationUpdateOne) check() error {
	if v, ok := auo.mutation.Status(); ok {
		if err := application.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Application.status": %w`, err)}
		}
	}
	if v, ok := auo.mutation.ApplicationType(); ok {
		if err := application.ApplicationTypeValidator(v); err != nil {
			return &ValidationError{Name: "application_type", err: fmt.Errorf(`ent: validator failed for field "Application.application_type": %w`, err)}
		}
	}
	if v, ok := auo.mutation.WorkflowStatus(); ok {
		if err := application.WorkflowStatusValidator(v); err != nil {
			return &ValidationError{Name: "workflow_status", err: fmt.Errorf(`ent: validator failed for field "Application.workflow_status": %w`, err)}
		}
	}
	if v, ok := auo.mutation.CurrentWorkflowStep(); ok {
		if err := application.CurrentWorkflowStepValidator(v); err != nil {
			return &ValidationError{Name: "current_workflow_step", err: fmt.Errorf(`ent: validator failed for field "Application.current_workflow_step": %w`, err)}
		}
	}
	if auo.mutation.RequirementCleared() && len(auo.mutation.RequirementIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.requirement"`)
	}
	if auo.mutation.ResourceCleared() && len(auo.mutation.ResourceIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.resource"`)
	}
	if auo.mutation.CreatorCleared() && len(auo.mutation.CreatorIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Application.creator"`)
	}
	return nil
}

func (auo *ApplicationUpdateOne) sqlSave(ctx context.Context) (_node *Application, err error) {
	if err := auo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(application.Table, application.Columns, sqlgraph.NewFieldSpec(application.FieldID, field.TypeUUID))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Application.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, application.FieldID)
		for _, f := range fields {
			if !application.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != application.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.Status(); ok {
		_spec.SetField(application.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.ApplicationType(); ok {
		_spec.SetField(application.FieldApplicationType, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.OrganizationID(); ok {
		_spec.SetField(application.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := auo.mutation.Notes(); ok {
		_spec.SetField(application.FieldNotes, field.TypeString, value)
	}
	if auo.mutation.NotesCleared() {
		_spec.ClearField(application.FieldNotes, field.TypeString)
	}
	if value, ok := auo.mutation.ProposedRate(); ok {
		_spec.SetField(application.FieldProposedRate, field.TypeJSON, value)
	}
	if auo.mutation.ProposedRateCleared() {
		_spec.ClearField(application.FieldProposedRate, field.TypeJSON)
	}
	if value, ok := auo.mutation.Availability(); ok {
		_spec.SetField(application.FieldAvailability, field.TypeJSON, value)
	}
	if auo.mutation.AvailabilityCleared() {
		_spec.ClearField(application.FieldAvailability, field.TypeJSON)
	}
	if value, ok := auo.mutation.WorkflowInstanceID(); ok {
		_spec.SetField(application.FieldWorkflowInstanceID, field.TypeUUID, value)
	}
	if auo.mutation.WorkflowInstanceIDCleared() {
		_spec.ClearField(application.FieldWorkflowInstanceID, field.TypeUUID)
	}
	if value, ok := auo.mutation.WorkflowStatus(); ok {
		_spec.SetField(application.FieldWorkflowStatus, field.TypeEnum, value)
	}
	if value, ok := auo.mutation.CurrentWorkflowStep(); ok {
		_spec.SetField(application.FieldCurrentWorkflowStep, field.TypeInt, value)
	}
	if value, ok := auo.mutation.AddedCurrentWorkflowStep(); ok {
		_spec.AddField(application.FieldCurrentWorkflowStep, field.TypeInt, value)
	}
	if value, ok := auo.mutation.UpdatedBy(); ok {
		_spec.SetField(application.FieldUpdatedBy, field.TypeUUID, value)
	}
	if auo.mutation.UpdatedByCleared() {
		_spec.ClearField(application.FieldUpdatedBy, field.TypeUUID)
	}
	if value, ok := auo.mutation.UpdatedAt(); ok {
		_spec.SetField(application.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Application{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{application.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
