// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"staffhub/ent/applicationhistory"
	"staffhub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// ApplicationHistoryCreate is the builder for creating a ApplicationHistory entity.
type ApplicationHistoryCreate struct {
	config
	mutation *ApplicationHistoryMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (ahc *ApplicationHistoryCreate) SetApplicationID(u uuid.UUID) *ApplicationHistoryCreate {
	ahc.mutation.SetApplicationID(u)
	return ahc
}

// SetStatus sets the "status" field.
func (ahc *ApplicationHistoryCreate) SetStatus(s string) *ApplicationHistoryCreate {
	ahc.mutation.SetStatus(s)
	return ahc
}

// SetPreviousStatus sets the "previous_status" field.
func (ahc *ApplicationHistoryCreate) SetPreviousStatus(s string) *ApplicationHistoryCreate {
	ahc.mutation.SetPreviousStatus(s)
	return ahc
}

// SetNillablePreviousStatus sets the "previous_status" field if the given value is not nil.
func (ahc *ApplicationHistoryCreate) SetNillablePreviousStatus(s *string) *ApplicationHistoryCreate {
	if s != nil {
		ahc.SetPreviousStatus(*s)
	}
	return ahc
}

// SetNotes sets the "notes" field.
func (ahc *ApplicationHistoryCreate) SetNotes(s string) *ApplicationHistoryCreate {
	ahc.mutation.SetNotes(s)
	return ahc
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (ahc *ApplicationHistoryCreate) SetNillableNotes(s *string) *ApplicationHistoryCreate {
	if s != nil {
		ahc.SetNotes(*s)
	}
	return ahc
}

// SetDecisionReason sets the "decision_reason" field.
func (ahc *ApplicationHistoryCreate) SetDecisionReason(mr *models.DecisionReason) *ApplicationHistoryCreate {
	ahc.mutation.SetDecisionReason(mr)
	return ahc
}

// SetNotifyCandidate sets the "notify_candidate" field.
func (ahc *ApplicationHistoryCreate) SetNotifyCandidate(b bool) *ApplicationHistoryCreate {
	ahc.mutation.SetNotifyCandidate(b)
	return ahc
}

// SetNillableNotifyCandidate sets the "notify_candidate" field if the given value is not nil.
func (ahc *ApplicationHistoryCreate) SetNillableNotifyCandidate(b *bool) *ApplicationHistoryCreate {
	if b != nil {
		ahc.SetNotifyCandidate(*b)
	}
	return ahc
}

// SetNotifyClient sets the "notify_client" field.
func (ahc *ApplicationHistoryCreate) SetNotifyClient(b bool) *ApplicationHistoryCreate {
	ahc.mutation.SetNotifyClient(b)
	return ahc
}

// SetNillableNotifyClient sets the "notify_client" field if the given value is not nil.
func (ahc *ApplicationHistoryCreate) SetNillableNotifyClient(b *bool) *ApplicationHistoryCreate {
	if b != nil {
		ahc.SetNotifyClient(*b)
	}
	return ahc
}

// SetFollowUp sets the "follow_up" field.
func (ahc *ApplicationHistoryCreate) SetFollowUp(mu *models.FollowUp) *ApplicationHistoryCreate {
	ahc.mutation.SetFollowUp(mu)
	return ahc
}

// SetOrganizationID sets the "organization_id" field.
func (ahc *ApplicationHistoryCreate) SetOrganizationID(u uuid.UUID) *ApplicationHistoryCreate {
	ahc.mutation.SetOrganizationID(u)
	return ahc
}

// SetCreatedBy sets the "created_by" field.
func (ahc *ApplicationHistoryCreate) SetCreatedBy(u uuid.UUID) *ApplicationHistoryCreate {
	ahc.mutation.SetCreatedBy(u)
	return ahc
}

// SetCreatedAt sets the "created_at" field.
func (ahc *ApplicationHistoryCreate) SetCreatedAt(t time.Time) *ApplicationHistoryCreate {
	ahc.mutation.SetCreatedAt(t)
	return ahc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (ahc *ApplicationHistoryCreate) SetNillableCreatedAt(t *time.Time) *ApplicationHistoryCreate {
	if t != nil {
		ahc.SetCreatedAt(*t)
	}
	return ahc
}

// SetID sets the "id" field.
func (ahc *ApplicationHistoryCreate) SetID(u uuid.UUID) *ApplicationHistoryCreate {
	ahc.mutation.SetID(u)
	return ahc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (ahc *ApplicationHistoryCreate) SetNillableID(u *uuid.UUID) *ApplicationHistoryCreate {
	if u != nil {
		ahc.SetID(*u)
	}
	return ahc
}

// Mutation returns the ApplicationHistoryMutation object of the builder.
func (ahc *ApplicationHistoryCreate) Mutation() *ApplicationHistoryMutation {
	return ahc.mutation
}

// Save creates the ApplicationHistory in the database.
func (ahc *ApplicationHistoryCreate) Save(ctx context.Context) (*ApplicationHistory, error) {
	ahc.defaults()
	return withHooks(ctx, ahc.sqlSave, ahc.mutation, ahc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ahc *ApplicationHistoryCreate) SaveX(ctx context.Context) *ApplicationHistory {
	v, err := ahc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ahc *ApplicationHistoryCreate) Exec(ctx context.Context) error {
	_, err := ahc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ahc *ApplicationHistoryCreate) ExecX(ctx context.Context) {
	if err := ahc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ahc *ApplicationHistoryCreate) defaults() {
	if _, ok := ahc.mutation.NotifyCandidate(); !ok {
		v := applicationhistory.DefaultNotifyCandidate
		ahc.mutation.SetNotifyCandidate(v)
	}
	if _, ok := ahc.mutation.NotifyClient(); !ok {
		v := applicationhistory.DefaultNotifyClient
		ahc.mutation.SetNotifyClient(v)
	}
	if _, ok := ahc.mutation.CreatedAt(); !ok {
		v := applicationhistory.DefaultCreatedAt()
		ahc.mutation.SetCreatedAt(v)
	}
	if _, ok := ahc.mutation.ID(); !ok {
		v := applicationhistory.DefaultID()
		ahc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ahc *ApplicationHistoryCreate) check() error {
	if _, ok := ahc.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "ApplicationHistory.application_id"`)}
	}
	if _, ok := ahc.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ApplicationHistory.status"`)}
	}
	if v, ok := ahc.mutation.Status(); ok {
		if err := applicationhistory.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ApplicationHistory.status": %w`, err)}
		}
	}
	if _, ok := ahc.mutation.NotifyCandidate(); !ok {
		return &ValidationError{Name: "notify_candidate", err: errors.New(`ent: missing required field "ApplicationHistory.notify_candidate"`)}
	}
	if _, ok := ahc.mutation.NotifyClient(); !ok {
		return &ValidationError{Name: "notify_client", err: errors.New(`ent: missing required field "ApplicationHistory.notify_client"`)}
	}
	if _, ok := ahc.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "ApplicationHistory.organization_id"`)}
	}
	if _, ok := ahc.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ApplicationHistory.created_by"`)}
	}
	if _, ok := ahc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApplicationHistory.created_at"`)}
	}
	return nil
}

func (ahc *ApplicationHistoryCreate) sqlSave(ctx context.Context) (*ApplicationHistory, error) {
	if err := ahc.check(); err != nil {
		return nil, err
	}
	_node, _spec := ahc.createSpec()
	if err := sqlgraph.CreateNode(ctx, ahc.driver, _spec); err != nil {
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
	ahc.mutation.id = &_node.ID
	ahc.mutation.done = true
	return _node, nil
}

func (ahc *ApplicationHistoryCreate) createSpec() (*ApplicationHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &ApplicationHistory{config: ahc.config}
		_spec = sqlgraph.NewCreateSpec(applicationhistory.Table, sqlgraph.NewFieldSpec(applicationhistory.FieldID, field.TypeUUID))
	)
	if id, ok := ahc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := ahc.mutation.ApplicationID(); ok {
		_spec.SetField(applicationhistory.FieldApplicationID, field.TypeUUID, value)
		_node.ApplicationID = value
	}
	if value, ok := ahc.mutation.Status(); ok {
		_spec.SetField(applicationhistory.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := ahc.mutation.PreviousStatus(); ok {
		_spec.SetField(applicationhistory.FieldPreviousStatus, field.TypeString, value)
		_node.PreviousStatus = value
	}
	if value, ok := ahc.mutation.Notes(); ok {
		_spec.SetField(applicationhistory.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := ahc.mutation.DecisionReason(); ok {
		_spec.SetField(applicationhistory.FieldDecisionReason, field.TypeJSON, value)
		_node.DecisionReason = value
	}
	if value, ok := ahc.mutation.NotifyCandidate(); ok {
		_spec.SetField(applicationhistory.FieldNotifyCandidate, field.TypeBool, value)
		_node.NotifyCandidate = value
	}
	if value, ok := ahc.mutation.NotifyClient(); ok {
		_spec.SetField(applicationhistory.FieldNotifyClient, field.TypeBool, value)
		_node.NotifyClient = value
	}
	if value, ok := ahc.mutation.FollowUp(); ok {
		_spec.SetField(applicationhistory.FieldFollowUp, field.TypeJSON, value)
		_node.FollowUp = value
	}
	if value, ok := ahc.mutation.OrganizationID(); ok {
		_spec.SetField(applicationhistory.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := ahc.mutation.CreatedBy(); ok {
		_spec.SetField(applicationhistory.FieldCreatedBy, field.TypeUUID, value)
		_node.CreatedBy = value
	}
	if value, ok := ahc.mutation.CreatedAt(); ok {
		_spec.SetField(applicationhistory.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ApplicationHistoryCreateBulk is the builder for creating many ApplicationHistory entities in bulk.
type ApplicationHistoryCreateBulk struct {
	config
	err      error
	builders []*ApplicationHistoryCreate
}

// Save creates the ApplicationHistory entities in the database.
func (ahcb *ApplicationHistoryCreateBulk) Save(ctx context.Context) ([]*ApplicationHistory, error) {
	if ahcb.err != nil {
		return nil, ahcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(ahcb.builders))
	nodes := make([]*ApplicationHistory, len(ahcb.builders))
	mutators := make([]Mutator, len(ahcb.builders))
	for i := range ahcb.builders {
		func(i int, root context.Context) {
			builder := ahcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApplicationHistoryMutation)
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
					_, err = mutators[i+1].Mutate(root, ahcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, ahcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, ahcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (ahcb *ApplicationHistoryCreateBulk) SaveX(ctx context.Context) []*ApplicationHistory {
	v, err := ahcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ahcb *ApplicationHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := ahcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ahcb *ApplicationHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := ahcb.Exec(ctx); err != nil {
		panic(err)
	}
}
