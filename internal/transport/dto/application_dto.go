package dto

import (
	"time"

	"staffhub/internal/models"

	"github.com/google/uuid"
)

// SubmitApplicationRequest creates a new application. Actor comes from the
// auth middleware, never from the body.
type SubmitApplicationRequest struct {
	RequirementID uuid.UUID            `json:"requirement_id" validate:"required"`
	ResourceID    uuid.UUID            `json:"resource_id" validate:"required"`
	Notes         string               `json:"notes" validate:"omitempty,max=2000"`
	ProposedRate  *models.ProposedRate `json:"proposed_rate,omitempty"`
	Availability  *models.Availability `json:"availability,omitempty"`
	Actor         models.Principal     `json:"-"`
}

// ChangeStatusRequest moves an application to a new lifecycle status.
type ChangeStatusRequest struct {
	ApplicationID   uuid.UUID              `json:"-" validate:"required"` // From path
	Status          string                 `json:"status" validate:"required"`
	Notes           string                 `json:"notes" validate:"omitempty,max=2000"`
	DecisionReason  *models.DecisionReason `json:"decision_reason,omitempty"`
	NotifyCandidate bool                   `json:"notify_candidate"`
	NotifyClient    bool                   `json:"notify_client"`
	FollowUp        *models.FollowUp       `json:"follow_up,omitempty"`
	Actor           models.Principal       `json:"-"`
}

// UpdateApplicationRequest mutates the editable detail fields only.
type UpdateApplicationRequest struct {
	ApplicationID uuid.UUID            `json:"-" validate:"required"` // From path
	Notes         *string              `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ProposedRate  *models.ProposedRate `json:"proposed_rate,omitempty"`
	Availability  *models.Availability `json:"availability,omitempty"`
	Actor         models.Principal     `json:"-"`
}

// DeleteApplicationRequest removes an application after the terminal ledger
// record is written.
type DeleteApplicationRequest struct {
	ApplicationID uuid.UUID        `json:"-" validate:"required"` // From path
	Actor         models.Principal `json:"-"`
}

type GetApplicationByIDRequest struct {
	ApplicationID uuid.UUID        `json:"-" validate:"required"` // From path
	Actor         models.Principal `json:"-"`
}

// ListApplicationsRequest filters the application read model. Status accepts a
// single value or a comma-separated list (OR match). The Scope fields are
// visibility filters derived from the actor's role by the service, never
// bound from the query.
type ListApplicationsRequest struct {
	Status        string           `form:"status"`
	RequirementID *uuid.UUID       `form:"requirement_id"`
	ResourceID    *uuid.UUID       `form:"resource_id"`
	Limit         int              `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset        int              `form:"offset,default=0" validate:"omitempty,gte=0"`
	Actor         models.Principal `form:"-"`

	ScopeOrganizationID *uuid.UUID  `form:"-"`
	ScopeRequirementIDs []uuid.UUID `form:"-"`
}

type ListApplicationHistoryRequest struct {
	ApplicationID uuid.UUID        `json:"-" validate:"required"` // From path
	Actor         models.Principal `json:"-"`
}

// AppendHistoryRequest is used internally by the lifecycle to write one
// ledger entry per mutation.
type AppendHistoryRequest struct {
	ApplicationID   uuid.UUID
	Status          string
	PreviousStatus  string
	Notes           string
	DecisionReason  *models.DecisionReason
	NotifyCandidate bool
	NotifyClient    bool
	FollowUp        *models.FollowUp
	OrganizationID  uuid.UUID
	CreatedBy       uuid.UUID
}

// CreateApplicationRequest is used internally by the submit path once the
// actor and organization have been resolved.
type CreateApplicationRequest struct {
	RequirementID   uuid.UUID
	ResourceID      uuid.UUID
	ApplicationType models.ApplicationType
	OrganizationID  uuid.UUID
	Notes           string
	ProposedRate    *models.ProposedRate
	Availability    *models.Availability
	CreatedBy       uuid.UUID
}

// UpdateApplicationStatusRequest is the repository-level status write.
type UpdateApplicationStatusRequest struct {
	ApplicationID uuid.UUID
	Status        string
	Notes         *string
	UpdatedBy     uuid.UUID
}

// UpdateApplicationDetailsRequest is the repository-level details write.
type UpdateApplicationDetailsRequest struct {
	ApplicationID uuid.UUID
	Notes         *string
	ProposedRate  *models.ProposedRate
	Availability  *models.Availability
	UpdatedBy     uuid.UUID
}

// LinkWorkflowRequest caches the workflow pointer and denormalized progress
// onto the application row.
type LinkWorkflowRequest struct {
	ApplicationID      uuid.UUID
	WorkflowInstanceID *uuid.UUID
	WorkflowStatus     string
	CurrentStep        int
}

// ApplicationResponse is the outward shape of an application.
type ApplicationResponse struct {
	ID                  uuid.UUID            `json:"id"`
	RequirementID       uuid.UUID            `json:"requirement_id"`
	ResourceID          uuid.UUID            `json:"resource_id"`
	Status              string               `json:"status"`
	ApplicationType     string               `json:"application_type"`
	OrganizationID      uuid.UUID            `json:"organization_id"`
	Notes               string               `json:"notes,omitempty"`
	ProposedRate        *models.ProposedRate `json:"proposed_rate,omitempty"`
	Availability        *models.Availability `json:"availability,omitempty"`
	WorkflowInstanceID  *uuid.UUID           `json:"workflow_instance_id,omitempty"`
	WorkflowStatus      string               `json:"workflow_status"`
	CurrentWorkflowStep int                  `json:"current_workflow_step"`
	CreatedBy           uuid.UUID            `json:"created_by"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// StatusChangeResponse is returned by the change-status operation.
type StatusChangeResponse struct {
	Application    ApplicationResponse `json:"application"`
	StatusCategory string              `json:"status_category"`
	PreviousStatus string              `json:"previous_status"`
	NewStatus      string              `json:"new_status"`
}

// HistoryEntryResponse is one ledger entry, newest-first in listings.
type HistoryEntryResponse struct {
	ID              uuid.UUID              `json:"id"`
	ApplicationID   uuid.UUID              `json:"application_id"`
	Status          string                 `json:"status"`
	PreviousStatus  string                 `json:"previous_status,omitempty"`
	Notes           string                 `json:"notes,omitempty"`
	DecisionReason  *models.DecisionReason `json:"decision_reason,omitempty"`
	NotifyCandidate bool                   `json:"notify_candidate"`
	NotifyClient    bool                   `json:"notify_client"`
	FollowUp        *models.FollowUp       `json:"follow_up,omitempty"`
	CreatedBy       uuid.UUID              `json:"created_by"`
	CreatedAt       time.Time              `json:"created_at"`
}

// StatusTaxonomyResponse exposes the closed enumeration for client-side
// validation.
type StatusTaxonomyResponse struct {
	Statuses []string `json:"statuses"`
	Active   []string `json:"active"`
	Inactive []string `json:"inactive"`
}
