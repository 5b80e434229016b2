package dto

import (
	"time"

	"staffhub/internal/models"

	"github.com/google/uuid"
)

// TemplateStepRequest is one step in a create/update template payload.
type TemplateStepRequest struct {
	Order       int    `json:"order" validate:"required,gte=1"`
	Name        string `json:"name" validate:"required,max=200"`
	Role        string `json:"role" validate:"required"`
	Action      string `json:"action" validate:"required,max=200"`
	Required    bool   `json:"required"`
	AutoAdvance bool   `json:"auto_advance"`
}

// CreateWorkflowTemplateRequest authors a new workflow template.
type CreateWorkflowTemplateRequest struct {
	Name             string                `json:"name" validate:"required,max=200"`
	Description      string                `json:"description" validate:"omitempty,max=2000"`
	ApplicationTypes []string              `json:"application_types" validate:"required,min=1,dive,oneof=client_applied vendor_applied both"`
	Steps            []TemplateStepRequest `json:"steps" validate:"required,min=1,dive"`
	IsActive         *bool                 `json:"is_active,omitempty"`
	IsDefault        bool                  `json:"is_default"`
	Actor            models.Principal      `json:"-"`
}

// UpdateWorkflowTemplateRequest edits a template. Nil fields are untouched.
type UpdateWorkflowTemplateRequest struct {
	TemplateID       uuid.UUID             `json:"-" validate:"required"` // From path
	Name             *string               `json:"name,omitempty" validate:"omitempty,max=200"`
	Description      *string               `json:"description,omitempty" validate:"omitempty,max=2000"`
	ApplicationTypes []string              `json:"application_types,omitempty" validate:"omitempty,min=1,dive,oneof=client_applied vendor_applied both"`
	Steps            []TemplateStepRequest `json:"steps,omitempty" validate:"omitempty,min=1,dive"`
	IsActive         *bool                 `json:"is_active,omitempty"`
	IsDefault        *bool                 `json:"is_default,omitempty"`
	Actor            models.Principal      `json:"-"`
}

type GetWorkflowTemplateByIDRequest struct {
	TemplateID uuid.UUID `json:"-" validate:"required"` // From path
}

type DeleteWorkflowTemplateRequest struct {
	TemplateID uuid.UUID        `json:"-" validate:"required"` // From path
	Actor      models.Principal `json:"-"`
}

type ListWorkflowTemplatesRequest struct {
	ApplicationType string `form:"application_type" validate:"omitempty,oneof=client_applied vendor_applied both"`
	ActiveOnly      bool   `form:"active_only"`
	Limit           int    `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset          int    `form:"offset,default=0" validate:"omitempty,gte=0"`
}

type GetWorkflowInstanceByIDRequest struct {
	InstanceID uuid.UUID        `json:"-" validate:"required"` // From path
	Actor      models.Principal `json:"-"`
}

// CreateWorkflowInstanceRequest is the repository-level instantiation write.
type CreateWorkflowInstanceRequest struct {
	ApplicationID  uuid.UUID
	TemplateID     uuid.UUID
	Steps          []models.InstanceStep
	OrganizationID uuid.UUID
}

// UpdateWorkflowInstanceRequest persists step completion and advancement.
type UpdateWorkflowInstanceRequest struct {
	InstanceID  uuid.UUID
	Steps       []models.InstanceStep
	CurrentStep int
	Status      string
	CompletedAt *time.Time
}

// WorkflowTemplateResponse is the outward shape of a template.
type WorkflowTemplateResponse struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	Description      string                `json:"description,omitempty"`
	ApplicationTypes []string              `json:"application_types"`
	Steps            []models.TemplateStep `json:"steps"`
	IsActive         bool                  `json:"is_active"`
	IsDefault        bool                  `json:"is_default"`
	CreatedBy        uuid.UUID             `json:"created_by"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
}

// WorkflowInstanceResponse is the outward shape of a running instance.
type WorkflowInstanceResponse struct {
	ID            uuid.UUID             `json:"id"`
	ApplicationID uuid.UUID             `json:"application_id"`
	TemplateID    uuid.UUID             `json:"template_id"`
	Steps         []models.InstanceStep `json:"steps"`
	CurrentStep   int                   `json:"current_step"`
	Status        string                `json:"status"`
	CompletedAt   *time.Time            `json:"completed_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}
