package storage

import (
	"context"

	"staffhub/ent"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*ent.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Application, error)
	GetByRequirementAndResource(ctx context.Context, requirementID, resourceID uuid.UUID) (*ent.Application, error)
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*ent.Application, error)
	UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*ent.Application, error)
	UpdateDetails(ctx context.Context, req *dto.UpdateApplicationDetailsRequest) (*ent.Application, error)
	LinkWorkflow(ctx context.Context, req *dto.LinkWorkflowRequest) (*ent.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *ent.Tx) ApplicationRepository
}

// ApplicationHistoryRepository is the append-only history ledger. It exposes
// no update or delete on purpose.
type ApplicationHistoryRepository interface {
	Append(ctx context.Context, req *dto.AppendHistoryRequest) (*ent.ApplicationHistory, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*ent.ApplicationHistory, error)
}

// WorkflowTemplateRepository defines the interface for workflow template data
// operations.
type WorkflowTemplateRepository interface {
	Create(ctx context.Context, req *dto.CreateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowTemplate, error)
	List(ctx context.Context, req *dto.ListWorkflowTemplatesRequest) ([]*ent.WorkflowTemplate, error)
	FindDefaultFor(ctx context.Context, applicationType string) (*ent.WorkflowTemplate, error)
	Update(ctx context.Context, req *dto.UpdateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error)
	ClearDefaultsForTypes(ctx context.Context, types []string, excludeID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	WithTx(tx *ent.Tx) WorkflowTemplateRepository
}

// WorkflowInstanceRepository defines the interface for workflow instance data
// operations.
type WorkflowInstanceRepository interface {
	Create(ctx context.Context, req *dto.CreateWorkflowInstanceRequest) (*ent.WorkflowInstance, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowInstance, error)
	GetByApplication(ctx context.Context, applicationID uuid.UUID) (*ent.WorkflowInstance, error)
	Update(ctx context.Context, req *dto.UpdateWorkflowInstanceRequest) (*ent.WorkflowInstance, error)
	CountActiveByTemplate(ctx context.Context, templateID uuid.UUID) (int, error)
}

// RequirementRepository is the narrow read contract over the requirement
// collaborator.
type RequirementRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Requirement, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*ent.Requirement, error)
}

// ResourceRepository is the narrow read contract over the resource
// collaborator.
type ResourceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Resource, error)
}

// NotificationRepository is the notification sink. Create failures are
// swallowed by callers.
type NotificationRepository interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*ent.Notification, error)
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*ent.Notification, error)
}

// UserRepository resolves authenticated principals.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
}
