package services

import (
	"context"

	"staffhub/ent"
	"staffhub/internal/models"
	"staffhub/internal/transport/dto"
)

// StatusChangeResult carries the outcome of a status transition back to the
// handler: the updated application, the taxonomy category of the stored
// status, and the before/after pair.
type StatusChangeResult struct {
	Application    *ent.Application
	StatusCategory string
	PreviousStatus string
	NewStatus      string
}

// ApplicationService defines the interface for the application lifecycle
// orchestrator.
type ApplicationService interface {
	Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*ent.Application, error)
	ChangeStatus(ctx context.Context, req *dto.ChangeStatusRequest) (*StatusChangeResult, error)
	UpdateDetails(ctx context.Context, req *dto.UpdateApplicationRequest) (*ent.Application, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
	GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*ent.Application, error)
	List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*ent.Application, error)
	History(ctx context.Context, req *dto.ListApplicationHistoryRequest) ([]*ent.ApplicationHistory, error)
}

// WorkflowTemplateService defines the interface for admin-authored workflow
// template management.
type WorkflowTemplateService interface {
	Create(ctx context.Context, req *dto.CreateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error)
	GetByID(ctx context.Context, req *dto.GetWorkflowTemplateByIDRequest) (*ent.WorkflowTemplate, error)
	List(ctx context.Context, req *dto.ListWorkflowTemplatesRequest) ([]*ent.WorkflowTemplate, error)
	Update(ctx context.Context, req *dto.UpdateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error)
	Delete(ctx context.Context, req *dto.DeleteWorkflowTemplateRequest) error
	FindDefaultFor(ctx context.Context, applicationType string) (*ent.WorkflowTemplate, error)
}

// WorkflowEngine runs workflow instances: instantiation at submission and
// step advancement on status transitions. Both are invoked as best-effort
// secondary effects by the lifecycle.
type WorkflowEngine interface {
	Instantiate(ctx context.Context, app *ent.Application) (*ent.WorkflowInstance, error)
	Advance(ctx context.Context, app *ent.Application, actor models.Principal, action, comments string) error
	GetInstance(ctx context.Context, req *dto.GetWorkflowInstanceByIDRequest) (*ent.WorkflowInstance, error)
}

// NotificationService wraps the notification sink.
type NotificationService interface {
	Notify(ctx context.Context, req *dto.CreateNotificationRequest) error
	ListMine(ctx context.Context, req *dto.ListNotificationsRequest) ([]*ent.Notification, error)
}
