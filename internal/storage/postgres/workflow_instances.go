package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/ent/workflowinstance"
	"staffhub/internal/status"
	"staffhub/internal/storage"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// WorkflowInstanceRepo implements the storage.WorkflowInstanceRepository interface using Ent.
type WorkflowInstanceRepo struct {
	client *ent.Client
}

// NewWorkflowInstanceRepo creates a new WorkflowInstanceRepo.
func NewWorkflowInstanceRepo(client *ent.Client) *WorkflowInstanceRepo {
	return &WorkflowInstanceRepo{client: client}
}

// Compile-time check to ensure WorkflowInstanceRepo implements WorkflowInstanceRepository
var _ storage.WorkflowInstanceRepository = (*WorkflowInstanceRepo)(nil)

func (r *WorkflowInstanceRepo) Create(ctx context.Context, req *dto.CreateWorkflowInstanceRequest) (*ent.WorkflowInstance, error) {
	created, err := r.client.WorkflowInstance.Create().
		SetApplicationID(req.ApplicationID).
		SetTemplateID(req.TemplateID).
		SetSteps(req.Steps).
		SetOrganizationID(req.OrganizationID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating workflow instance (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create workflow instance: %w", storage.ErrConflict)
		}
		log.Printf("Error creating workflow instance: %v\n", err)
		return nil, fmt.Errorf("failed to create workflow instance: %w", err)
	}

	log.Printf("Workflow instance created successfully with ID: %s for application %s", created.ID, req.ApplicationID)
	return created, nil
}

func (r *WorkflowInstanceRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowInstance, error) {
	instance, err := r.client.WorkflowInstance.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Workflow instance not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving workflow instance by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get workflow instance by ID %s: %w", id, err)
	}
	return instance, nil
}

func (r *WorkflowInstanceRepo) GetByApplication(ctx context.Context, applicationID uuid.UUID) (*ent.WorkflowInstance, error) {
	instance, err := r.client.WorkflowInstance.Query().
		Where(workflowinstance.ApplicationID(applicationID)).
		Order(ent.Desc(workflowinstance.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying workflow instance for application %s: %v\n", applicationID, err)
		return nil, fmt.Errorf("failed to get workflow instance by application: %w", err)
	}
	return instance, nil
}

func (r *WorkflowInstanceRepo) Update(ctx context.Context, req *dto.UpdateWorkflowInstanceRequest) (*ent.WorkflowInstance, error) {
	builder := r.client.WorkflowInstance.UpdateOneID(req.InstanceID).
		SetSteps(req.Steps).
		SetCurrentStep(req.CurrentStep).
		SetStatus(workflowinstance.Status(req.Status))

	if req.CompletedAt != nil {
		builder = builder.SetCompletedAt(*req.CompletedAt)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Workflow instance not found for update with ID: %s\n", req.InstanceID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating workflow instance %s: %v\n", req.InstanceID, err)
		return nil, fmt.Errorf("failed to update workflow instance: %w", err)
	}
	return updated, nil
}

func (r *WorkflowInstanceRepo) CountActiveByTemplate(ctx context.Context, templateID uuid.UUID) (int, error) {
	count, err := r.client.WorkflowInstance.Query().
		Where(
			workflowinstance.TemplateID(templateID),
			workflowinstance.StatusEQ(workflowinstance.Status(status.InstanceActive)),
		).
		Count(ctx)
	if err != nil {
		log.Printf("Error counting active workflow instances for template %s: %v\n", templateID, err)
		return 0, fmt.Errorf("failed to count active workflow instances: %w", err)
	}
	return count, nil
}
