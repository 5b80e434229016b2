package postgres

import (
	"context"
	"fmt"
	"log"
	"strings"

	"staffhub/ent"
	"staffhub/ent/application"
	"staffhub/internal/storage"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicationRepo implements the storage.ApplicationRepository interface using Ent.
type ApplicationRepo struct {
	client *ent.Client
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(client *ent.Client) *ApplicationRepo {
	return &ApplicationRepo{client: client}
}

func (r *ApplicationRepo) WithTx(tx *ent.Tx) storage.ApplicationRepository {
	return &ApplicationRepo{client: tx.Client()}
}

// Compile-time check to ensure ApplicationRepo implements ApplicationRepository
var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*ent.Application, error) {
	builder := r.client.Application.Create().
		SetRequirementID(req.RequirementID).
		SetResourceID(req.ResourceID).
		SetApplicationType(application.ApplicationType(req.ApplicationType)).
		SetOrganizationID(req.OrganizationID).
		SetCreatedBy(req.CreatedBy)

	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}
	if req.ProposedRate != nil {
		builder = builder.SetProposedRate(req.ProposedRate)
	}
	if req.Availability != nil {
		builder = builder.SetAvailability(req.Availability)
	}

	createdApp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Covers the unique (requirement_id, resource_id) index under
			// concurrent duplicate submissions as well.
			log.Printf("Error creating application (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create application: unique constraint or foreign key violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", createdApp.ID)
	return createdApp, nil
}

func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Application, error) {
	app, err := r.client.Application.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Application not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}
	return app, nil
}

func (r *ApplicationRepo) GetByRequirementAndResource(ctx context.Context, requirementID, resourceID uuid.UUID) (*ent.Application, error) {
	app, err := r.client.Application.Query().
		Where(
			application.RequirementID(requirementID),
			application.ResourceID(resourceID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying application by requirement %s and resource %s: %v\n", requirementID, resourceID, err)
		return nil, fmt.Errorf("failed to get application by pair: %w", err)
	}
	return app, nil
}

func (r *ApplicationRepo) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*ent.Application, error) {
	query := r.client.Application.Query()

	// Single status or comma-separated list becomes an OR match.
	if req.Status != "" {
		parts := strings.Split(req.Status, ",")
		statuses := make([]application.Status, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				statuses = append(statuses, application.Status(trimmed))
			}
		}
		if len(statuses) > 0 {
			query = query.Where(application.StatusIn(statuses...))
		}
	}
	if req.RequirementID != nil {
		query = query.Where(application.RequirementID(*req.RequirementID))
	}
	if req.ResourceID != nil {
		query = query.Where(application.ResourceID(*req.ResourceID))
	}
	if req.ScopeOrganizationID != nil {
		query = query.Where(application.OrganizationID(*req.ScopeOrganizationID))
	}
	if len(req.ScopeRequirementIDs) > 0 {
		query = query.Where(application.RequirementIDIn(req.ScopeRequirementIDs...))
	}

	apps, err := query.
		Order(ent.Desc(application.FieldCreatedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)
	if err != nil {
		log.Printf("Error listing applications: %v\n", err)
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationRepo) UpdateStatus(ctx context.Context, req *dto.UpdateApplicationStatusRequest) (*ent.Application, error) {
	builder := r.client.Application.UpdateOneID(req.ApplicationID).
		SetStatus(application.Status(req.Status)).
		SetUpdatedBy(req.UpdatedBy)

	if req.Notes != nil {
		builder = builder.SetNotes(*req.Notes)
	}

	updatedApp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Application not found for status update with ID: %s\n", req.ApplicationID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status for ID %s: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to update application status: %w", err)
	}
	return updatedApp, nil
}

func (r *ApplicationRepo) UpdateDetails(ctx context.Context, req *dto.UpdateApplicationDetailsRequest) (*ent.Application, error) {
	builder := r.client.Application.UpdateOneID(req.ApplicationID).
		SetUpdatedBy(req.UpdatedBy)

	if req.Notes != nil {
		builder = builder.SetNotes(*req.Notes)
	}
	if req.ProposedRate != nil {
		builder = builder.SetProposedRate(req.ProposedRate)
	}
	if req.Availability != nil {
		builder = builder.SetAvailability(req.Availability)
	}

	updatedApp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Application not found for details update with ID: %s\n", req.ApplicationID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application details for ID %s: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to update application details: %w", err)
	}
	return updatedApp, nil
}

func (r *ApplicationRepo) LinkWorkflow(ctx context.Context, req *dto.LinkWorkflowRequest) (*ent.Application, error) {
	builder := r.client.Application.UpdateOneID(req.ApplicationID).
		SetWorkflowStatus(application.WorkflowStatus(req.WorkflowStatus)).
		SetCurrentWorkflowStep(req.CurrentStep)

	if req.WorkflowInstanceID != nil {
		builder = builder.SetWorkflowInstanceID(*req.WorkflowInstanceID)
	}

	updatedApp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Application not found for workflow link with ID: %s\n", req.ApplicationID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error linking workflow on application %s: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to link workflow on application: %w", err)
	}
	return updatedApp, nil
}

func (r *ApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Application.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Application not found for deletion with ID: %s\n", id)
			return storage.ErrNotFound
		}
		log.Printf("Error deleting application with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete application: %w", err)
	}

	log.Printf("Application deleted successfully with ID: %s", id)
	return nil
}
