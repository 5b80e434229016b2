package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/ent/requirement"
	"staffhub/internal/storage"

	"github.com/google/uuid"
)

// RequirementRepo implements the narrow read contract the lifecycle core
// consumes from the requirement collaborator.
type RequirementRepo struct {
	client *ent.Client
}

// NewRequirementRepo creates a new RequirementRepo.
func NewRequirementRepo(client *ent.Client) *RequirementRepo {
	return &RequirementRepo{client: client}
}

// Compile-time check to ensure RequirementRepo implements RequirementRepository
var _ storage.RequirementRepository = (*RequirementRepo)(nil)

func (r *RequirementRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Requirement, error) {
	req, err := r.client.Requirement.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Requirement not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving requirement by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get requirement by ID %s: %w", id, err)
	}
	return req, nil
}

func (r *RequirementRepo) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]*ent.Requirement, error) {
	reqs, err := r.client.Requirement.Query().
		Where(requirement.OrganizationID(organizationID)).
		Order(ent.Desc(requirement.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error listing requirements for organization %s: %v\n", organizationID, err)
		return nil, fmt.Errorf("failed to list requirements by organization: %w", err)
	}
	return reqs, nil
}
