package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/internal/storage"

	"github.com/google/uuid"
)

// ResourceRepo implements the narrow read contract the lifecycle core
// consumes from the resource collaborator.
type ResourceRepo struct {
	client *ent.Client
}

// NewResourceRepo creates a new ResourceRepo.
func NewResourceRepo(client *ent.Client) *ResourceRepo {
	return &ResourceRepo{client: client}
}

// Compile-time check to ensure ResourceRepo implements ResourceRepository
var _ storage.ResourceRepository = (*ResourceRepo)(nil)

func (r *ResourceRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Resource, error) {
	res, err := r.client.Resource.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Resource not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving resource by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get resource by ID %s: %w", id, err)
	}
	return res, nil
}
