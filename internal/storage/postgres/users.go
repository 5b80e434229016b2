package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/internal/storage"

	"github.com/google/uuid"
)

// UserRepo resolves authenticated principals from the user store.
type UserRepo struct {
	client *ent.Client
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *ent.Client) *UserRepo {
	return &UserRepo{client: client}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	user, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("User not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return user, nil
}
