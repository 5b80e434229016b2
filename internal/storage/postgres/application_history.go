package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/ent/applicationhistory"
	"staffhub/internal/storage"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicationHistoryRepo implements the append-only history ledger using Ent.
type ApplicationHistoryRepo struct {
	client *ent.Client
}

// NewApplicationHistoryRepo creates a new ApplicationHistoryRepo.
func NewApplicationHistoryRepo(client *ent.Client) *ApplicationHistoryRepo {
	return &ApplicationHistoryRepo{client: client}
}

// Compile-time check to ensure ApplicationHistoryRepo implements ApplicationHistoryRepository
var _ storage.ApplicationHistoryRepository = (*ApplicationHistoryRepo)(nil)

func (r *ApplicationHistoryRepo) Append(ctx context.Context, req *dto.AppendHistoryRequest) (*ent.ApplicationHistory, error) {
	builder := r.client.ApplicationHistory.Create().
		SetApplicationID(req.ApplicationID).
		SetStatus(req.Status).
		SetNotifyCandidate(req.NotifyCandidate).
		SetNotifyClient(req.NotifyClient).
		SetOrganizationID(req.OrganizationID).
		SetCreatedBy(req.CreatedBy)

	if req.PreviousStatus != "" {
		builder = builder.SetPreviousStatus(req.PreviousStatus)
	}
	if req.Notes != "" {
		builder = builder.SetNotes(req.Notes)
	}
	if req.DecisionReason != nil {
		builder = builder.SetDecisionReason(req.DecisionReason)
	}
	if req.FollowUp != nil {
		builder = builder.SetFollowUp(req.FollowUp)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		log.Printf("Error appending history entry for application %s: %v\n", req.ApplicationID, err)
		return nil, fmt.Errorf("failed to append history entry: %w", err)
	}
	return entry, nil
}

func (r *ApplicationHistoryRepo) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*ent.ApplicationHistory, error) {
	entries, err := r.client.ApplicationHistory.Query().
		Where(applicationhistory.ApplicationID(applicationID)).
		Order(ent.Desc(applicationhistory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error querying history for application %s: %v\n", applicationID, err)
		return nil, fmt.Errorf("failed to list history for application: %w", err)
	}
	return entries, nil
}
