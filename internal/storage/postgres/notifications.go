package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/ent/notification"
	"staffhub/internal/storage"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// NotificationRepo implements the notification sink using Ent.
type NotificationRepo struct {
	client *ent.Client
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(client *ent.Client) *NotificationRepo {
	return &NotificationRepo{client: client}
}

// Compile-time check to ensure NotificationRepo implements NotificationRepository
var _ storage.NotificationRepository = (*NotificationRepo)(nil)

func (r *NotificationRepo) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*ent.Notification, error) {
	builder := r.client.Notification.Create().
		SetRecipientID(req.RecipientID).
		SetType(req.Type).
		SetTitle(req.Title).
		SetMessage(req.Message)

	if req.RelatedEntityType != "" {
		builder = builder.SetRelatedEntityType(req.RelatedEntityType)
	}
	if req.RelatedEntityID != nil {
		builder = builder.SetRelatedEntityID(*req.RelatedEntityID)
	}
	if req.ActionURL != "" {
		builder = builder.SetActionURL(req.ActionURL)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		log.Printf("Error creating notification for recipient %s: %v\n", req.RecipientID, err)
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return created, nil
}

func (r *NotificationRepo) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit, offset int) ([]*ent.Notification, error) {
	notifications, err := r.client.Notification.Query().
		Where(notification.RecipientID(recipientID)).
		Order(ent.Desc(notification.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		log.Printf("Error listing notifications for recipient %s: %v\n", recipientID, err)
		return nil, fmt.Errorf("failed to list notifications by recipient: %w", err)
	}
	return notifications, nil
}
