package services

import (
	"context"
	"fmt"

	"staffhub/ent"
	"staffhub/internal/storage"
	"staffhub/internal/storage/postgres"
	"staffhub/internal/transport/dto"
)

type notificationService struct {
	notificationRepo storage.NotificationRepository
}

// NewNotificationService creates a new instance of NotificationService.
func NewNotificationService(db *ent.Client) NotificationService {
	return &notificationService{
		notificationRepo: postgres.NewNotificationRepo(db),
	}
}

// NewNotificationServiceWithDeps wires explicit dependencies; used by tests.
func NewNotificationServiceWithDeps(notificationRepo storage.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(ctx context.Context, req *dto.CreateNotificationRequest) error {
	if _, err := s.notificationRepo.Create(ctx, req); err != nil {
		return MapRepoError(err, fmt.Sprintf("creating notification for recipient %s", req.RecipientID))
	}
	return nil
}

func (s *notificationService) ListMine(ctx context.Context, req *dto.ListNotificationsRequest) ([]*ent.Notification, error) {
	notifications, err := s.notificationRepo.ListByRecipient(ctx, req.Actor.ID, req.Limit, req.Offset)
	if err != nil {
		return nil, MapRepoError(err, "listing notifications")
	}
	return notifications, nil
}
