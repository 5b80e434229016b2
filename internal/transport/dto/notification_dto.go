package dto

import (
	"time"

	"staffhub/internal/models"

	"github.com/google/uuid"
)

// CreateNotificationRequest writes one notification into the sink. Callers
// treat the write as fire-and-forget.
type CreateNotificationRequest struct {
	RecipientID       uuid.UUID
	Type              string
	Title             string
	Message           string
	RelatedEntityType string
	RelatedEntityID   *uuid.UUID
	ActionURL         string
}

type ListNotificationsRequest struct {
	Limit  int              `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int              `form:"offset,default=0" validate:"omitempty,gte=0"`
	Actor  models.Principal `form:"-"`
}

type NotificationResponse struct {
	ID                uuid.UUID  `json:"id"`
	Type              string     `json:"type"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	RelatedEntityType string     `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
	ActionURL         string     `json:"action_url,omitempty"`
	Read              bool       `json:"read"`
	CreatedAt         time.Time  `json:"created_at"`
}
