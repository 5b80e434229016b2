package handlers

import (
	"log"
	"net/http"

	"staffhub/internal/api/middleware"
	"staffhub/internal/services"
	"staffhub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NotificationHandler holds dependencies for notification reads.
type NotificationHandler struct {
	service   services.NotificationService
	validator *validator.Validate
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(service services.NotificationService, validate *validator.Validate) *NotificationHandler {
	return &NotificationHandler{
		service:   service,
		validator: validate,
	}
}

// ListMyNotifications godoc
//	@Summary		List notifications for the authenticated user
//	@Description	Retrieves the authenticated user's notifications, newest first. Supports pagination.
//	@Tags			notifications
//	@Produce		json
//	@Param			limit	query		int							false	"Pagination limit"	default(10)
//	@Param			offset	query		int							false	"Pagination offset"	default(0)
//	@Success		200		{array}		dto.NotificationResponse	"Successfully retrieved notifications"
//	@Failure		400		{object}	map[string]string			"Bad Request"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/notifications/my [get]
//	@Security		BearerAuth
func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("ListMyNotifications: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.Actor = principal

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	// Ensure defaults if not provided by binding
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	notifications, err := h.service.ListMine(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyNotifications: Error listing notifications for user %s: %v", principal.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notifications"})
		return
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, MapNotificationToResponse(n))
	}
	c.JSON(http.StatusOK, responses)
}
