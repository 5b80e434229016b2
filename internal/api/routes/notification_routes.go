package routes

import (
	"staffhub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes registers all routes related to notifications.
func RegisterNotificationRoutes(
	rg *gin.RouterGroup,
	notificationHandler handlers.NotificationHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	notificationsGroup := rg.Group("/notifications")
	notificationsGroup.Use(authMiddleware)
	{
		notificationsGroup.GET("/my", notificationHandler.ListMyNotifications)
	}
}
