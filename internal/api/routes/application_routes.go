package routes

import (
	"staffhub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers all routes related to applications.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	appHandler handlers.ApplicationHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	appsGroup := rg.Group("/applications")

	// Taxonomy introspection is public: clients validate against it before
	// authenticating.
	appsGroup.GET("/statuses", handlers.GetStatusTaxonomy)

	authed := appsGroup.Group("")
	authed.Use(authMiddleware)
	{
		authed.POST("", appHandler.SubmitApplication)
		authed.GET("", appHandler.ListApplications)
		authed.GET("/:id", appHandler.GetApplicationByID)
		authed.PATCH("/:id/status", appHandler.ChangeApplicationStatus)
		authed.PATCH("/:id", appHandler.UpdateApplicationDetails)
		authed.DELETE("/:id", appHandler.DeleteApplication)
		authed.GET("/:id/history", appHandler.ListApplicationHistory)
	}
}
