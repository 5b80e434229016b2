// internal/api/routes/routes.go
package routes

import (
	"log"

	"staffhub/internal/api/handlers"
	"staffhub/internal/api/middleware"
	"staffhub/internal/app"
	"staffhub/internal/services"
	"staffhub/internal/storage/postgres"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	// --- Services ---
	applicationService := services.NewApplicationService(app.EntClient, app.RedisClient)
	templateService := services.NewWorkflowTemplateService(app.EntClient, app.RedisClient)
	workflowEngine := services.NewWorkflowEngine(app.EntClient, app.RedisClient)
	notificationService := services.NewNotificationService(app.EntClient)

	// --- Handlers ---
	applicationHandler := handlers.NewApplicationHandler(applicationService, app.Validator)
	workflowHandler := handlers.NewWorkflowTemplateHandler(templateService, workflowEngine, app.Validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret, postgres.NewUserRepo(app.EntClient))

	// --- Register Resource Routes ---
	RegisterApplicationRoutes(apiV1, applicationHandler, authMiddleware)
	RegisterWorkflowRoutes(apiV1, workflowHandler, authMiddleware)
	RegisterNotificationRoutes(apiV1, notificationHandler, authMiddleware)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
