package routes

import (
	"staffhub/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterWorkflowRoutes registers all routes related to workflow templates
// and instances.
func RegisterWorkflowRoutes(
	rg *gin.RouterGroup,
	workflowHandler handlers.WorkflowTemplateHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	templatesGroup := rg.Group("/workflow-templates")
	templatesGroup.Use(authMiddleware)
	{
		templatesGroup.POST("", workflowHandler.CreateWorkflowTemplate)
		templatesGroup.GET("", workflowHandler.ListWorkflowTemplates)
		templatesGroup.GET("/:id", workflowHandler.GetWorkflowTemplateByID)
		templatesGroup.PUT("/:id", workflowHandler.UpdateWorkflowTemplate)
		templatesGroup.DELETE("/:id", workflowHandler.DeleteWorkflowTemplate)
	}

	instancesGroup := rg.Group("/workflow-instances")
	instancesGroup.Use(authMiddleware)
	{
		instancesGroup.GET("/:id", workflowHandler.GetWorkflowInstanceByID)
	}
}
