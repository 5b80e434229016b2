// internal/api/handlers/interfaces.go
package handlers

import "github.com/gin-gonic/gin"

// ApplicationHandlerInterface defines the methods needed by the application routes.
type ApplicationHandlerInterface interface {
	SubmitApplication(c *gin.Context)
	ListApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ChangeApplicationStatus(c *gin.Context)
	UpdateApplicationDetails(c *gin.Context)
	DeleteApplication(c *gin.Context)
	ListApplicationHistory(c *gin.Context)
}

// WorkflowTemplateHandlerInterface defines the methods needed by the workflow routes.
type WorkflowTemplateHandlerInterface interface {
	CreateWorkflowTemplate(c *gin.Context)
	ListWorkflowTemplates(c *gin.Context)
	GetWorkflowTemplateByID(c *gin.Context)
	UpdateWorkflowTemplate(c *gin.Context)
	DeleteWorkflowTemplate(c *gin.Context)
	GetWorkflowInstanceByID(c *gin.Context)
}

// NotificationHandlerInterface defines the methods needed by the notification routes.
type NotificationHandlerInterface interface {
	ListMyNotifications(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ ApplicationHandlerInterface = (*ApplicationHandler)(nil)
var _ WorkflowTemplateHandlerInterface = (*WorkflowTemplateHandler)(nil)
var _ NotificationHandlerInterface = (*NotificationHandler)(nil)
