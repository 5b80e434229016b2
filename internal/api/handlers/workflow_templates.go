package handlers

import (
	"errors"
	"log"
	"net/http"

	"staffhub/internal/api/middleware"
	"staffhub/internal/authz"
	"staffhub/internal/services"
	"staffhub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WorkflowTemplateHandler holds dependencies for workflow template and
// instance operations.
type WorkflowTemplateHandler struct {
	templates services.WorkflowTemplateService
	engine    services.WorkflowEngine
	validator *validator.Validate
}

// NewWorkflowTemplateHandler creates a new WorkflowTemplateHandler.
func NewWorkflowTemplateHandler(templates services.WorkflowTemplateService, engine services.WorkflowEngine, validate *validator.Validate) *WorkflowTemplateHandler {
	return &WorkflowTemplateHandler{
		templates: templates,
		engine:    engine,
		validator: validate,
	}
}

// CreateWorkflowTemplate godoc
//	@Summary		Create a workflow template
//	@Description	Authors a workflow template. Admin only. Marking it default demotes any other default covering the same application types.
//	@Tags			workflow_templates
//	@Accept			json
//	@Produce		json
//	@Param			template	body		dto.CreateWorkflowTemplateRequest	true	"Template payload"
//	@Success		201			{object}	dto.WorkflowTemplateResponse		"Template created"
//	@Failure		400			{object}	map[string]string					"Bad Request"
//	@Failure		401			{object}	map[string]string					"Unauthorized"
//	@Failure		403			{object}	map[string]string					"Forbidden - Admin only"
//	@Failure		500			{object}	map[string]string					"Internal Server Error"
//	@Router			/workflow-templates [post]
//	@Security		BearerAuth
func (h *WorkflowTemplateHandler) CreateWorkflowTemplate(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("CreateWorkflowTemplate: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if !authz.IsAdmin(principal) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may manage workflow templates"})
		return
	}

	var req dto.CreateWorkflowTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.Actor = principal

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	tmpl, err := h.templates.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("CreateWorkflowTemplate: Error creating template: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workflow template"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapWorkflowTemplateToResponse(tmpl))
}

// ListWorkflowTemplates godoc
//	@Summary		List workflow templates
//	@Description	Lists workflow templates, optionally filtered by application type and active flag.
//	@Tags			workflow_templates
//	@Produce		json
//	@Param			application_type	query		string							false	"Type filter (client_applied, vendor_applied, both)"
//	@Param			active_only			query		bool							false	"Only active templates"
//	@Param			limit				query		int								false	"Pagination limit"	default(10)
//	@Param			offset				query		int								false	"Pagination offset"	default(0)
//	@Success		200					{array}		dto.WorkflowTemplateResponse	"Successfully retrieved templates"
//	@Failure		400					{object}	map[string]string				"Bad Request"
//	@Failure		401					{object}	map[string]string				"Unauthorized"
//	@Failure		500					{object}	map[string]string				"Internal Server Error"
//	@Router			/workflow-templates [get]
//	@Security		BearerAuth
func (h *WorkflowTemplateHandler) ListWorkflowTemplates(c *gin.Context) {
	var req dto.ListWorkflowTemplatesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

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

	templates, err := h.templates.List(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListWorkflowTemplates: Error listing templates: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workflow templates"})
		return
	}

	responses := make([]dto.WorkflowTemplateResponse, 0, len(templates))
	for _, tmpl := range templates {
		responses = append(responses, MapWorkflowTemplateToResponse(tmpl))
	}
	c.JSON(http.StatusOK, responses)
}

// GetWorkflowTemplateByID godoc
//	@Summary		Get a workflow template by ID
//	@Tags			workflow_templates
//	@Produce		json
//	@Param			id	path		string							true	"Template ID"	Format(uuid)
//	@Success		200	{object}	dto.WorkflowTemplateResponse	"Successfully retrieved template"
//	@Failure		400	{object}	map[string]string				"Invalid ID format"
//	@Failure		401	{object}	map[string]string				"Unauthorized"
//	@Failure		404	{object}	map[string]string				"Template not found"
//	@Failure		500	{object}	map[string]string				"Internal Server Error"
//	@Router			/workflow-templates/{id} [get]
//	@Security		BearerAuth
func (h *WorkflowTemplateHandler) GetWorkflowTemplateByID(c *gin.Context) {
	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID format"})
		return
	}

	tmpl, err := h.templates.GetByID(c.Request.Context(), &dto.GetWorkflowTemplateByIDRequest{TemplateID: templateID})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow template not found"})
		} else {
			log.Printf("GetWorkflowTemplateByID: Error fetching template %s: %v", templateID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workflow template"})
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkflowTemplateToResponse(tmpl))
}

// UpdateWorkflowTemplate godoc
//	@Summary		Update a workflow template
//	@Description	Edits a template. Admin only. Nil fields are untouched; promoting to default demotes competing defaults.
//	@Tags			workflow_templates
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string								true	"Template ID"	Format(uuid)
//	@Param			template	body		dto.UpdateWorkflowTemplateRequest	true	"Fields to update"
//	@Success		200			{object}	dto.WorkflowTemplateResponse		"Template updated"
//	@Failure		400			{object}	map[string]string					"Bad Request"
//	@Failure		401			{object}	map[string]string					"Unauthorized"
//	@Failure		403			{object}	map[string]string					"Forbidden - Admin only"
//	@Failure		404			{object}	map[string]string					"Template not found"
//	@Failure		500			{object}	map[string]string					"Internal Server Error"
//	@Router			/workflow-templates/{id} [put]
//	@Security		BearerAuth
func (h *WorkflowTemplateHandler) UpdateWorkflowTemplate(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("UpdateWorkflowTemplate: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if !authz.IsAdmin(principal) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may manage workflow templates"})
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID format"})
		return
	}

	var req dto.UpdateWorkflowTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.TemplateID = templateID
	req.Actor = principal

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	tmpl, err := h.templates.Update(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow template not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpdateWorkflowTemplate: Error updating template %s: %v", templateID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workflow template"})
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkflowTemplateToResponse(tmpl))
}

// DeleteWorkflowTemplate godoc
//	@Summary		Delete a workflow template
//	@Description	Removes a template. Admin only. Fails with 409 while any bound instance is still active.
//	@Tags			workflow_templates
//	@Produce		json
//	@Param			id	path	string	true	"Template ID"	Format(uuid)
//	@Success		204	"Template deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Admin only"
//	@Failure		404	{object}	map[string]string	"Template not found"
//	@Failure		409	{object}	map[string]string	"Conflict - Template has active instances"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/workflow-templates/{id} [delete]
//	@Security		BearerAuth
func (h *WorkflowTemplateHandler) DeleteWorkflowTemplate(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("DeleteWorkflowTemplate: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if !authz.IsAdmin(principal) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins may manage workflow templates"})
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID format"})
		return
	}

	err = h.templates.Delete(c.Request.Context(), &dto.DeleteWorkflowTemplateRequest{
		TemplateID: templateID,
		Actor:      principal,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow template not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("DeleteWorkflowTemplate: Error deleting template %s: %v", templateID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workflow template"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWorkflowInstanceByID godoc
//	@Summary		Get a workflow instance by ID
//	@Description	Returns a running or finished workflow instance, including its step snapshot, for introspection.
//	@Tags			workflow_instances
//	@Produce		json
//	@Param			id	path		string							true	"Instance ID"	Format(uuid)
//	@Success		200	{object}	dto.WorkflowInstanceResponse	"Successfully retrieved instance"
//	@Failure		400	{object}	map[string]string				"Invalid ID format"
//	@Failure		401	{object}	map[string]string				"Unauthorized"
//	@Failure		404	{object}	map[string]string				"Instance not found"
//	@Failure		500	{object}	map[string]string				"Internal Server Error"
//	@Router			/workflow-instances/{id} [get]
//	@Security		BearerAuth
func (h *WorkflowTemplateHandler) GetWorkflowInstanceByID(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("GetWorkflowInstanceByID: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	instanceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid instance ID format"})
		return
	}

	instance, err := h.engine.GetInstance(c.Request.Context(), &dto.GetWorkflowInstanceByIDRequest{
		InstanceID: instanceID,
		Actor:      principal,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workflow instance not found"})
		} else {
			log.Printf("GetWorkflowInstanceByID: Error fetching instance %s: %v", instanceID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve workflow instance"})
		}
		return
	}

	c.JSON(http.StatusOK, MapWorkflowInstanceToResponse(instance))
}
