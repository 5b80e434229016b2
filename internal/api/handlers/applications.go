package handlers

import (
	"errors"
	"log"
	"net/http"

	"staffhub/internal/api/middleware"
	"staffhub/internal/services"
	"staffhub/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application lifecycle operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// SubmitApplication godoc
//	@Summary		Submit an application
//	@Description	Creates an application pairing a requirement with a resource. The pair is unique; re-submission returns 409.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			application	body		dto.SubmitApplicationRequest	true	"Application payload"
//	@Success		201			{object}	dto.ApplicationResponse			"Application created successfully"
//	@Failure		400			{object}	map[string]string				"Bad Request - Invalid payload or organization-less actor"
//	@Failure		401			{object}	map[string]string				"Unauthorized"
//	@Failure		404			{object}	map[string]string				"Not Found - Requirement or resource not found"
//	@Failure		409			{object}	map[string]string				"Conflict - Application already exists for this pair"
//	@Failure		500			{object}	map[string]string				"Internal Server Error"
//	@Router			/applications [post]
//	@Security		BearerAuth
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("SubmitApplication: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.Actor = principal

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			log.Printf("SubmitApplication: Error submitting application: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapApplicationToResponse(app))
}

// ListApplications godoc
//	@Summary		List applications
//	@Description	Lists applications, newest first. Status accepts a single value or a comma-separated list.
//	@Tags			applications
//	@Produce		json
//	@Param			status			query		string					false	"Status filter (csv, OR match)"
//	@Param			requirement_id	query		string					false	"Requirement filter"	Format(uuid)
//	@Param			resource_id		query		string					false	"Resource filter"		Format(uuid)
//	@Param			limit			query		int						false	"Pagination limit"	default(10)
//	@Param			offset			query		int						false	"Pagination offset"	default(0)
//	@Success		200				{array}		dto.ApplicationResponse	"Successfully retrieved applications"
//	@Failure		400				{object}	map[string]string		"Bad Request - Invalid filters"
//	@Failure		401				{object}	map[string]string		"Unauthorized"
//	@Failure		500				{object}	map[string]string		"Internal Server Error"
//	@Router			/applications [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("ListApplications: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListApplicationsRequest
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

	apps, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("ListApplications: Error listing applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	responses := make([]dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		responses = append(responses, MapApplicationToResponse(app))
	}
	c.JSON(http.StatusOK, responses)
}

// GetApplicationByID godoc
//	@Summary		Get an application by ID
//	@Description	Retrieves a single application.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string					true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.ApplicationResponse	"Successfully retrieved application"
//	@Failure		400	{object}	map[string]string		"Invalid ID format"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		404	{object}	map[string]string		"Application not found"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) GetApplicationByID(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("GetApplicationByID: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	app, err := h.service.GetByID(c.Request.Context(), &dto.GetApplicationByIDRequest{
		ApplicationID: appID,
		Actor:         principal,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			log.Printf("GetApplicationByID: Error fetching application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app))
}

// ChangeApplicationStatus godoc
//	@Summary		Change application status
//	@Description	Moves an application through its lifecycle under the role-based transition policy. Setting the current status again is a no-op success.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Application ID"	Format(uuid)
//	@Param			status	body		dto.ChangeStatusRequest	true	"Target status and options"
//	@Success		200		{object}	dto.StatusChangeResponse	"Status changed"
//	@Failure		400		{object}	map[string]string		"Bad Request - Unknown status"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		403		{object}	map[string]string		"Forbidden - Transition not permitted for this role and state"
//	@Failure		404		{object}	map[string]string		"Not Found - Application, requirement or resource missing"
//	@Failure		409		{object}	map[string]string		"Conflict - Application is in a terminal state"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/applications/{id}/status [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) ChangeApplicationStatus(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("ChangeApplicationStatus: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.Actor = principal

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	result, err := h.service.ChangeStatus(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("ChangeApplicationStatus: Error changing status of application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change application status"})
		}
		return
	}

	c.JSON(http.StatusOK, MapStatusChangeToResponse(result))
}

// UpdateApplicationDetails godoc
//	@Summary		Update application details
//	@Description	Mutates notes, proposed rate and availability. Only the creator or an admin may edit; status changes go through the status endpoint.
//	@Tags			applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Application ID"	Format(uuid)
//	@Param			details	body		dto.UpdateApplicationRequest	true	"Fields to update"
//	@Success		200		{object}	dto.ApplicationResponse		"Application updated"
//	@Failure		400		{object}	map[string]string			"Bad Request"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden - Not creator or admin"
//	@Failure		404		{object}	map[string]string			"Application not found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id} [patch]
//	@Security		BearerAuth
func (h *ApplicationHandler) UpdateApplicationDetails(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("UpdateApplicationDetails: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.Actor = principal

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.UpdateDetails(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpdateApplicationDetails: Error updating application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app))
}

// DeleteApplication godoc
//	@Summary		Delete an application
//	@Description	Removes an application after writing a terminal deletion record to its history. Only the creator or an admin may delete.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path	string	true	"Application ID"	Format(uuid)
//	@Success		204	"Application deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not creator or admin"
//	@Failure		404	{object}	map[string]string	"Application not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id} [delete]
//	@Security		BearerAuth
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("DeleteApplication: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	err = h.service.Delete(c.Request.Context(), &dto.DeleteApplicationRequest{
		ApplicationID: appID,
		Actor:         principal,
	})
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("DeleteApplication: Error deleting application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListApplicationHistory godoc
//	@Summary		List application history
//	@Description	Returns the append-only history ledger for an application, newest first. Readable even after the application is deleted.
//	@Tags			applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{array}		dto.HistoryEntryResponse	"Successfully retrieved history"
//	@Failure		400	{object}	map[string]string			"Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/history [get]
//	@Security		BearerAuth
func (h *ApplicationHandler) ListApplicationHistory(c *gin.Context) {
	principal, err := middleware.GetPrincipalFromContext(c)
	if err != nil {
		log.Printf("ListApplicationHistory: Error getting principal from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	entries, err := h.service.History(c.Request.Context(), &dto.ListApplicationHistoryRequest{
		ApplicationID: appID,
		Actor:         principal,
	})
	if err != nil {
		log.Printf("ListApplicationHistory: Error listing history of application %s: %v", appID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application history"})
		return
	}

	responses := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, MapHistoryEntryToResponse(entry))
	}
	c.JSON(http.StatusOK, responses)
}
