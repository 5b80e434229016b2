package handlers

import (
	"fmt"

	"staffhub/ent"
	"staffhub/internal/services"
	"staffhub/internal/transport/dto"

	"github.com/go-playground/validator/v10"
)

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must have at least %s element(s)", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "gte":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		}
	}
	return errorsMap
}

// MapApplicationToResponse converts an ent.Application to a dto.ApplicationResponse
func MapApplicationToResponse(app *ent.Application) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:                  app.ID,
		RequirementID:       app.RequirementID,
		ResourceID:          app.ResourceID,
		Status:              string(app.Status),
		ApplicationType:     string(app.ApplicationType),
		OrganizationID:      app.OrganizationID,
		Notes:               app.Notes,
		ProposedRate:        app.ProposedRate,
		Availability:        app.Availability,
		WorkflowInstanceID:  app.WorkflowInstanceID,
		WorkflowStatus:      string(app.WorkflowStatus),
		CurrentWorkflowStep: app.CurrentWorkflowStep,
		CreatedBy:           app.CreatedBy,
		CreatedAt:           app.CreatedAt,
		UpdatedAt:           app.UpdatedAt,
	}
}

// MapStatusChangeToResponse converts a services.StatusChangeResult to a dto.StatusChangeResponse
func MapStatusChangeToResponse(result *services.StatusChangeResult) dto.StatusChangeResponse {
	return dto.StatusChangeResponse{
		Application:    MapApplicationToResponse(result.Application),
		StatusCategory: result.StatusCategory,
		PreviousStatus: result.PreviousStatus,
		NewStatus:      result.NewStatus,
	}
}

// MapHistoryEntryToResponse converts an ent.ApplicationHistory to a dto.HistoryEntryResponse
func MapHistoryEntryToResponse(entry *ent.ApplicationHistory) dto.HistoryEntryResponse {
	return dto.HistoryEntryResponse{
		ID:              entry.ID,
		ApplicationID:   entry.ApplicationID,
		Status:          entry.Status,
		PreviousStatus:  entry.PreviousStatus,
		Notes:           entry.Notes,
		DecisionReason:  entry.DecisionReason,
		NotifyCandidate: entry.NotifyCandidate,
		NotifyClient:    entry.NotifyClient,
		FollowUp:        entry.FollowUp,
		CreatedBy:       entry.CreatedBy,
		CreatedAt:       entry.CreatedAt,
	}
}

// MapWorkflowTemplateToResponse converts an ent.WorkflowTemplate to a dto.WorkflowTemplateResponse
func MapWorkflowTemplateToResponse(tmpl *ent.WorkflowTemplate) dto.WorkflowTemplateResponse {
	return dto.WorkflowTemplateResponse{
		ID:               tmpl.ID,
		Name:             tmpl.Name,
		Description:      tmpl.Description,
		ApplicationTypes: tmpl.ApplicationTypes,
		Steps:            tmpl.Steps,
		IsActive:         tmpl.IsActive,
		IsDefault:        tmpl.IsDefault,
		CreatedBy:        tmpl.CreatedBy,
		CreatedAt:        tmpl.CreatedAt,
		UpdatedAt:        tmpl.UpdatedAt,
	}
}

// MapWorkflowInstanceToResponse converts an ent.WorkflowInstance to a dto.WorkflowInstanceResponse
func MapWorkflowInstanceToResponse(instance *ent.WorkflowInstance) dto.WorkflowInstanceResponse {
	return dto.WorkflowInstanceResponse{
		ID:            instance.ID,
		ApplicationID: instance.ApplicationID,
		TemplateID:    instance.TemplateID,
		Steps:         instance.Steps,
		CurrentStep:   instance.CurrentStep,
		Status:        string(instance.Status),
		CompletedAt:   instance.CompletedAt,
		CreatedAt:     instance.CreatedAt,
		UpdatedAt:     instance.UpdatedAt,
	}
}

// MapNotificationToResponse converts an ent.Notification to a dto.NotificationResponse
func MapNotificationToResponse(n *ent.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:                n.ID,
		Type:              n.Type,
		Title:             n.Title,
		Message:           n.Message,
		RelatedEntityType: n.RelatedEntityType,
		RelatedEntityID:   n.RelatedEntityID,
		ActionURL:         n.ActionURL,
		Read:              n.Read,
		CreatedAt:         n.CreatedAt,
	}
}
