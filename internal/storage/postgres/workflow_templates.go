package postgres

import (
	"context"
	"fmt"
	"log"

	"staffhub/ent"
	"staffhub/ent/workflowtemplate"
	"staffhub/internal/models"
	"staffhub/internal/storage"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// WorkflowTemplateRepo implements the storage.WorkflowTemplateRepository interface using Ent.
type WorkflowTemplateRepo struct {
	client *ent.Client
}

// NewWorkflowTemplateRepo creates a new WorkflowTemplateRepo.
func NewWorkflowTemplateRepo(client *ent.Client) *WorkflowTemplateRepo {
	return &WorkflowTemplateRepo{client: client}
}

func (r *WorkflowTemplateRepo) WithTx(tx *ent.Tx) storage.WorkflowTemplateRepository {
	return &WorkflowTemplateRepo{client: tx.Client()}
}

// Compile-time check to ensure WorkflowTemplateRepo implements WorkflowTemplateRepository
var _ storage.WorkflowTemplateRepository = (*WorkflowTemplateRepo)(nil)

func stepsFromRequest(steps []dto.TemplateStepRequest) []models.TemplateStep {
	out := make([]models.TemplateStep, len(steps))
	for i, s := range steps {
		out[i] = models.TemplateStep{
			Order:       s.Order,
			Name:        s.Name,
			Role:        s.Role,
			Action:      s.Action,
			Required:    s.Required,
			AutoAdvance: s.AutoAdvance,
		}
	}
	return out
}

// typesOverlap reports whether two application-type lists share any type,
// treating "both" as matching either concrete type.
func typesOverlap(a, b []string) bool {
	expand := func(types []string) map[string]struct{} {
		set := make(map[string]struct{})
		for _, t := range types {
			if t == string(models.ApplicationTypeBoth) {
				set[string(models.ApplicationTypeClientApplied)] = struct{}{}
				set[string(models.ApplicationTypeVendorApplied)] = struct{}{}
				continue
			}
			set[t] = struct{}{}
		}
		return set
	}
	setA := expand(a)
	for t := range expand(b) {
		if _, ok := setA[t]; ok {
			return true
		}
	}
	return false
}

func (r *WorkflowTemplateRepo) Create(ctx context.Context, req *dto.CreateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	created, err := r.client.WorkflowTemplate.Create().
		SetName(req.Name).
		SetDescription(req.Description).
		SetApplicationTypes(req.ApplicationTypes).
		SetSteps(stepsFromRequest(req.Steps)).
		SetIsActive(isActive).
		SetIsDefault(req.IsDefault).
		SetCreatedBy(req.Actor.ID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating workflow template (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create workflow template: %w", storage.ErrConflict)
		}
		log.Printf("Error creating workflow template: %v\n", err)
		return nil, fmt.Errorf("failed to create workflow template: %w", err)
	}

	log.Printf("Workflow template created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *WorkflowTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.WorkflowTemplate, error) {
	tmpl, err := r.client.WorkflowTemplate.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Workflow template not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving workflow template by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get workflow template by ID %s: %w", id, err)
	}
	return tmpl, nil
}

func (r *WorkflowTemplateRepo) List(ctx context.Context, req *dto.ListWorkflowTemplatesRequest) ([]*ent.WorkflowTemplate, error) {
	query := r.client.WorkflowTemplate.Query()
	if req.ActiveOnly {
		query = query.Where(workflowtemplate.IsActive(true))
	}

	templates, err := query.
		Order(ent.Desc(workflowtemplate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error listing workflow templates: %v\n", err)
		return nil, fmt.Errorf("failed to list workflow templates: %w", err)
	}

	// application_types is a JSON array; filter by overlap here rather than
	// pushing json predicates into the database.
	if req.ApplicationType != "" {
		filtered := templates[:0]
		for _, t := range templates {
			if typesOverlap(t.ApplicationTypes, []string{req.ApplicationType}) {
				filtered = append(filtered, t)
			}
		}
		templates = filtered
	}

	// Manual pagination after the in-memory filter.
	if req.Offset > 0 {
		if req.Offset >= len(templates) {
			return []*ent.WorkflowTemplate{}, nil
		}
		templates = templates[req.Offset:]
	}
	if req.Limit > 0 && req.Limit < len(templates) {
		templates = templates[:req.Limit]
	}
	return templates, nil
}

func (r *WorkflowTemplateRepo) FindDefaultFor(ctx context.Context, applicationType string) (*ent.WorkflowTemplate, error) {
	candidates, err := r.client.WorkflowTemplate.Query().
		Where(
			workflowtemplate.IsActive(true),
			workflowtemplate.IsDefault(true),
		).
		Order(ent.Desc(workflowtemplate.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		log.Printf("Error querying default workflow template for type %s: %v\n", applicationType, err)
		return nil, fmt.Errorf("failed to find default workflow template: %w", err)
	}

	for _, t := range candidates {
		if typesOverlap(t.ApplicationTypes, []string{applicationType}) {
			return t, nil
		}
	}
	// Absence of a default workflow is a valid state, not an error.
	return nil, storage.ErrNotFound
}

func (r *WorkflowTemplateRepo) Update(ctx context.Context, req *dto.UpdateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error) {
	builder := r.client.WorkflowTemplate.UpdateOneID(req.TemplateID).
		SetUpdatedBy(req.Actor.ID)

	if req.Name != nil {
		builder = builder.SetName(*req.Name)
	}
	if req.Description != nil {
		builder = builder.SetDescription(*req.Description)
	}
	if req.ApplicationTypes != nil {
		builder = builder.SetApplicationTypes(req.ApplicationTypes)
	}
	if req.Steps != nil {
		builder = builder.SetSteps(stepsFromRequest(req.Steps))
	}
	if req.IsActive != nil {
		builder = builder.SetIsActive(*req.IsActive)
	}
	if req.IsDefault != nil {
		builder = builder.SetIsDefault(*req.IsDefault)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Workflow template not found for update with ID: %s\n", req.TemplateID)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating workflow template %s: %v\n", req.TemplateID, err)
		return nil, fmt.Errorf("failed to update workflow template: %w", err)
	}
	return updated, nil
}

// ClearDefaultsForTypes unsets is_default on every other template whose
// application types overlap the given set. Callers run this inside the same
// transaction as the write that sets a new default.
func (r *WorkflowTemplateRepo) ClearDefaultsForTypes(ctx context.Context, types []string, excludeID uuid.UUID) error {
	defaults, err := r.client.WorkflowTemplate.Query().
		Where(
			workflowtemplate.IsDefault(true),
			workflowtemplate.IDNEQ(excludeID),
		).
		All(ctx)
	if err != nil {
		log.Printf("Error querying default templates for clearing: %v\n", err)
		return fmt.Errorf("failed to query default templates: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(defaults))
	for _, t := range defaults {
		if typesOverlap(t.ApplicationTypes, types) {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	err = r.client.WorkflowTemplate.Update().
		Where(workflowtemplate.IDIn(ids...)).
		SetIsDefault(false).
		Exec(ctx)
	if err != nil {
		log.Printf("Error clearing default flag on templates %v: %v\n", ids, err)
		return fmt.Errorf("failed to clear default templates: %w", err)
	}

	log.Printf("Cleared default flag on %d workflow template(s)", len(ids))
	return nil
}

func (r *WorkflowTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.WorkflowTemplate.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Workflow template not found for deletion with ID: %s\n", id)
			return storage.ErrNotFound
		}
		log.Printf("Error deleting workflow template with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete workflow template: %w", err)
	}

	log.Printf("Workflow template deleted successfully with ID: %s", id)
	return nil
}
