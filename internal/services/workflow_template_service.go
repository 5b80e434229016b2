package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"staffhub/ent"
	"staffhub/internal/storage"
	"staffhub/internal/storage/postgres"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultTemplateCachePrefix = "workflow_template:default:"
	defaultTemplateCacheTTL    = 5 * time.Minute
)

type workflowTemplateService struct {
	templateRepo storage.WorkflowTemplateRepository
	instanceRepo storage.WorkflowInstanceRepository
	db           *ent.Client
	redisClient  *redis.Client
}

// NewWorkflowTemplateService creates a new instance of WorkflowTemplateService.
func NewWorkflowTemplateService(db *ent.Client, redisClient *redis.Client) WorkflowTemplateService {
	return &workflowTemplateService{
		templateRepo: postgres.NewWorkflowTemplateRepo(db),
		instanceRepo: postgres.NewWorkflowInstanceRepo(db),
		db:           db,
		redisClient:  redisClient,
	}
}

// NewWorkflowTemplateServiceWithDeps wires explicit dependencies; used by
// tests. A nil client skips the transaction wrapping around default writes.
func NewWorkflowTemplateServiceWithDeps(templateRepo storage.WorkflowTemplateRepository, instanceRepo storage.WorkflowInstanceRepository, db *ent.Client, redisClient *redis.Client) WorkflowTemplateService {
	return &workflowTemplateService{
		templateRepo: templateRepo,
		instanceRepo: instanceRepo,
		db:           db,
		redisClient:  redisClient,
	}
}

// Create authors a new template. Setting is_default clears the default flag
// on every overlapping-type template inside the same transaction, so at most
// one default exists per application type at any time.
func (s *workflowTemplateService) Create(ctx context.Context, req *dto.CreateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error) {
	if !req.IsDefault {
		created, err := s.templateRepo.Create(ctx, req)
		if err != nil {
			return nil, MapRepoError(err, "creating workflow template")
		}
		s.invalidateDefaultCache(req.ApplicationTypes)
		return created, nil
	}

	txRepo := s.templateRepo
	var tx *ent.Tx
	if s.db != nil {
		var err error
		tx, err = s.db.Tx(ctx)
		if err != nil {
			log.Printf("CreateWorkflowTemplate: Error beginning transaction: %v", err)
			return nil, fmt.Errorf("internal error starting transaction: %w", err)
		}
		defer tx.Rollback()
		txRepo = s.templateRepo.WithTx(tx)
	}

	created, err := txRepo.Create(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "creating workflow template")
	}

	if err := txRepo.ClearDefaultsForTypes(ctx, req.ApplicationTypes, created.ID); err != nil {
		return nil, MapRepoError(err, "clearing competing default templates")
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			log.Printf("CreateWorkflowTemplate: Error committing transaction: %v", err)
			return nil, fmt.Errorf("internal error committing changes: %w", err)
		}
	}

	s.invalidateDefaultCache(req.ApplicationTypes)
	log.Printf("Workflow template %s created as default for types %v", created.ID, req.ApplicationTypes)
	return created, nil
}

func (s *workflowTemplateService) GetByID(ctx context.Context, req *dto.GetWorkflowTemplateByIDRequest) (*ent.WorkflowTemplate, error) {
	tmpl, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching workflow template %s", req.TemplateID))
	}
	return tmpl, nil
}

func (s *workflowTemplateService) List(ctx context.Context, req *dto.ListWorkflowTemplatesRequest) ([]*ent.WorkflowTemplate, error) {
	templates, err := s.templateRepo.List(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "listing workflow templates")
	}
	return templates, nil
}

func (s *workflowTemplateService) Update(ctx context.Context, req *dto.UpdateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error) {
	existing, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching workflow template %s for update", req.TemplateID))
	}

	// Types after the update decide which competing defaults to clear.
	effectiveTypes := existing.ApplicationTypes
	if req.ApplicationTypes != nil {
		effectiveTypes = req.ApplicationTypes
	}

	// The default flag after the write decides whether competitors get
	// demoted: retyping a template that is already default widens the set it
	// covers just like freshly promoting one does.
	willBeDefault := existing.IsDefault
	if req.IsDefault != nil {
		willBeDefault = *req.IsDefault
	}
	if !willBeDefault {
		updated, err := s.templateRepo.Update(ctx, req)
		if err != nil {
			return nil, MapRepoError(err, fmt.Sprintf("updating workflow template %s", req.TemplateID))
		}
		s.invalidateDefaultCache(effectiveTypes)
		return updated, nil
	}

	txRepo := s.templateRepo
	var tx *ent.Tx
	if s.db != nil {
		tx, err = s.db.Tx(ctx)
		if err != nil {
			log.Printf("UpdateWorkflowTemplate: Error beginning transaction: %v", err)
			return nil, fmt.Errorf("internal error starting transaction: %w", err)
		}
		defer tx.Rollback()
		txRepo = s.templateRepo.WithTx(tx)
	}

	updated, err := txRepo.Update(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating workflow template %s", req.TemplateID))
	}

	if err := txRepo.ClearDefaultsForTypes(ctx, effectiveTypes, updated.ID); err != nil {
		return nil, MapRepoError(err, "clearing competing default templates")
	}

	if tx != nil {
		if err := tx.Commit(); err != nil {
			log.Printf("UpdateWorkflowTemplate: Error committing transaction: %v", err)
			return nil, fmt.Errorf("internal error committing changes: %w", err)
		}
	}

	s.invalidateDefaultCache(effectiveTypes)
	return updated, nil
}

// Delete refuses to remove a template while any bound instance is still
// running.
func (s *workflowTemplateService) Delete(ctx context.Context, req *dto.DeleteWorkflowTemplateRequest) error {
	tmpl, err := s.templateRepo.GetByID(ctx, req.TemplateID)
	if err != nil {
		return MapRepoError(err, fmt.Sprintf("fetching workflow template %s for deletion", req.TemplateID))
	}

	active, err := s.instanceRepo.CountActiveByTemplate(ctx, req.TemplateID)
	if err != nil {
		return MapRepoError(err, "counting active instances for template")
	}
	if active > 0 {
		log.Printf("Delete: Attempt to delete workflow template %s with %d active instance(s)", req.TemplateID, active)
		return fmt.Errorf("%w: workflow template has %d active instance(s)", ErrConflict, active)
	}

	if err := s.templateRepo.Delete(ctx, req.TemplateID); err != nil {
		return MapRepoError(err, fmt.Sprintf("deleting workflow template %s", req.TemplateID))
	}

	s.invalidateDefaultCache(tmpl.ApplicationTypes)
	return nil
}

// FindDefaultFor resolves the active default template matching the type (or
// the "both" sentinel). A nil result with nil error means no workflow applies.
// Lookups go through redis; cache trouble degrades to the database.
func (s *workflowTemplateService) FindDefaultFor(ctx context.Context, applicationType string) (*ent.WorkflowTemplate, error) {
	cacheKey := defaultTemplateCachePrefix + applicationType

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			if id, parseErr := uuid.Parse(cached); parseErr == nil {
				tmpl, getErr := s.templateRepo.GetByID(ctx, id)
				if getErr == nil {
					return tmpl, nil
				}
				// Stale pointer; fall through to the database.
				log.Printf("FindDefaultFor: cached template %s unavailable: %v", id, getErr)
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("FindDefaultFor: redis lookup failed for %s: %v", cacheKey, err)
		}
	}

	tmpl, err := s.templateRepo.FindDefaultFor(ctx, applicationType)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, MapRepoError(err, fmt.Sprintf("finding default workflow template for type %s", applicationType))
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, cacheKey, tmpl.ID.String(), defaultTemplateCacheTTL).Err(); err != nil {
			log.Printf("FindDefaultFor: redis set failed for %s: %v", cacheKey, err)
		}
	}
	return tmpl, nil
}

// invalidateDefaultCache drops cached default lookups for every type a write
// may have affected. Best-effort: a failed invalidation expires with the TTL.
func (s *workflowTemplateService) invalidateDefaultCache(types []string) {
	if s.redisClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()

	keys := []string{
		defaultTemplateCachePrefix + "client_applied",
		defaultTemplateCachePrefix + "vendor_applied",
		defaultTemplateCachePrefix + "both",
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		log.Printf("invalidateDefaultCache: redis del failed for types %v: %v", types, err)
	}
}
