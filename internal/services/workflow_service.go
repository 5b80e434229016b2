package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"staffhub/ent"
	"staffhub/ent/workflowinstance"
	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/status"
	"staffhub/internal/storage"
	"staffhub/internal/storage/postgres"
	"staffhub/internal/transport/dto"

	"github.com/redis/go-redis/v9"
)

type workflowEngine struct {
	instanceRepo    storage.WorkflowInstanceRepository
	appRepo         storage.ApplicationRepository
	templateService WorkflowTemplateService
}

// NewWorkflowEngine creates a new instance of WorkflowEngine.
func NewWorkflowEngine(db *ent.Client, redisClient *redis.Client) WorkflowEngine {
	return &workflowEngine{
		instanceRepo:    postgres.NewWorkflowInstanceRepo(db),
		appRepo:         postgres.NewApplicationRepo(db),
		templateService: NewWorkflowTemplateService(db, redisClient),
	}
}

// NewWorkflowEngineWithDeps wires explicit dependencies; used by tests.
func NewWorkflowEngineWithDeps(instanceRepo storage.WorkflowInstanceRepository, appRepo storage.ApplicationRepository, templateService WorkflowTemplateService) WorkflowEngine {
	return &workflowEngine{
		instanceRepo:    instanceRepo,
		appRepo:         appRepo,
		templateService: templateService,
	}
}

// Instantiate finds the default template for the application's type and
// starts an instance bound to it: steps snapshotted by value, pointer fields
// cached on the application. A nil instance with nil error means no default
// template applies, which is a valid state.
func (s *workflowEngine) Instantiate(ctx context.Context, app *ent.Application) (*ent.WorkflowInstance, error) {
	tmpl, err := s.templateService.FindDefaultFor(ctx, string(app.ApplicationType))
	if err != nil {
		return nil, fmt.Errorf("resolving default workflow template: %w", err)
	}
	if tmpl == nil {
		log.Printf("Instantiate: no default workflow template for type %s, application %s proceeds without workflow", app.ApplicationType, app.ID)
		return nil, nil
	}

	instance, err := s.instanceRepo.Create(ctx, &dto.CreateWorkflowInstanceRequest{
		ApplicationID:  app.ID,
		TemplateID:     tmpl.ID,
		Steps:          models.SnapshotSteps(tmpl.Steps),
		OrganizationID: app.OrganizationID,
	})
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("creating workflow instance for application %s", app.ID))
	}

	instanceID := instance.ID
	_, err = s.appRepo.LinkWorkflow(ctx, &dto.LinkWorkflowRequest{
		ApplicationID:      app.ID,
		WorkflowInstanceID: &instanceID,
		WorkflowStatus:     string(status.WorkflowInProgress),
		CurrentStep:        1,
	})
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("linking workflow instance %s to application %s", instance.ID, app.ID))
	}

	log.Printf("Workflow instance %s started for application %s from template %s (%d steps)", instance.ID, app.ID, tmpl.ID, len(instance.Steps))
	return instance, nil
}

// Advance completes the current step and moves the pointer forward. Two
// conditions soft-fail so a workflow misconfiguration never blocks the
// business transition that triggered the advance: a missing step at the
// current pointer, and an actor whose role does not satisfy the step's role
// tag. Both log and return nil.
func (s *workflowEngine) Advance(ctx context.Context, app *ent.Application, actor models.Principal, action, comments string) error {
	if app.WorkflowInstanceID == nil {
		return nil
	}

	instance, err := s.instanceRepo.GetByID(ctx, *app.WorkflowInstanceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Advance: workflow instance %s referenced by application %s no longer exists", *app.WorkflowInstanceID, app.ID)
			return nil
		}
		return MapRepoError(err, fmt.Sprintf("fetching workflow instance %s", *app.WorkflowInstanceID))
	}

	if instance.Status != workflowinstance.Status(status.InstanceActive) {
		log.Printf("Advance: workflow instance %s is %s, nothing to advance", instance.ID, instance.Status)
		return nil
	}

	steps := instance.Steps
	stepIdx := -1
	for i := range steps {
		if steps[i].Order == instance.CurrentStep {
			stepIdx = i
			break
		}
	}
	if stepIdx == -1 {
		// Pointer past the defined steps or template authored with gaps;
		// treated as already complete.
		log.Printf("Advance: no step at order %d on workflow instance %s, skipping", instance.CurrentStep, instance.ID)
		return nil
	}

	step := &steps[stepIdx]
	if !authz.CanAct(actor, authz.RoleTag(step.Role)) {
		log.Printf("Advance: actor %s (role %s) cannot act on step %d (requires %s) of instance %s, workflow not advanced",
			actor.ID, authz.EffectiveRole(actor), step.Order, step.Role, instance.ID)
		return nil
	}

	now := time.Now()
	actorID := actor.ID
	step.Status = status.StepCompleted
	step.CompletedAt = &now
	step.PerformedBy = &actorID
	step.ActionTaken = action
	step.Comments = comments

	nextStep := instance.CurrentStep + 1
	updateReq := &dto.UpdateWorkflowInstanceRequest{
		InstanceID:  instance.ID,
		Steps:       steps,
		CurrentStep: nextStep,
		Status:      string(status.InstanceActive),
	}

	completed := nextStep > len(steps)
	if completed {
		updateReq.Status = string(status.InstanceCompleted)
		updateReq.CompletedAt = &now
	}

	if _, err := s.instanceRepo.Update(ctx, updateReq); err != nil {
		return MapRepoError(err, fmt.Sprintf("advancing workflow instance %s", instance.ID))
	}

	workflowStatus := status.WorkflowInProgress
	if completed {
		workflowStatus = status.WorkflowCompleted
	}
	_, err = s.appRepo.LinkWorkflow(ctx, &dto.LinkWorkflowRequest{
		ApplicationID:  app.ID,
		WorkflowStatus: string(workflowStatus),
		CurrentStep:    nextStep,
	})
	if err != nil {
		return MapRepoError(err, fmt.Sprintf("updating workflow progress on application %s", app.ID))
	}

	if completed {
		log.Printf("Workflow instance %s completed (step %d/%d) by actor %s", instance.ID, step.Order, len(steps), actor.ID)
	} else {
		log.Printf("Workflow instance %s advanced to step %d by actor %s", instance.ID, nextStep, actor.ID)
	}
	return nil
}

func (s *workflowEngine) GetInstance(ctx context.Context, req *dto.GetWorkflowInstanceByIDRequest) (*ent.WorkflowInstance, error) {
	instance, err := s.instanceRepo.GetByID(ctx, req.InstanceID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching workflow instance %s", req.InstanceID))
	}
	return instance, nil
}
