package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"staffhub/ent"
	"staffhub/internal/authz"
	"staffhub/internal/status"
	"staffhub/internal/storage"
	"staffhub/internal/storage/postgres"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type applicationService struct {
	appRepo         storage.ApplicationRepository
	historyRepo     storage.ApplicationHistoryRepository
	requirementRepo storage.RequirementRepository
	resourceRepo    storage.ResourceRepository
	notifications   NotificationService
	workflow        WorkflowEngine
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(db *ent.Client, redisClient *redis.Client) ApplicationService {
	return &applicationService{
		appRepo:         postgres.NewApplicationRepo(db),
		historyRepo:     postgres.NewApplicationHistoryRepo(db),
		requirementRepo: postgres.NewRequirementRepo(db),
		resourceRepo:    postgres.NewResourceRepo(db),
		notifications:   NewNotificationService(db),
		workflow:        NewWorkflowEngine(db, redisClient),
	}
}

// NewApplicationServiceWithDeps wires explicit dependencies; used by tests.
func NewApplicationServiceWithDeps(
	appRepo storage.ApplicationRepository,
	historyRepo storage.ApplicationHistoryRepository,
	requirementRepo storage.RequirementRepository,
	resourceRepo storage.ResourceRepository,
	notifications NotificationService,
	workflow WorkflowEngine,
) ApplicationService {
	return &applicationService{
		appRepo:         appRepo,
		historyRepo:     historyRepo,
		requirementRepo: requirementRepo,
		resourceRepo:    resourceRepo,
		notifications:   notifications,
		workflow:        workflow,
	}
}

// Submit creates an application at status applied. The unique
// (requirement, resource) pair is enforced by the database constraint; a
// duplicate submission surfaces as ErrConflict. History, the owner
// notification and workflow instantiation all run after the create commits
// and cannot fail it.
func (s *applicationService) Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*ent.Application, error) {
	if req.Actor.OrganizationID == nil {
		log.Printf("Submit: Actor %s has no organization", req.Actor.ID)
		return nil, fmt.Errorf("%w: applications require an organization-bound actor", ErrValidation)
	}

	requirement, err := s.requirementRepo.GetByID(ctx, req.RequirementID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching requirement %s", req.RequirementID))
	}
	if _, err := s.resourceRepo.GetByID(ctx, req.ResourceID); err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching resource %s", req.ResourceID))
	}

	app, err := s.appRepo.Create(ctx, &dto.CreateApplicationRequest{
		RequirementID:   req.RequirementID,
		ResourceID:      req.ResourceID,
		ApplicationType: applicationTypeFor(req.Actor),
		OrganizationID:  *req.Actor.OrganizationID,
		Notes:           req.Notes,
		ProposedRate:    req.ProposedRate,
		Availability:    req.Availability,
		CreatedBy:       req.Actor.ID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			log.Printf("Submit: Duplicate application for requirement %s / resource %s", req.RequirementID, req.ResourceID)
			return nil, fmt.Errorf("%w: an application for this requirement and resource already exists", ErrConflict)
		}
		return nil, MapRepoError(err, "creating application")
	}
	log.Printf("Application %s submitted by %s for requirement %s", app.ID, req.Actor.ID, req.RequirementID)

	runSideEffect("submit history", func(ctx context.Context) error {
		_, err := s.historyRepo.Append(ctx, &dto.AppendHistoryRequest{
			ApplicationID:  app.ID,
			Status:         string(status.Applied),
			Notes:          "Application submitted",
			OrganizationID: app.OrganizationID,
			CreatedBy:      req.Actor.ID,
		})
		return err
	})

	if requirement.CreatedBy != req.Actor.ID {
		runSideEffect("submit owner notification", func(ctx context.Context) error {
			appID := app.ID
			return s.notifications.Notify(ctx, &dto.CreateNotificationRequest{
				RecipientID:       requirement.CreatedBy,
				Type:              "application_submitted",
				Title:             "New application received",
				Message:           fmt.Sprintf("A new application was submitted for %q", requirement.Title),
				RelatedEntityType: "application",
				RelatedEntityID:   &appID,
				ActionURL:         fmt.Sprintf("/applications/%s", app.ID),
			})
		})
	}

	runSideEffect("workflow instantiation", func(ctx context.Context) error {
		_, err := s.workflow.Instantiate(ctx, app)
		return err
	})

	// Side effects may have linked a workflow; return the fresh row when we
	// can, the created one otherwise.
	if refreshed, err := s.appRepo.GetByID(ctx, app.ID); err == nil {
		return refreshed, nil
	}
	return app, nil
}

// ChangeStatus moves an application to a new lifecycle status under the
// role-based transition policy. The requested target drives workflow
// advancement even when the stored status was remapped.
func (s *applicationService) ChangeStatus(ctx context.Context, req *dto.ChangeStatusRequest) (*StatusChangeResult, error) {
	target, ok := status.Parse(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q, %s", ErrValidation, req.Status, validStatusesMessage())
	}

	app, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}
	current := status.Status(app.Status)

	requirement, err := s.requirementRepo.GetByID(ctx, app.RequirementID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: associated requirement not found", ErrNotFound)
		}
		return nil, MapRepoError(err, fmt.Sprintf("fetching requirement %s", app.RequirementID))
	}
	resource, err := s.resourceRepo.GetByID(ctx, app.ResourceID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: associated resource not found", ErrNotFound)
		}
		return nil, MapRepoError(err, fmt.Sprintf("fetching resource %s", app.ResourceID))
	}

	// Relatedness is settled before any answer that echoes application state,
	// so an unrelated caller cannot use this endpoint as a read.
	isAdmin := authz.IsAdmin(req.Actor)
	ownsRequirement := authz.IsClient(req.Actor) && requirement.CreatedBy == req.Actor.ID
	ownsResource := authz.IsVendor(req.Actor) && (resource.CreatedBy == req.Actor.ID || app.CreatedBy == req.Actor.ID)
	if !isAdmin && !ownsRequirement && !ownsResource {
		log.Printf("ChangeStatus: Actor %s (role %s) denied on application %s", req.Actor.ID, authz.EffectiveRole(req.Actor), app.ID)
		return nil, fmt.Errorf("%w: role %s may not change the status of this application", ErrForbidden, authz.EffectiveRole(req.Actor))
	}

	// Re-submitting the current status is a no-op success, not an error.
	if target == current {
		log.Printf("ChangeStatus: Application %s already in status %s, no-op", app.ID, current)
		return &StatusChangeResult{
			Application:    app,
			StatusCategory: status.Category(current),
			PreviousStatus: string(current),
			NewStatus:      string(current),
		}, nil
	}

	if status.IsTerminal(current) {
		log.Printf("ChangeStatus: Application %s is terminal (%s), rejecting transition to %s", app.ID, current, target)
		return nil, fmt.Errorf("%w: application is %s and accepts no further transitions", ErrInvalidState, current)
	}

	stored := target
	switch {
	case isAdmin:
		// Admin "acceptance" of a raw application means shortlisting.
		if target == status.Accepted && current == status.Applied {
			stored = status.Shortlisted
			log.Printf("ChangeStatus: Admin accept on fresh application %s stored as shortlisted", app.ID)
		}

	case ownsRequirement:
		allowed := clientStatusTargets(current)
		if !statusIn(target, allowed) {
			log.Printf("ChangeStatus: Client %s denied %s -> %s on application %s", req.Actor.ID, current, target, app.ID)
			return nil, fmt.Errorf("%w: client cannot set status %s while application is %s", ErrForbidden, target, current)
		}

	default:
		if target != status.Withdrawn {
			log.Printf("ChangeStatus: Vendor %s denied %s -> %s on application %s", req.Actor.ID, current, target, app.ID)
			return nil, fmt.Errorf("%w: vendor may only withdraw an application", ErrForbidden)
		}
	}

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}
	updated, err := s.appRepo.UpdateStatus(ctx, &dto.UpdateApplicationStatusRequest{
		ApplicationID: app.ID,
		Status:        string(stored),
		Notes:         notes,
		UpdatedBy:     req.Actor.ID,
	})
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating status of application %s", app.ID))
	}
	log.Printf("Application %s status changed %s -> %s by %s", app.ID, current, stored, req.Actor.ID)

	historyNotes := req.Notes
	if historyNotes == "" {
		historyNotes = defaultTransitionNote(string(current), string(stored))
	}
	runSideEffect("status change history", func(ctx context.Context) error {
		_, err := s.historyRepo.Append(ctx, &dto.AppendHistoryRequest{
			ApplicationID:   app.ID,
			Status:          string(stored),
			PreviousStatus:  string(current),
			Notes:           historyNotes,
			DecisionReason:  req.DecisionReason,
			NotifyCandidate: req.NotifyCandidate,
			NotifyClient:    req.NotifyClient,
			FollowUp:        req.FollowUp,
			OrganizationID:  app.OrganizationID,
			CreatedBy:       req.Actor.ID,
		})
		return err
	})

	s.notifyStatusChange(updated, requirement.CreatedBy, resource.CreatedBy, string(current), string(stored), req)

	// The workflow advances on the requested action label, not the possibly
	// remapped stored status.
	runSideEffect("workflow advance", func(ctx context.Context) error {
		return s.workflow.Advance(ctx, updated, req.Actor, string(target), req.Notes)
	})

	return &StatusChangeResult{
		Application:    updated,
		StatusCategory: status.Category(stored),
		PreviousStatus: string(current),
		NewStatus:      string(stored),
	}, nil
}

// notifyStatusChange fans out the status-change notifications: the creator is
// always told, the candidate and client sides only when the caller asked.
func (s *applicationService) notifyStatusChange(app *ent.Application, clientOwner, candidateOwner uuid.UUID, previous, next string, req *dto.ChangeStatusRequest) {
	appID := app.ID
	message := fmt.Sprintf("Application status changed from %s to %s", previous, next)

	recipients := map[uuid.UUID]string{app.CreatedBy: "creator"}
	if req.NotifyCandidate {
		recipients[candidateOwner] = "candidate"
	}
	if req.NotifyClient {
		recipients[clientOwner] = "client"
	}

	for recipient := range recipients {
		recipient := recipient
		runSideEffect("status change notification", func(ctx context.Context) error {
			return s.notifications.Notify(ctx, &dto.CreateNotificationRequest{
				RecipientID:       recipient,
				Type:              "application_status_changed",
				Title:             "Application status updated",
				Message:           message,
				RelatedEntityType: "application",
				RelatedEntityID:   &appID,
				ActionURL:         fmt.Sprintf("/applications/%s", app.ID),
			})
		})
	}
}

// UpdateDetails mutates notes, proposed rate and availability. Only the
// original creator or an admin may edit.
func (s *applicationService) UpdateDetails(ctx context.Context, req *dto.UpdateApplicationRequest) (*ent.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	if app.CreatedBy != req.Actor.ID && !authz.IsAdmin(req.Actor) {
		log.Printf("UpdateDetails: Actor %s denied on application %s", req.Actor.ID, app.ID)
		return nil, fmt.Errorf("%w: only the application creator or an admin may edit details", ErrForbidden)
	}

	updated, err := s.appRepo.UpdateDetails(ctx, &dto.UpdateApplicationDetailsRequest{
		ApplicationID: app.ID,
		Notes:         req.Notes,
		ProposedRate:  req.ProposedRate,
		Availability:  req.Availability,
		UpdatedBy:     req.Actor.ID,
	})
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("updating details of application %s", app.ID))
	}

	runSideEffect("details update history", func(ctx context.Context) error {
		_, err := s.historyRepo.Append(ctx, &dto.AppendHistoryRequest{
			ApplicationID:  app.ID,
			Status:         string(app.Status),
			PreviousStatus: string(app.Status),
			Notes:          "Application details updated",
			OrganizationID: app.OrganizationID,
			CreatedBy:      req.Actor.ID,
		})
		return err
	})

	return updated, nil
}

// Delete removes an application. The terminal ledger record is written first,
// while the application row still exists, so the history always outlives the
// application.
func (s *applicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	app, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return MapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	if app.CreatedBy != req.Actor.ID && !authz.IsAdmin(req.Actor) {
		log.Printf("Delete: Actor %s denied on application %s", req.Actor.ID, app.ID)
		return fmt.Errorf("%w: only the application creator or an admin may delete it", ErrForbidden)
	}

	// Captured before the delete so the record references live data.
	if _, err := s.historyRepo.Append(ctx, &dto.AppendHistoryRequest{
		ApplicationID:  app.ID,
		Status:         status.Deleted,
		PreviousStatus: string(app.Status),
		Notes:          "Application deleted",
		OrganizationID: app.OrganizationID,
		CreatedBy:      req.Actor.ID,
	}); err != nil {
		log.Printf("WARN: Delete: deletion history for application %s failed: %v", app.ID, err)
	}

	if err := s.appRepo.Delete(ctx, app.ID); err != nil {
		return MapRepoError(err, fmt.Sprintf("deleting application %s", app.ID))
	}
	log.Printf("Application %s deleted by %s", app.ID, req.Actor.ID)
	return nil
}

func (s *applicationService) GetByID(ctx context.Context, req *dto.GetApplicationByIDRequest) (*ent.Application, error) {
	app, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}
	return app, nil
}

// List returns the applications the actor may see: admins list everything,
// clients see applications against their organization's requirements, vendors
// see their own organization's submissions.
func (s *applicationService) List(ctx context.Context, req *dto.ListApplicationsRequest) ([]*ent.Application, error) {
	if req.Status != "" {
		for _, raw := range strings.Split(req.Status, ",") {
			if _, ok := status.Parse(strings.TrimSpace(raw)); !ok {
				return nil, fmt.Errorf("%w: unknown status %q, %s", ErrValidation, raw, validStatusesMessage())
			}
		}
	}

	switch {
	case authz.IsAdmin(req.Actor):
		// Unscoped.
	case authz.IsClient(req.Actor):
		if req.Actor.OrganizationID == nil {
			return []*ent.Application{}, nil
		}
		// An application row carries the submitter's organization, so the
		// client view is keyed off the requirements their org owns.
		requirements, err := s.requirementRepo.ListByOrganization(ctx, *req.Actor.OrganizationID)
		if err != nil {
			return nil, MapRepoError(err, "listing requirements for organization scope")
		}
		if len(requirements) == 0 {
			return []*ent.Application{}, nil
		}
		ids := make([]uuid.UUID, len(requirements))
		for i, r := range requirements {
			ids[i] = r.ID
		}
		req.ScopeRequirementIDs = ids
	default:
		if req.Actor.OrganizationID == nil {
			return []*ent.Application{}, nil
		}
		req.ScopeOrganizationID = req.Actor.OrganizationID
	}

	apps, err := s.appRepo.List(ctx, req)
	if err != nil {
		return nil, MapRepoError(err, "listing applications")
	}
	return apps, nil
}

func (s *applicationService) History(ctx context.Context, req *dto.ListApplicationHistoryRequest) ([]*ent.ApplicationHistory, error) {
	// The application itself may already be gone; the ledger remains
	// readable either way.
	entries, err := s.historyRepo.ListByApplication(ctx, req.ApplicationID)
	if err != nil {
		return nil, MapRepoError(err, fmt.Sprintf("listing history of application %s", req.ApplicationID))
	}
	return entries, nil
}
