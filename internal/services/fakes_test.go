package services

import (
	"context"
	"sort"
	"time"

	"staffhub/ent"
	"staffhub/ent/application"
	"staffhub/ent/workflowinstance"
	"staffhub/internal/models"
	"staffhub/internal/status"
	"staffhub/internal/storage"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests. They mirror the
// behavior of the postgres implementations closely enough for orchestration
// tests: sentinel errors, constraint enforcement, newest-first ordering.

type pairKey struct {
	requirementID uuid.UUID
	resourceID    uuid.UUID
}

type fakeApplicationRepo struct {
	apps  map[uuid.UUID]*ent.Application
	pairs map[pairKey]uuid.UUID
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:  make(map[uuid.UUID]*ent.Application),
		pairs: make(map[pairKey]uuid.UUID),
	}
}

var _ storage.ApplicationRepository = (*fakeApplicationRepo)(nil)

func (f *fakeApplicationRepo) Create(_ context.Context, req *dto.CreateApplicationRequest) (*ent.Application, error) {
	key := pairKey{req.RequirementID, req.ResourceID}
	if _, exists := f.pairs[key]; exists {
		return nil, storage.ErrConflict
	}
	now := time.Now()
	app := &ent.Application{
		ID:                  uuid.New(),
		RequirementID:       req.RequirementID,
		ResourceID:          req.ResourceID,
		Status:              application.Status(status.Applied),
		ApplicationType:     application.ApplicationType(req.ApplicationType),
		OrganizationID:      req.OrganizationID,
		Notes:               req.Notes,
		ProposedRate:        req.ProposedRate,
		Availability:        req.Availability,
		WorkflowStatus:      application.WorkflowStatus(status.WorkflowNotStarted),
		CurrentWorkflowStep: 1,
		CreatedBy:           req.CreatedBy,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	f.apps[app.ID] = app
	f.pairs[key] = app.ID
	return app, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return app, nil
}

func (f *fakeApplicationRepo) GetByRequirementAndResource(_ context.Context, requirementID, resourceID uuid.UUID) (*ent.Application, error) {
	id, ok := f.pairs[pairKey{requirementID, resourceID}]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return f.apps[id], nil
}

func (f *fakeApplicationRepo) List(_ context.Context, req *dto.ListApplicationsRequest) ([]*ent.Application, error) {
	scopedRequirements := make(map[uuid.UUID]struct{}, len(req.ScopeRequirementIDs))
	for _, id := range req.ScopeRequirementIDs {
		scopedRequirements[id] = struct{}{}
	}

	out := make([]*ent.Application, 0, len(f.apps))
	for _, app := range f.apps {
		if req.RequirementID != nil && app.RequirementID != *req.RequirementID {
			continue
		}
		if req.ResourceID != nil && app.ResourceID != *req.ResourceID {
			continue
		}
		if req.ScopeOrganizationID != nil && app.OrganizationID != *req.ScopeOrganizationID {
			continue
		}
		if len(scopedRequirements) > 0 {
			if _, ok := scopedRequirements[app.RequirementID]; !ok {
				continue
			}
		}
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, req *dto.UpdateApplicationStatusRequest) (*ent.Application, error) {
	app, ok := f.apps[req.ApplicationID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	app.Status = application.Status(req.Status)
	app.UpdatedBy = &req.UpdatedBy
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	app.UpdatedAt = time.Now()
	return app, nil
}

func (f *fakeApplicationRepo) UpdateDetails(_ context.Context, req *dto.UpdateApplicationDetailsRequest) (*ent.Application, error) {
	app, ok := f.apps[req.ApplicationID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	if req.ProposedRate != nil {
		app.ProposedRate = req.ProposedRate
	}
	if req.Availability != nil {
		app.Availability = req.Availability
	}
	app.UpdatedBy = &req.UpdatedBy
	app.UpdatedAt = time.Now()
	return app, nil
}

func (f *fakeApplicationRepo) LinkWorkflow(_ context.Context, req *dto.LinkWorkflowRequest) (*ent.Application, error) {
	app, ok := f.apps[req.ApplicationID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if req.WorkflowInstanceID != nil {
		app.WorkflowInstanceID = req.WorkflowInstanceID
	}
	app.WorkflowStatus = application.WorkflowStatus(req.WorkflowStatus)
	app.CurrentWorkflowStep = req.CurrentStep
	return app, nil
}

func (f *fakeApplicationRepo) Delete(_ context.Context, id uuid.UUID) error {
	app, ok := f.apps[id]
	if !ok {
		return storage.ErrNotFound
	}
	delete(f.pairs, pairKey{app.RequirementID, app.ResourceID})
	delete(f.apps, id)
	return nil
}

func (f *fakeApplicationRepo) WithTx(_ *ent.Tx) storage.ApplicationRepository { return f }

type fakeHistoryRepo struct {
	entries []*ent.ApplicationHistory
	failing bool
}

var _ storage.ApplicationHistoryRepository = (*fakeHistoryRepo)(nil)

func (f *fakeHistoryRepo) Append(_ context.Context, req *dto.AppendHistoryRequest) (*ent.ApplicationHistory, error) {
	if f.failing {
		return nil, storage.ErrConflict
	}
	entry := &ent.ApplicationHistory{
		ID:              uuid.New(),
		ApplicationID:   req.ApplicationID,
		Status:          req.Status,
		PreviousStatus:  req.PreviousStatus,
		Notes:           req.Notes,
		DecisionReason:  req.DecisionReason,
		NotifyCandidate: req.NotifyCandidate,
		NotifyClient:    req.NotifyClient,
		FollowUp:        req.FollowUp,
		OrganizationID:  req.OrganizationID,
		CreatedBy:       req.CreatedBy,
		CreatedAt:       time.Now().Add(time.Duration(len(f.entries)) * time.Millisecond),
	}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeHistoryRepo) ListByApplication(_ context.Context, applicationID uuid.UUID) ([]*ent.ApplicationHistory, error) {
	out := make([]*ent.ApplicationHistory, 0, len(f.entries))
	for _, e := range f.entries {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeRequirementRepo struct {
	requirements map[uuid.UUID]*ent.Requirement
}

var _ storage.RequirementRepository = (*fakeRequirementRepo)(nil)

func (f *fakeRequirementRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Requirement, error) {
	r, ok := f.requirements[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return r, nil
}

func (f *fakeRequirementRepo) ListByOrganization(_ context.Context, organizationID uuid.UUID) ([]*ent.Requirement, error) {
	var out []*ent.Requirement
	for _, r := range f.requirements {
		if r.OrganizationID == organizationID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeResourceRepo struct {
	resources map[uuid.UUID]*ent.Resource
}

var _ storage.ResourceRepository = (*fakeResourceRepo)(nil)

func (f *fakeResourceRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.Resource, error) {
	r, ok := f.resources[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return r, nil
}

type fakeNotificationRepo struct {
	notifications []*ent.Notification
}

var _ storage.NotificationRepository = (*fakeNotificationRepo)(nil)

func (f *fakeNotificationRepo) Create(_ context.Context, req *dto.CreateNotificationRequest) (*ent.Notification, error) {
	n := &ent.Notification{
		ID:                uuid.New(),
		RecipientID:       req.RecipientID,
		Type:              req.Type,
		Title:             req.Title,
		Message:           req.Message,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
		ActionURL:         req.ActionURL,
		CreatedAt:         time.Now(),
	}
	f.notifications = append(f.notifications, n)
	return n, nil
}

func (f *fakeNotificationRepo) ListByRecipient(_ context.Context, recipientID uuid.UUID, limit, offset int) ([]*ent.Notification, error) {
	var out []*ent.Notification
	for _, n := range f.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	if offset > 0 {
		if offset >= len(out) {
			return nil, nil
		}
		out = out[offset:]
	}
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeNotificationRepo) recipients() []uuid.UUID {
	out := make([]uuid.UUID, len(f.notifications))
	for i, n := range f.notifications {
		out[i] = n.RecipientID
	}
	return out
}

type fakeTemplateRepo struct {
	templates map[uuid.UUID]*ent.WorkflowTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[uuid.UUID]*ent.WorkflowTemplate)}
}

var _ storage.WorkflowTemplateRepository = (*fakeTemplateRepo)(nil)

func fakeTypesOverlap(a, b []string) bool {
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

func (f *fakeTemplateRepo) Create(_ context.Context, req *dto.CreateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	steps := make([]models.TemplateStep, len(req.Steps))
	for i, s := range req.Steps {
		steps[i] = models.TemplateStep{
			Order:       s.Order,
			Name:        s.Name,
			Role:        s.Role,
			Action:      s.Action,
			Required:    s.Required,
			AutoAdvance: s.AutoAdvance,
		}
	}
	now := time.Now()
	tmpl := &ent.WorkflowTemplate{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		ApplicationTypes: req.ApplicationTypes,
		Steps:            steps,
		IsActive:         isActive,
		IsDefault:        req.IsDefault,
		CreatedBy:        req.Actor.ID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	f.templates[tmpl.ID] = tmpl
	return tmpl, nil
}

func (f *fakeTemplateRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.WorkflowTemplate, error) {
	tmpl, ok := f.templates[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return tmpl, nil
}

func (f *fakeTemplateRepo) List(_ context.Context, req *dto.ListWorkflowTemplatesRequest) ([]*ent.WorkflowTemplate, error) {
	out := make([]*ent.WorkflowTemplate, 0, len(f.templates))
	for _, t := range f.templates {
		if req.ActiveOnly && !t.IsActive {
			continue
		}
		if req.ApplicationType != "" && !fakeTypesOverlap(t.ApplicationTypes, []string{req.ApplicationType}) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTemplateRepo) FindDefaultFor(_ context.Context, applicationType string) (*ent.WorkflowTemplate, error) {
	for _, t := range f.templates {
		if t.IsActive && t.IsDefault && fakeTypesOverlap(t.ApplicationTypes, []string{applicationType}) {
			return t, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeTemplateRepo) Update(_ context.Context, req *dto.UpdateWorkflowTemplateRequest) (*ent.WorkflowTemplate, error) {
	tmpl, ok := f.templates[req.TemplateID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if req.Name != nil {
		tmpl.Name = *req.Name
	}
	if req.Description != nil {
		tmpl.Description = *req.Description
	}
	if req.ApplicationTypes != nil {
		tmpl.ApplicationTypes = req.ApplicationTypes
	}
	if req.IsActive != nil {
		tmpl.IsActive = *req.IsActive
	}
	if req.IsDefault != nil {
		tmpl.IsDefault = *req.IsDefault
	}
	tmpl.UpdatedAt = time.Now()
	return tmpl, nil
}

func (f *fakeTemplateRepo) ClearDefaultsForTypes(_ context.Context, types []string, excludeID uuid.UUID) error {
	for _, t := range f.templates {
		if t.ID == excludeID || !t.IsDefault {
			continue
		}
		if fakeTypesOverlap(t.ApplicationTypes, types) {
			t.IsDefault = false
		}
	}
	return nil
}

func (f *fakeTemplateRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.templates[id]; !ok {
		return storage.ErrNotFound
	}
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) WithTx(_ *ent.Tx) storage.WorkflowTemplateRepository { return f }

type fakeInstanceRepo struct {
	instances map[uuid.UUID]*ent.WorkflowInstance
}

func newFakeInstanceRepo() *fakeInstanceRepo {
	return &fakeInstanceRepo{instances: make(map[uuid.UUID]*ent.WorkflowInstance)}
}

var _ storage.WorkflowInstanceRepository = (*fakeInstanceRepo)(nil)

func (f *fakeInstanceRepo) Create(_ context.Context, req *dto.CreateWorkflowInstanceRequest) (*ent.WorkflowInstance, error) {
	now := time.Now()
	instance := &ent.WorkflowInstance{
		ID:             uuid.New(),
		ApplicationID:  req.ApplicationID,
		TemplateID:     req.TemplateID,
		Steps:          req.Steps,
		CurrentStep:    1,
		Status:         workflowinstance.Status(status.InstanceActive),
		OrganizationID: req.OrganizationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	f.instances[instance.ID] = instance
	return instance, nil
}

func (f *fakeInstanceRepo) GetByID(_ context.Context, id uuid.UUID) (*ent.WorkflowInstance, error) {
	instance, ok := f.instances[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return instance, nil
}

func (f *fakeInstanceRepo) GetByApplication(_ context.Context, applicationID uuid.UUID) (*ent.WorkflowInstance, error) {
	for _, instance := range f.instances {
		if instance.ApplicationID == applicationID {
			return instance, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (f *fakeInstanceRepo) Update(_ context.Context, req *dto.UpdateWorkflowInstanceRequest) (*ent.WorkflowInstance, error) {
	instance, ok := f.instances[req.InstanceID]
	if !ok {
		return nil, storage.ErrNotFound
	}
	instance.Steps = req.Steps
	instance.CurrentStep = req.CurrentStep
	instance.Status = workflowinstance.Status(req.Status)
	if req.CompletedAt != nil {
		instance.CompletedAt = req.CompletedAt
	}
	instance.UpdatedAt = time.Now()
	return instance, nil
}

func (f *fakeInstanceRepo) CountActiveByTemplate(_ context.Context, templateID uuid.UUID) (int, error) {
	count := 0
	for _, instance := range f.instances {
		if instance.TemplateID == templateID && instance.Status == workflowinstance.Status(status.InstanceActive) {
			count++
		}
	}
	return count, nil
}

// fakeWorkflowEngine records advancement calls so lifecycle tests can assert
// the requested action label.
type fakeWorkflowEngine struct {
	instantiated   []uuid.UUID
	advanced       []string
	instantiateErr error
}

var _ WorkflowEngine = (*fakeWorkflowEngine)(nil)

func (f *fakeWorkflowEngine) Instantiate(_ context.Context, app *ent.Application) (*ent.WorkflowInstance, error) {
	if f.instantiateErr != nil {
		return nil, f.instantiateErr
	}
	f.instantiated = append(f.instantiated, app.ID)
	return nil, nil
}

func (f *fakeWorkflowEngine) Advance(_ context.Context, _ *ent.Application, _ models.Principal, action, _ string) error {
	f.advanced = append(f.advanced, action)
	return nil
}

func (f *fakeWorkflowEngine) GetInstance(_ context.Context, _ *dto.GetWorkflowInstanceByIDRequest) (*ent.WorkflowInstance, error) {
	return nil, ErrNotFound
}
