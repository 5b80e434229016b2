package services

import (
	"context"
	"testing"

	"staffhub/ent"
	"staffhub/ent/application"
	"staffhub/ent/workflowinstance"
	"staffhub/internal/models"
	"staffhub/internal/status"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type engineFixture struct {
	engine       WorkflowEngine
	templates    *fakeTemplateRepo
	instanceRepo *fakeInstanceRepo
	appRepo      *fakeApplicationRepo

	admin  models.Principal
	vendor models.Principal
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	vendorOrg := uuid.New()
	templates := newFakeTemplateRepo()
	instanceRepo := newFakeInstanceRepo()
	appRepo := newFakeApplicationRepo()

	templateService := NewWorkflowTemplateServiceWithDeps(templates, instanceRepo, nil, nil)
	engine := NewWorkflowEngineWithDeps(instanceRepo, appRepo, templateService)

	return &engineFixture{
		engine:       engine,
		templates:    templates,
		instanceRepo: instanceRepo,
		appRepo:      appRepo,
		admin:        models.Principal{ID: uuid.New(), UserType: "admin"},
		vendor:       models.Principal{ID: uuid.New(), UserType: "vendor", OrganizationID: &vendorOrg},
	}
}

func (f *engineFixture) createApplication(t *testing.T) *ent.Application {
	t.Helper()
	app, err := f.appRepo.Create(context.Background(), &dto.CreateApplicationRequest{
		RequirementID:   uuid.New(),
		ResourceID:      uuid.New(),
		ApplicationType: models.ApplicationTypeVendorApplied,
		OrganizationID:  *f.vendor.OrganizationID,
		CreatedBy:       f.vendor.ID,
	})
	require.NoError(t, err)
	return app
}

func (f *engineFixture) createDefaultTemplate(t *testing.T, steps []dto.TemplateStepRequest) *ent.WorkflowTemplate {
	t.Helper()
	tmpl, err := f.templates.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Vendor screening",
		ApplicationTypes: []string{string(models.ApplicationTypeBoth)},
		Steps:            steps,
		IsDefault:        true,
		Actor:            f.admin,
	})
	require.NoError(t, err)
	return tmpl
}

func twoStepTemplate() []dto.TemplateStepRequest {
	return []dto.TemplateStepRequest{
		{Order: 1, Name: "Screen", Role: "admin", Action: "screen", Required: true},
		{Order: 2, Name: "Approve", Role: "admin", Action: "approve", Required: true},
	}
}

func TestInstantiateWithoutDefaultTemplateIsNoop(t *testing.T) {
	f := newEngineFixture(t)
	app := f.createApplication(t)

	instance, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)
	assert.Nil(t, instance)
	assert.Nil(t, app.WorkflowInstanceID)
}

func TestInstantiateSnapshotsStepsAndLinksApplication(t *testing.T) {
	f := newEngineFixture(t)
	tmpl := f.createDefaultTemplate(t, twoStepTemplate())
	app := f.createApplication(t)

	instance, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)
	require.NotNil(t, instance)

	assert.Equal(t, tmpl.ID, instance.TemplateID)
	assert.Equal(t, 1, instance.CurrentStep)
	require.Len(t, instance.Steps, 2)
	for i, step := range instance.Steps {
		assert.Equal(t, tmpl.Steps[i].Order, step.Order)
		assert.Equal(t, status.StepPending, step.Status)
		assert.NotEqual(t, uuid.Nil, step.StepID)
	}

	linked, err := f.appRepo.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	require.NotNil(t, linked.WorkflowInstanceID)
	assert.Equal(t, instance.ID, *linked.WorkflowInstanceID)
	assert.Equal(t, application.WorkflowStatus(status.WorkflowInProgress), linked.WorkflowStatus)
	assert.Equal(t, 1, linked.CurrentWorkflowStep)
}

func TestAdvanceCompletesStepAndMovesPointer(t *testing.T) {
	f := newEngineFixture(t)
	f.createDefaultTemplate(t, twoStepTemplate())
	app := f.createApplication(t)
	_, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)

	err = f.engine.Advance(context.Background(), app, f.admin, "screen", "looks good")
	require.NoError(t, err)

	instance, err := f.instanceRepo.GetByID(context.Background(), *app.WorkflowInstanceID)
	require.NoError(t, err)
	assert.Equal(t, 2, instance.CurrentStep)
	assert.Equal(t, workflowinstance.Status(status.InstanceActive), instance.Status)

	first := instance.Steps[0]
	assert.Equal(t, status.StepCompleted, first.Status)
	require.NotNil(t, first.PerformedBy)
	assert.Equal(t, f.admin.ID, *first.PerformedBy)
	assert.Equal(t, "screen", first.ActionTaken)
	assert.NotNil(t, first.CompletedAt)

	assert.Equal(t, status.StepPending, instance.Steps[1].Status)
}

func TestAdvancePastLastStepCompletesInstance(t *testing.T) {
	f := newEngineFixture(t)
	f.createDefaultTemplate(t, twoStepTemplate())
	app := f.createApplication(t)
	_, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)

	require.NoError(t, f.engine.Advance(context.Background(), app, f.admin, "screen", ""))
	require.NoError(t, f.engine.Advance(context.Background(), app, f.admin, "approve", ""))

	instance, err := f.instanceRepo.GetByID(context.Background(), *app.WorkflowInstanceID)
	require.NoError(t, err)
	assert.Equal(t, workflowinstance.Status(status.InstanceCompleted), instance.Status)
	assert.NotNil(t, instance.CompletedAt)

	linked, err := f.appRepo.GetByID(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, application.WorkflowStatus(status.WorkflowCompleted), linked.WorkflowStatus)
}

func TestAdvanceOnCompletedInstanceIsNoop(t *testing.T) {
	f := newEngineFixture(t)
	f.createDefaultTemplate(t, []dto.TemplateStepRequest{
		{Order: 1, Name: "Screen", Role: "admin", Action: "screen", Required: true},
	})
	app := f.createApplication(t)
	_, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)

	require.NoError(t, f.engine.Advance(context.Background(), app, f.admin, "screen", ""))

	// Already completed; a further advance changes nothing and does not fail.
	require.NoError(t, f.engine.Advance(context.Background(), app, f.admin, "screen", ""))

	instance, err := f.instanceRepo.GetByID(context.Background(), *app.WorkflowInstanceID)
	require.NoError(t, err)
	assert.Equal(t, workflowinstance.Status(status.InstanceCompleted), instance.Status)
}

func TestAdvanceSoftFailsOnRoleDenial(t *testing.T) {
	f := newEngineFixture(t)
	f.createDefaultTemplate(t, twoStepTemplate())
	app := f.createApplication(t)
	_, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)

	// Vendor cannot act on an admin step: the call succeeds but nothing moves.
	require.NoError(t, f.engine.Advance(context.Background(), app, f.vendor, "screen", ""))

	instance, err := f.instanceRepo.GetByID(context.Background(), *app.WorkflowInstanceID)
	require.NoError(t, err)
	assert.Equal(t, 1, instance.CurrentStep)
	assert.Equal(t, status.StepPending, instance.Steps[0].Status)
}

func TestAdvanceSoftFailsOnMissingStep(t *testing.T) {
	f := newEngineFixture(t)
	// Steps authored with a gap: nothing sits at order 1.
	f.createDefaultTemplate(t, []dto.TemplateStepRequest{
		{Order: 3, Name: "Approve", Role: "admin", Action: "approve", Required: true},
	})
	app := f.createApplication(t)
	_, err := f.engine.Instantiate(context.Background(), app)
	require.NoError(t, err)

	require.NoError(t, f.engine.Advance(context.Background(), app, f.admin, "approve", ""))

	instance, err := f.instanceRepo.GetByID(context.Background(), *app.WorkflowInstanceID)
	require.NoError(t, err)
	assert.Equal(t, 1, instance.CurrentStep, "missing step must not advance the pointer")
}

func TestAdvanceWithoutInstanceIsNoop(t *testing.T) {
	f := newEngineFixture(t)
	app := f.createApplication(t)

	require.NoError(t, f.engine.Advance(context.Background(), app, f.admin, "screen", ""))
}
