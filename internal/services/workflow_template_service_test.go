package services

import (
	"context"
	"testing"

	"staffhub/ent/workflowinstance"
	"staffhub/internal/models"
	"staffhub/internal/status"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateFixture(t *testing.T) (WorkflowTemplateService, *fakeTemplateRepo, *fakeInstanceRepo, models.Principal) {
	t.Helper()
	templates := newFakeTemplateRepo()
	instances := newFakeInstanceRepo()
	service := NewWorkflowTemplateServiceWithDeps(templates, instances, nil, nil)
	admin := models.Principal{ID: uuid.New(), UserType: "admin"}
	return service, templates, instances, admin
}

func singleStep() []dto.TemplateStepRequest {
	return []dto.TemplateStepRequest{
		{Order: 1, Name: "Screen", Role: "admin", Action: "screen", Required: true},
	}
}

func TestCreateDefaultDemotesCompetingDefault(t *testing.T) {
	service, _, _, admin := newTemplateFixture(t)

	first, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Vendor default",
		ApplicationTypes: []string{string(models.ApplicationTypeVendorApplied)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Covers everything",
		ApplicationTypes: []string{string(models.ApplicationTypeBoth)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	// The overlapping earlier default lost its flag.
	reloaded, err := service.GetByID(context.Background(), &dto.GetWorkflowTemplateByIDRequest{TemplateID: first.ID})
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}

func TestCreateDefaultKeepsNonOverlappingDefault(t *testing.T) {
	service, _, _, admin := newTemplateFixture(t)

	vendorDefault, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Vendor default",
		ApplicationTypes: []string{string(models.ApplicationTypeVendorApplied)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Client default",
		ApplicationTypes: []string{string(models.ApplicationTypeClientApplied)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)

	reloaded, err := service.GetByID(context.Background(), &dto.GetWorkflowTemplateByIDRequest{TemplateID: vendorDefault.ID})
	require.NoError(t, err)
	assert.True(t, reloaded.IsDefault, "defaults for disjoint types coexist")
}

func TestFindDefaultForReturnsNilWhenAbsent(t *testing.T) {
	service, _, _, _ := newTemplateFixture(t)

	tmpl, err := service.FindDefaultFor(context.Background(), string(models.ApplicationTypeVendorApplied))
	require.NoError(t, err)
	assert.Nil(t, tmpl, "no default workflow is a valid state, not an error")
}

func TestFindDefaultForMatchesBothSentinel(t *testing.T) {
	service, _, _, admin := newTemplateFixture(t)

	created, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Universal",
		ApplicationTypes: []string{string(models.ApplicationTypeBoth)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)

	for _, at := range []models.ApplicationType{models.ApplicationTypeClientApplied, models.ApplicationTypeVendorApplied} {
		tmpl, err := service.FindDefaultFor(context.Background(), string(at))
		require.NoError(t, err)
		require.NotNil(t, tmpl)
		assert.Equal(t, created.ID, tmpl.ID)
	}
}

func TestUpdateTypesOnExistingDefaultDemotesNewOverlaps(t *testing.T) {
	service, _, _, admin := newTemplateFixture(t)

	clientDefault, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Client default",
		ApplicationTypes: []string{string(models.ApplicationTypeClientApplied)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)

	vendorDefault, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Vendor default",
		ApplicationTypes: []string{string(models.ApplicationTypeVendorApplied)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)

	// Widening the vendor default to cover both types, without resending
	// is_default, must still demote the client default it now overlaps.
	widened, err := service.Update(context.Background(), &dto.UpdateWorkflowTemplateRequest{
		TemplateID:       vendorDefault.ID,
		ApplicationTypes: []string{string(models.ApplicationTypeBoth)},
		Actor:            admin,
	})
	require.NoError(t, err)
	assert.True(t, widened.IsDefault)

	reloaded, err := service.GetByID(context.Background(), &dto.GetWorkflowTemplateByIDRequest{TemplateID: clientDefault.ID})
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault, "one default per application type")

	resolved, err := service.FindDefaultFor(context.Background(), string(models.ApplicationTypeClientApplied))
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, vendorDefault.ID, resolved.ID)
}

func TestDeleteTemplateGuardedByActiveInstances(t *testing.T) {
	service, _, instances, admin := newTemplateFixture(t)

	tmpl, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Guarded",
		ApplicationTypes: []string{string(models.ApplicationTypeVendorApplied)},
		Steps:            singleStep(),
		Actor:            admin,
	})
	require.NoError(t, err)

	_, err = instances.Create(context.Background(), &dto.CreateWorkflowInstanceRequest{
		ApplicationID:  uuid.New(),
		TemplateID:     tmpl.ID,
		Steps:          models.SnapshotSteps(tmpl.Steps),
		OrganizationID: uuid.New(),
	})
	require.NoError(t, err)

	err = service.Delete(context.Background(), &dto.DeleteWorkflowTemplateRequest{TemplateID: tmpl.ID, Actor: admin})
	assert.ErrorIs(t, err, ErrConflict)

	// Once the instance finishes, deletion goes through.
	for _, inst := range instances.instances {
		inst.Status = workflowinstance.Status(status.InstanceCompleted)
	}
	err = service.Delete(context.Background(), &dto.DeleteWorkflowTemplateRequest{TemplateID: tmpl.ID, Actor: admin})
	require.NoError(t, err)

	_, err = service.GetByID(context.Background(), &dto.GetWorkflowTemplateByIDRequest{TemplateID: tmpl.ID})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdatePromotionToDefaultDemotesOthers(t *testing.T) {
	service, _, _, admin := newTemplateFixture(t)

	incumbent, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Incumbent",
		ApplicationTypes: []string{string(models.ApplicationTypeClientApplied)},
		Steps:            singleStep(),
		IsDefault:        true,
		Actor:            admin,
	})
	require.NoError(t, err)

	challenger, err := service.Create(context.Background(), &dto.CreateWorkflowTemplateRequest{
		Name:             "Challenger",
		ApplicationTypes: []string{string(models.ApplicationTypeClientApplied)},
		Steps:            singleStep(),
		Actor:            admin,
	})
	require.NoError(t, err)

	promote := true
	_, err = service.Update(context.Background(), &dto.UpdateWorkflowTemplateRequest{
		TemplateID: challenger.ID,
		IsDefault:  &promote,
		Actor:      admin,
	})
	require.NoError(t, err)

	reloaded, err := service.GetByID(context.Background(), &dto.GetWorkflowTemplateByIDRequest{TemplateID: incumbent.ID})
	require.NoError(t, err)
	assert.False(t, reloaded.IsDefault)
}
