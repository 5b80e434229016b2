package services

import (
	"context"
	"testing"

	"staffhub/ent"
	"staffhub/internal/models"
	"staffhub/internal/status"
	"staffhub/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycleFixture struct {
	service       ApplicationService
	appRepo       *fakeApplicationRepo
	historyRepo   *fakeHistoryRepo
	notifications *fakeNotificationRepo
	engine        *fakeWorkflowEngine

	requirement *ent.Requirement
	resource    *ent.Resource

	admin  models.Principal
	client models.Principal
	vendor models.Principal
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()

	clientOrg := uuid.New()
	vendorOrg := uuid.New()

	admin := models.Principal{ID: uuid.New(), UserType: "admin"}
	client := models.Principal{ID: uuid.New(), UserType: "client", OrganizationID: &clientOrg}
	vendor := models.Principal{ID: uuid.New(), UserType: "vendor", OrganizationID: &vendorOrg}

	requirement := &ent.Requirement{
		ID:             uuid.New(),
		Title:          "Senior Go Engineer",
		OrganizationID: clientOrg,
		CreatedBy:      client.ID,
		IsActive:       true,
	}
	resource := &ent.Resource{
		ID:             uuid.New(),
		Name:           "Jane Doe",
		OrganizationID: vendorOrg,
		CreatedBy:      vendor.ID,
		IsActive:       true,
	}

	appRepo := newFakeApplicationRepo()
	historyRepo := &fakeHistoryRepo{}
	notifications := &fakeNotificationRepo{}
	engine := &fakeWorkflowEngine{}

	service := NewApplicationServiceWithDeps(
		appRepo,
		historyRepo,
		&fakeRequirementRepo{requirements: map[uuid.UUID]*ent.Requirement{requirement.ID: requirement}},
		&fakeResourceRepo{resources: map[uuid.UUID]*ent.Resource{resource.ID: resource}},
		NewNotificationServiceWithDeps(notifications),
		engine,
	)

	return &lifecycleFixture{
		service:       service,
		appRepo:       appRepo,
		historyRepo:   historyRepo,
		notifications: notifications,
		engine:        engine,
		requirement:   requirement,
		resource:      resource,
		admin:         admin,
		client:        client,
		vendor:        vendor,
	}
}

func (f *lifecycleFixture) submitAsVendor(t *testing.T) *ent.Application {
	t.Helper()
	app, err := f.service.Submit(context.Background(), &dto.SubmitApplicationRequest{
		RequirementID: f.requirement.ID,
		ResourceID:    f.resource.ID,
		Actor:         f.vendor,
	})
	require.NoError(t, err)
	return app
}

func TestSubmitRequiresOrganization(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.service.Submit(context.Background(), &dto.SubmitApplicationRequest{
		RequirementID: f.requirement.ID,
		ResourceID:    f.resource.ID,
		Actor:         f.admin, // no organization
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitUnknownRequirement(t *testing.T) {
	f := newLifecycleFixture(t)

	_, err := f.service.Submit(context.Background(), &dto.SubmitApplicationRequest{
		RequirementID: uuid.New(),
		ResourceID:    f.resource.ID,
		Actor:         f.vendor,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitCreatesApplicationWithSideEffects(t *testing.T) {
	f := newLifecycleFixture(t)

	app := f.submitAsVendor(t)

	assert.Equal(t, string(status.Applied), string(app.Status))
	assert.Equal(t, string(models.ApplicationTypeVendorApplied), string(app.ApplicationType))
	assert.Equal(t, *f.vendor.OrganizationID, app.OrganizationID)

	// History ledger opened with the submission record.
	entries, err := f.historyRepo.ListByApplication(context.Background(), app.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, string(status.Applied), entries[0].Status)

	// Requirement owner differs from the actor, so a notification goes out.
	assert.Contains(t, f.notifications.recipients(), f.client.ID)

	// Workflow instantiation was attempted.
	assert.Equal(t, []uuid.UUID{app.ID}, f.engine.instantiated)
}

func TestSubmitDuplicatePairConflicts(t *testing.T) {
	f := newLifecycleFixture(t)
	f.submitAsVendor(t)

	_, err := f.service.Submit(context.Background(), &dto.SubmitApplicationRequest{
		RequirementID: f.requirement.ID,
		ResourceID:    f.resource.ID,
		Actor:         f.vendor,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestSubmitSucceedsWhenWorkflowInstantiationFails(t *testing.T) {
	f := newLifecycleFixture(t)
	f.engine.instantiateErr = ErrConflict

	app, err := f.service.Submit(context.Background(), &dto.SubmitApplicationRequest{
		RequirementID: f.requirement.ID,
		ResourceID:    f.resource.ID,
		Actor:         f.vendor,
	})
	require.NoError(t, err)
	assert.Equal(t, string(status.Applied), string(app.Status))
}

func TestChangeStatusRejectsUnknownStatus(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        "promoted",
		Actor:         f.admin,
	})
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "valid statuses are")
}

func TestChangeStatusSameTargetIsNoOp(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)
	before := len(f.historyRepo.entries)

	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Applied),
		Actor:         f.admin,
	})
	require.NoError(t, err)
	assert.Equal(t, string(status.Applied), result.NewStatus)
	assert.Equal(t, string(status.Applied), result.PreviousStatus)
	assert.Len(t, f.historyRepo.entries, before, "no-op must not write history")
	assert.Empty(t, f.engine.advanced, "no-op must not advance the workflow")
}

func TestChangeStatusTerminalStateRejected(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Rejected),
		Actor:         f.admin,
	})
	require.NoError(t, err)

	_, err = f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Interview),
		Actor:         f.admin,
	})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestChangeStatusAdminAcceptOnFreshApplicationStoresShortlisted(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Accepted),
		Actor:         f.admin,
	})
	require.NoError(t, err)
	assert.Equal(t, string(status.Shortlisted), result.NewStatus)
	assert.Equal(t, status.CategoryActive, result.StatusCategory)

	// The workflow advances on the requested label, not the stored status.
	require.Len(t, f.engine.advanced, 1)
	assert.Equal(t, string(status.Accepted), f.engine.advanced[0])

	entries, err := f.historyRepo.ListByApplication(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, string(status.Shortlisted), entries[0].Status)
	assert.Equal(t, string(status.Applied), entries[0].PreviousStatus)
}

func TestChangeStatusClientCannotAdvanceFreshApplication(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Shortlisted),
		Actor:         f.client,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	// Rejecting a fresh application is the one move a client owner has.
	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Rejected),
		Actor:         f.client,
	})
	require.NoError(t, err)
	assert.Equal(t, status.CategoryInactive, result.StatusCategory)
}

func TestChangeStatusClientOfferCreatedOnlyWithdraws(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	// Admin walks the application to offer_created.
	for _, target := range []status.Status{status.Shortlisted, status.OfferCreated} {
		_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
			ApplicationID: app.ID,
			Status:        string(target),
			Actor:         f.admin,
		})
		require.NoError(t, err)
	}

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.OfferAccepted),
		Actor:         f.client,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Withdrawn),
		Actor:         f.client,
	})
	require.NoError(t, err)
	assert.Equal(t, string(status.Withdrawn), result.NewStatus)
}

func TestChangeStatusVendorMayOnlyWithdraw(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Accepted),
		Actor:         f.vendor,
	})
	assert.ErrorIs(t, err, ErrForbidden)

	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Withdrawn),
		Actor:         f.vendor,
	})
	require.NoError(t, err)
	assert.Equal(t, string(status.Withdrawn), result.NewStatus)
}

func TestChangeStatusUnrelatedVendorDenied(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	otherOrg := uuid.New()
	stranger := models.Principal{ID: uuid.New(), UserType: "vendor", OrganizationID: &otherOrg}

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Withdrawn),
		Actor:         stranger,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeStatusSameTargetDeniedForUnrelatedActor(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	otherOrg := uuid.New()
	stranger := models.Principal{ID: uuid.New(), UserType: "vendor", OrganizationID: &otherOrg}

	// Guessing the current status must not turn the endpoint into a read.
	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Applied),
		Actor:         stranger,
	})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, result)
}

func TestChangeStatusNotifiesCreatorAndFlaggedParties(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)
	f.notifications.notifications = nil

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID:   app.ID,
		Status:          string(status.Shortlisted),
		NotifyCandidate: true,
		NotifyClient:    true,
		Actor:           f.admin,
	})
	require.NoError(t, err)

	recipients := f.notifications.recipients()
	assert.Contains(t, recipients, f.vendor.ID, "creator is always notified")
	assert.Contains(t, recipients, f.client.ID, "client notified on request")
}

func TestChangeStatusSurvivesHistoryFailure(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)
	f.historyRepo.failing = true

	result, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Shortlisted),
		Actor:         f.admin,
	})
	require.NoError(t, err, "a failed side effect must not abort the committed transition")
	assert.Equal(t, string(status.Shortlisted), result.NewStatus)
}

func TestUpdateDetailsCreatorOrAdminOnly(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	notes := "updated pitch"
	_, err := f.service.UpdateDetails(context.Background(), &dto.UpdateApplicationRequest{
		ApplicationID: app.ID,
		Notes:         &notes,
		Actor:         f.client, // neither creator nor admin
	})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := f.service.UpdateDetails(context.Background(), &dto.UpdateApplicationRequest{
		ApplicationID: app.ID,
		Notes:         &notes,
		Actor:         f.vendor,
	})
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)

	entries, err := f.historyRepo.ListByApplication(context.Background(), app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Application details updated", entries[0].Notes)
}

func TestDeleteWritesTerminalRecordBeforeRemoval(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
		ApplicationID: app.ID,
		Status:        string(status.Shortlisted),
		Actor:         f.admin,
	})
	require.NoError(t, err)

	err = f.service.Delete(context.Background(), &dto.DeleteApplicationRequest{
		ApplicationID: app.ID,
		Actor:         f.vendor,
	})
	require.NoError(t, err)

	// The application row is gone, the ledger is not.
	_, err = f.service.GetByID(context.Background(), &dto.GetApplicationByIDRequest{ApplicationID: app.ID, Actor: f.admin})
	assert.ErrorIs(t, err, ErrNotFound)

	entries, err := f.service.History(context.Background(), &dto.ListApplicationHistoryRequest{ApplicationID: app.ID, Actor: f.admin})
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, status.Deleted, entries[0].Status)
	assert.Equal(t, string(status.Shortlisted), entries[0].PreviousStatus)
}

func TestDeleteRequiresCreatorOrAdmin(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	err := f.service.Delete(context.Background(), &dto.DeleteApplicationRequest{
		ApplicationID: app.ID,
		Actor:         f.client,
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestListScopesByRoleTier(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	// The client owner's org holds the requirement, not the application row,
	// yet the vendor-submitted bid must be visible to them.
	clientView, err := f.service.List(context.Background(), &dto.ListApplicationsRequest{Actor: f.client})
	require.NoError(t, err)
	require.Len(t, clientView, 1)
	assert.Equal(t, app.ID, clientView[0].ID)

	// The vendor sees their own organization's submissions.
	vendorView, err := f.service.List(context.Background(), &dto.ListApplicationsRequest{Actor: f.vendor})
	require.NoError(t, err)
	require.Len(t, vendorView, 1)
	assert.Equal(t, app.ID, vendorView[0].ID)

	// Admins list everything.
	adminView, err := f.service.List(context.Background(), &dto.ListApplicationsRequest{Actor: f.admin})
	require.NoError(t, err)
	assert.Len(t, adminView, 1)

	// Unrelated organizations see nothing, on either side.
	otherOrg := uuid.New()
	otherVendor := models.Principal{ID: uuid.New(), UserType: "vendor", OrganizationID: &otherOrg}
	otherClient := models.Principal{ID: uuid.New(), UserType: "client", OrganizationID: &otherOrg}

	view, err := f.service.List(context.Background(), &dto.ListApplicationsRequest{Actor: otherVendor})
	require.NoError(t, err)
	assert.Empty(t, view)

	view, err = f.service.List(context.Background(), &dto.ListApplicationsRequest{Actor: otherClient})
	require.NoError(t, err)
	assert.Empty(t, view)
}

func TestHistoryIsNewestFirst(t *testing.T) {
	f := newLifecycleFixture(t)
	app := f.submitAsVendor(t)

	for _, target := range []status.Status{status.Shortlisted, status.Interview} {
		_, err := f.service.ChangeStatus(context.Background(), &dto.ChangeStatusRequest{
			ApplicationID: app.ID,
			Status:        string(target),
			Actor:         f.admin,
		})
		require.NoError(t, err)
	}

	entries, err := f.service.History(context.Background(), &dto.ListApplicationHistoryRequest{ApplicationID: app.ID, Actor: f.admin})
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, string(status.Interview), entries[0].Status)
	assert.Equal(t, string(status.Shortlisted), entries[1].Status)
	assert.Equal(t, string(status.Applied), entries[2].Status)
}
