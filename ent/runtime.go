// Code generated by ent, DO NOT EDIT.

package ent

import (
	"staffhub/ent/application"
	"staffhub/ent/applicationhistory"
	"staffhub/ent/notification"
	"staffhub/ent/requirement"
	"staffhub/ent/resource"
	"staffhub/ent/schema"
	"staffhub/ent/user"
	"staffhub/ent/workflowinstance"
	"staffhub/ent/workflowtemplate"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	applicationFields := schema.Application{}.Fields()
	_ = applicationFields
	// applicationDescCurrentWorkflowStep is the schema descriptor for current_workflow_step field.
	applicationDescCurrentWorkflowStep := applicationFields[11].Descriptor()
	// application.DefaultCurrentWorkflowStep holds the default value on creation for the current_workflow_step field.
	application.DefaultCurrentWorkflowStep = applicationDescCurrentWorkflowStep.Default.(int)
	// application.CurrentWorkflowStepValidator is a validator for the "current_workflow_step" field. It is called by the builders before save.
	application.CurrentWorkflowStepValidator = applicationDescCurrentWorkflowStep.Validators[0].(func(int) error)
	// applicationDescCreatedAt is the schema descriptor for created_at field.
	applicationDescCreatedAt := applicationFields[14].Descriptor()
	// application.DefaultCreatedAt holds the default value on creation for the created_at field.
	application.DefaultCreatedAt = applicationDescCreatedAt.Default.(func() time.Time)
	// applicationDescUpdatedAt is the schema descriptor for updated_at field.
	applicationDescUpdatedAt := applicationFields[15].Descriptor()
	// application.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	application.DefaultUpdatedAt = applicationDescUpdatedAt.Default.(func() time.Time)
	// application.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	application.UpdateDefaultUpdatedAt = applicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// applicationDescID is the schema descriptor for id field.
	applicationDescID := applicationFields[0].Descriptor()
	// application.DefaultID holds the default value on creation for the id field.
	application.DefaultID = applicationDescID.Default.(func() uuid.UUID)
	applicationhistoryFields := schema.ApplicationHistory{}.Fields()
	_ = applicationhistoryFields
	// applicationhistoryDescStatus is the schema descriptor for status field.
	applicationhistoryDescStatus := applicationhistoryFields[2].Descriptor()
	// applicationhistory.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	applicationhistory.StatusValidator = applicationhistoryDescStatus.Validators[0].(func(string) error)
	// applicationhistoryDescNotifyCandidate is the schema descriptor for notify_candidate field.
	applicationhistoryDescNotifyCandidate := applicationhistoryFields[6].Descriptor()
	// applicationhistory.DefaultNotifyCandidate holds the default value on creation for the notify_candidate field.
	applicationhistory.DefaultNotifyCandidate = applicationhistoryDescNotifyCandidate.Default.(bool)
	// applicationhistoryDescNotifyClient is the schema descriptor for notify_client field.
	applicationhistoryDescNotifyClient := applicationhistoryFields[7].Descriptor()
	// applicationhistory.DefaultNotifyClient holds the default value on creation for the notify_client field.
	applicationhistory.DefaultNotifyClient = applicationhistoryDescNotifyClient.Default.(bool)
	// applicationhistoryDescCreatedAt is the schema descriptor for created_at field.
	applicationhistoryDescCreatedAt := applicationhistoryFields[11].Descriptor()
	// applicationhistory.DefaultCreatedAt holds the default value on creation for the created_at field.
	applicationhistory.DefaultCreatedAt = applicationhistoryDescCreatedAt.Default.(func() time.Time)
	// applicationhistoryDescID is the schema descriptor for id field.
	applicationhistoryDescID := applicationhistoryFields[0].Descriptor()
	// applicationhistory.DefaultID holds the default value on creation for the id field.
	applicationhistory.DefaultID = applicationhistoryDescID.Default.(func() uuid.UUID)
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[2].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[3].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescRead is the schema descriptor for read field.
	notificationDescRead := notificationFields[8].Descriptor()
	// notification.DefaultRead holds the default value on creation for the read field.
	notification.DefaultRead = notificationDescRead.Default.(bool)
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationFields[9].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescID is the schema descriptor for id field.
	notificationDescID := notificationFields[0].Descriptor()
	// notification.DefaultID holds the default value on creation for the id field.
	notification.DefaultID = notificationDescID.Default.(func() uuid.UUID)
	requirementFields := schema.Requirement{}.Fields()
	_ = requirementFields
	// requirementDescTitle is the schema descriptor for title field.
	requirementDescTitle := requirementFields[1].Descriptor()
	// requirement.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	requirement.TitleValidator = requirementDescTitle.Validators[0].(func(string) error)
	// requirementDescIsActive is the schema descriptor for is_active field.
	requirementDescIsActive := requirementFields[5].Descriptor()
	// requirement.DefaultIsActive holds the default value on creation for the is_active field.
	requirement.DefaultIsActive = requirementDescIsActive.Default.(bool)
	// requirementDescCreatedAt is the schema descriptor for created_at field.
	requirementDescCreatedAt := requirementFields[6].Descriptor()
	// requirement.DefaultCreatedAt holds the default value on creation for the created_at field.
	requirement.DefaultCreatedAt = requirementDescCreatedAt.Default.(func() time.Time)
	// requirementDescUpdatedAt is the schema descriptor for updated_at field.
	requirementDescUpdatedAt := requirementFields[7].Descriptor()
	// requirement.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	requirement.DefaultUpdatedAt = requirementDescUpdatedAt.Default.(func() time.Time)
	// requirement.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	requirement.UpdateDefaultUpdatedAt = requirementDescUpdatedAt.UpdateDefault.(func() time.Time)
	// requirementDescID is the schema descriptor for id field.
	requirementDescID := requirementFields[0].Descriptor()
	// requirement.DefaultID holds the default value on creation for the id field.
	requirement.DefaultID = requirementDescID.Default.(func() uuid.UUID)
	resourceFields := schema.Resource{}.Fields()
	_ = resourceFields
	// resourceDescName is the schema descriptor for name field.
	resourceDescName := resourceFields[1].Descriptor()
	// resource.NameValidator is a validator for the "name" field. It is called by the builders before save.
	resource.NameValidator = resourceDescName.Validators[0].(func(string) error)
	// resourceDescIsActive is the schema descriptor for is_active field.
	resourceDescIsActive := resourceFields[5].Descriptor()
	// resource.DefaultIsActive holds the default value on creation for the is_active field.
	resource.DefaultIsActive = resourceDescIsActive.Default.(bool)
	// resourceDescCreatedAt is the schema descriptor for created_at field.
	resourceDescCreatedAt := resourceFields[6].Descriptor()
	// resource.DefaultCreatedAt holds the default value on creation for the created_at field.
	resource.DefaultCreatedAt = resourceDescCreatedAt.Default.(func() time.Time)
	// resourceDescUpdatedAt is the schema descriptor for updated_at field.
	resourceDescUpdatedAt := resourceFields[7].Descriptor()
	// resource.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	resource.DefaultUpdatedAt = resourceDescUpdatedAt.Default.(func() time.Time)
	// resource.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	resource.UpdateDefaultUpdatedAt = resourceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// resourceDescID is the schema descriptor for id field.
	resourceDescID := resourceFields[0].Descriptor()
	// resource.DefaultID holds the default value on creation for the id field.
	resource.DefaultID = resourceDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[2].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	workflowinstanceFields := schema.WorkflowInstance{}.Fields()
	_ = workflowinstanceFields
	// workflowinstanceDescCurrentStep is the schema descriptor for current_step field.
	workflowinstanceDescCurrentStep := workflowinstanceFields[4].Descriptor()
	// workflowinstance.DefaultCurrentStep holds the default value on creation for the current_step field.
	workflowinstance.DefaultCurrentStep = workflowinstanceDescCurrentStep.Default.(int)
	// workflowinstance.CurrentStepValidator is a validator for the "current_step" field. It is called by the builders before save.
	workflowinstance.CurrentStepValidator = workflowinstanceDescCurrentStep.Validators[0].(func(int) error)
	// workflowinstanceDescCreatedAt is the schema descriptor for created_at field.
	workflowinstanceDescCreatedAt := workflowinstanceFields[8].Descriptor()
	// workflowinstance.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowinstance.DefaultCreatedAt = workflowinstanceDescCreatedAt.Default.(func() time.Time)
	// workflowinstanceDescUpdatedAt is the schema descriptor for updated_at field.
	workflowinstanceDescUpdatedAt := workflowinstanceFields[9].Descriptor()
	// workflowinstance.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowinstance.DefaultUpdatedAt = workflowinstanceDescUpdatedAt.Default.(func() time.Time)
	// workflowinstance.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowinstance.UpdateDefaultUpdatedAt = workflowinstanceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowinstanceDescID is the schema descriptor for id field.
	workflowinstanceDescID := workflowinstanceFields[0].Descriptor()
	// workflowinstance.DefaultID holds the default value on creation for the id field.
	workflowinstance.DefaultID = workflowinstanceDescID.Default.(func() uuid.UUID)
	workflowtemplateFields := schema.WorkflowTemplate{}.Fields()
	_ = workflowtemplateFields
	// workflowtemplateDescName is the schema descriptor for name field.
	workflowtemplateDescName := workflowtemplateFields[1].Descriptor()
	// workflowtemplate.NameValidator is a validator for the "name" field. It is called by the builders before save.
	workflowtemplate.NameValidator = workflowtemplateDescName.Validators[0].(func(string) error)
	// workflowtemplateDescIsActive is the schema descriptor for is_active field.
	workflowtemplateDescIsActive := workflowtemplateFields[5].Descriptor()
	// workflowtemplate.DefaultIsActive holds the default value on creation for the is_active field.
	workflowtemplate.DefaultIsActive = workflowtemplateDescIsActive.Default.(bool)
	// workflowtemplateDescIsDefault is the schema descriptor for is_default field.
	workflowtemplateDescIsDefault := workflowtemplateFields[6].Descriptor()
	// workflowtemplate.DefaultIsDefault holds the default value on creation for the is_default field.
	workflowtemplate.DefaultIsDefault = workflowtemplateDescIsDefault.Default.(bool)
	// workflowtemplateDescCreatedAt is the schema descriptor for created_at field.
	workflowtemplateDescCreatedAt := workflowtemplateFields[9].Descriptor()
	// workflowtemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	workflowtemplate.DefaultCreatedAt = workflowtemplateDescCreatedAt.Default.(func() time.Time)
	// workflowtemplateDescUpdatedAt is the schema descriptor for updated_at field.
	workflowtemplateDescUpdatedAt := workflowtemplateFields[10].Descriptor()
	// workflowtemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	workflowtemplate.DefaultUpdatedAt = workflowtemplateDescUpdatedAt.Default.(func() time.Time)
	// workflowtemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	workflowtemplate.UpdateDefaultUpdatedAt = workflowtemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// workflowtemplateDescID is the schema descriptor for id field.
	workflowtemplateDescID := workflowtemplateFields[0].Descriptor()
	// workflowtemplate.DefaultID holds the default value on creation for the id field.
	workflowtemplate.DefaultID = workflowtemplateDescID.Default.(func() uuid.UUID)
}
