// Code generated by ent, DO NOT EDIT.

package application

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the application type in the database.
	Label = "application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldRequirementID holds the string denoting the requirement_id field in the database.
	FieldRequirementID = "requirement_id"
	// FieldResourceID holds the string denoting the resource_id field in the database.
	FieldResourceID = "resource_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldApplicationType holds the string denoting the application_type field in the database.
	FieldApplicationType = "application_type"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldProposedRate holds the string denoting the proposed_rate field in the database.
	FieldProposedRate = "proposed_rate"
	// FieldAvailability holds the string denoting the availability field in the database.
	FieldAvailability = "availability"
	// FieldWorkflowInstanceID holds the string denoting the workflow_instance_id field in the database.
	FieldWorkflowInstanceID = "workflow_instance_id"
	// FieldWorkflowStatus holds the string denoting the workflow_status field in the database.
	FieldWorkflowStatus = "workflow_status"
	// FieldCurrentWorkflowStep holds the string denoting the current_workflow_step field in the database.
	FieldCurrentWorkflowStep = "current_workflow_step"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldUpdatedBy holds the string denoting the updated_by field in the database.
	FieldUpdatedBy = "updated_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRequirement holds the string denoting the requirement edge name in mutations.
	EdgeRequirement = "requirement"
	// EdgeResource holds the string denoting the resource edge name in mutations.
	EdgeResource = "resource"
	// EdgeCreator holds the string denoting the creator edge name in mutations.
	EdgeCreator = "creator"
	// Table holds the table name of the application in the database.
	Table = "application"
	// RequirementTable is the table that holds the requirement relation/edge.
	RequirementTable = "application"
	// RequirementInverseTable is the table name for the Requirement entity.
	// It exists in this package in order to avoid circular dependency with the "requirement" package.
	RequirementInverseTable = "requirements"
	// RequirementColumn is the table column denoting the requirement relation/edge.
	RequirementColumn = "requirement_id"
	// ResourceTable is the table that holds the resource relation/edge.
	ResourceTable = "application"
	// ResourceInverseTable is the table name for the Resource entity.
	// It exists in this package in order to avoid circular dependency with the "resource" package.
	ResourceInverseTable = "resources"
	// ResourceColumn is the table column denoting the resource relation/edge.
	ResourceColumn = "resource_id"
	// CreatorTable is the table that holds the creator relation/edge.
	CreatorTable = "application"
	// CreatorInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CreatorInverseTable = "users"
	// CreatorColumn is the table column denoting the creator relation/edge.
	CreatorColumn = "created_by"
)

// Columns holds all SQL columns for application fields.
var Columns = []string{
	FieldID,
	FieldRequirementID,
	FieldResourceID,
	FieldStatus,
	FieldApplicationType,
	FieldOrganizationID,
	FieldNotes,
	FieldProposedRate,
	FieldAvailability,
	FieldWorkflowInstanceID,
	FieldWorkflowStatus,
	FieldCurrentWorkflowStep,
	FieldCreatedBy,
	FieldUpdatedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCurrentWorkflowStep holds the default value on creation for the "current_workflow_step" field.
	DefaultCurrentWorkflowStep int
	// CurrentWorkflowStepValidator is a validator for the "current_workflow_step" field. It is called by the builders before save.
	CurrentWorkflowStepValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Status defines the type for the "status" enum field.
type Status string

// StatusApplied is the default value of the Status enum.
const DefaultStatus = StatusApplied

// Status values.
const (
	StatusApplied       Status = "applied"
	StatusPending       Status = "pending"
	StatusShortlisted   Status = "shortlisted"
	StatusInterview     Status = "interview"
	StatusAccepted      Status = "accepted"
	StatusOfferCreated  Status = "offer_created"
	StatusOfferAccepted Status = "offer_accepted"
	StatusOnboarded     Status = "onboarded"
	StatusRejected      Status = "rejected"
	StatusWithdrawn     Status = "withdrawn"
	StatusDidNotJoin    Status = "did_not_join"
	StatusCancelled     Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusApplied, StatusPending, StatusShortlisted, StatusInterview, StatusAccepted, StatusOfferCreated, StatusOfferAccepted, StatusOnboarded, StatusRejected, StatusWithdrawn, StatusDidNotJoin, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for status field: %q", s)
	}
}

// ApplicationType defines the type for the "application_type" enum field.
type ApplicationType string

// ApplicationType values.
const (
	ApplicationTypeClientApplied ApplicationType = "client_applied"
	ApplicationTypeVendorApplied ApplicationType = "vendor_applied"
)

func (at ApplicationType) String() string {
	return string(at)
}

// ApplicationTypeValidator is a validator for the "application_type" field enum values. It is called by the builders before save.
func ApplicationTypeValidator(at ApplicationType) error {
	switch at {
	case ApplicationTypeClientApplied, ApplicationTypeVendorApplied:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for application_type field: %q", at)
	}
}

// WorkflowStatus defines the type for the "workflow_status" enum field.
type WorkflowStatus string

// WorkflowStatusNotStarted is the default value of the WorkflowStatus enum.
const DefaultWorkflowStatus = WorkflowStatusNotStarted

// WorkflowStatus values.
const (
	WorkflowStatusNotStarted WorkflowStatus = "not_started"
	WorkflowStatusInProgress WorkflowStatus = "in_progress"
	WorkflowStatusCompleted  WorkflowStatus = "completed"
	WorkflowStatusCancelled  WorkflowStatus = "cancelled"
)

func (ws WorkflowStatus) String() string {
	return string(ws)
}

// WorkflowStatusValidator is a validator for the "workflow_status" field enum values. It is called by the builders before save.
func WorkflowStatusValidator(ws WorkflowStatus) error {
	switch ws {
	case WorkflowStatusNotStarted, WorkflowStatusInProgress, WorkflowStatusCompleted, WorkflowStatusCancelled:
		return nil
	default:
		return fmt.Errorf("application: invalid enum value for workflow_status field: %q", ws)
	}
}

// OrderOption defines the ordering options for the Application queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRequirementID orders the results by the requirement_id field.
func ByRequirementID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRequirementID, opts...).ToFunc()
}

// ByResourceID orders the results by the resource_id field.
func ByResourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResourceID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByApplicationType orders the results by the application_type field.
func ByApplicationType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationType, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByWorkflowInstanceID orders the results by the workflow_instance_id field.
func ByWorkflowInstanceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowInstanceID, opts...).ToFunc()
}

// ByWorkflowStatus orders the results by the workflow_status field.
func ByWorkflowStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowStatus, opts...).ToFunc()
}

// ByCurrentWorkflowStep orders the results by the current_workflow_step field.
func ByCurrentWorkflowStep(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentWorkflowStep, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByUpdatedBy orders the results by the updated_by field.
func ByUpdatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRequirementField orders the results by requirement field.
func ByRequirementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRequirementStep(), sql.OrderByField(field, opts...))
	}
}

// ByResourceField orders the results by resource field.
func ByResourceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResourceStep(), sql.OrderByField(field, opts...))
	}
}

// ByCreatorField orders the results by creator field.
func ByCreatorField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCreatorStep(), sql.OrderByField(field, opts...))
	}
}
func newRequirementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RequirementInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RequirementTable, RequirementColumn),
	)
}
func newResourceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResourceInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ResourceTable, ResourceColumn),
	)
}
func newCreatorStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CreatorInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CreatorTable, CreatorColumn),
	)
}
