// Code generated by ent, DO NOT EDIT.

package applicationhistory

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the applicationhistory type in the database.
	Label = "application_history"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldApplicationID holds the string denoting the application_id field in the database.
	FieldApplicationID = "application_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPreviousStatus holds the string denoting the previous_status field in the database.
	FieldPreviousStatus = "previous_status"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldDecisionReason holds the string denoting the decision_reason field in the database.
	FieldDecisionReason = "decision_reason"
	// FieldNotifyCandidate holds the string denoting the notify_candidate field in the database.
	FieldNotifyCandidate = "notify_candidate"
	// FieldNotifyClient holds the string denoting the notify_client field in the database.
	FieldNotifyClient = "notify_client"
	// FieldFollowUp holds the string denoting the follow_up field in the database.
	FieldFollowUp = "follow_up"
	// FieldOrganizationID holds the string denoting the organization_id field in the database.
	FieldOrganizationID = "organization_id"
	// FieldCreatedBy holds the string denoting the created_by field in the database.
	FieldCreatedBy = "created_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the applicationhistory in the database.
	Table = "application_history"
)

// Columns holds all SQL columns for applicationhistory fields.
var Columns = []string{
	FieldID,
	FieldApplicationID,
	FieldStatus,
	FieldPreviousStatus,
	FieldNotes,
	FieldDecisionReason,
	FieldNotifyCandidate,
	FieldNotifyClient,
	FieldFollowUp,
	FieldOrganizationID,
	FieldCreatedBy,
	FieldCreatedAt,
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
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultNotifyCandidate holds the default value on creation for the "notify_candidate" field.
	DefaultNotifyCandidate bool
	// DefaultNotifyClient holds the default value on creation for the "notify_client" field.
	DefaultNotifyClient bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the ApplicationHistory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByApplicationID orders the results by the application_id field.
func ByApplicationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApplicationID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPreviousStatus orders the results by the previous_status field.
func ByPreviousStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPreviousStatus, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByNotifyCandidate orders the results by the notify_candidate field.
func ByNotifyCandidate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotifyCandidate, opts...).ToFunc()
}

// ByNotifyClient orders the results by the notify_client field.
func ByNotifyClient(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotifyClient, opts...).ToFunc()
}

// ByOrganizationID orders the results by the organization_id field.
func ByOrganizationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrganizationID, opts...).ToFunc()
}

// ByCreatedBy orders the results by the created_by field.
func ByCreatedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
