// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Application is the predicate function for application builders.
type Application func(*sql.Selector)

// ApplicationHistory is the predicate function for applicationhistory builders.
type ApplicationHistory func(*sql.Selector)

// Notification is the predicate function for notification builders.
type Notification func(*sql.Selector)

// Requirement is the predicate function for requirement builders.
type Requirement func(*sql.Selector)

// Resource is the predicate function for resource builders.
type Resource func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WorkflowInstance is the predicate function for workflowinstance builders.
type WorkflowInstance func(*sql.Selector)

// WorkflowTemplate is the predicate function for workflowtemplate builders.
type WorkflowTemplate func(*sql.Selector)
