package models

import (
	"time"

	"github.com/google/uuid"
)

// --- Application Type Enum ---
type ApplicationType string

const (
	ApplicationTypeClientApplied ApplicationType = "client_applied"
	ApplicationTypeVendorApplied ApplicationType = "vendor_applied"
	// ApplicationTypeBoth is a template-side sentinel: a template carrying it
	// matches applications of either type. Applications themselves are always
	// one of the two concrete types.
	ApplicationTypeBoth ApplicationType = "both"
)

func (t ApplicationType) String() string { return string(t) }

// ApplicationTypeValues returns the concrete types an application can carry.
func ApplicationTypeValues() []string {
	return []string{string(ApplicationTypeClientApplied), string(ApplicationTypeVendorApplied)}
}

// --- Rate Type Enum ---
type RateType string

const (
	RateHourly RateType = "hourly"
	RateFixed  RateType = "fixed"
)

// Principal is the authenticated caller handed into every operation. It is a
// read model over the user store; the core never mutates it.
type Principal struct {
	ID               uuid.UUID  `json:"id"`
	Email            string     `json:"email"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	UserType         string     `json:"user_type"`
	Role             string     `json:"role,omitempty"`
	OrganizationID   *uuid.UUID `json:"organization_id,omitempty"`
	OrganizationRole string     `json:"organization_role,omitempty"`
}

// FullName interpolates the principal's display name for notification messages.
func (p Principal) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// ProposedRate is the rate a resource bids against a requirement.
type ProposedRate struct {
	Amount   float64  `json:"amount"`
	Currency string   `json:"currency"`
	RateType RateType `json:"rate_type"`
}

// Availability describes when and how much a resource can work.
type Availability struct {
	StartDate    *time.Time `json:"start_date,omitempty"`
	HoursPerWeek int        `json:"hours_per_week,omitempty"`
}

// DecisionReason is the structured rationale optionally attached to a status
// transition and recorded verbatim in the history ledger.
type DecisionReason struct {
	Category string   `json:"category,omitempty"`
	Details  string   `json:"details,omitempty"`
	Rating   int      `json:"rating,omitempty"`
	Criteria []string `json:"criteria,omitempty"`
}

// FollowUp captures an optional follow-up commitment on a transition.
type FollowUp struct {
	Required bool       `json:"required"`
	Date     *time.Time `json:"date,omitempty"`
	Notes    string     `json:"notes,omitempty"`
}

// TemplateStep is one admin-authored approval step inside a workflow template.
type TemplateStep struct {
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Action      string `json:"action"`
	Required    bool   `json:"required"`
	AutoAdvance bool   `json:"auto_advance"`
}

// InstanceStep is a template step snapshotted into a running instance, plus
// its completion state. Instances copy steps by value at creation time so
// later template edits cannot alter them.
type InstanceStep struct {
	StepID      uuid.UUID         `json:"step_id"`
	Order       int               `json:"order"`
	Name        string            `json:"name"`
	Role        string            `json:"role"`
	Action      string            `json:"action"`
	Required    bool              `json:"required"`
	AutoAdvance bool              `json:"auto_advance"`
	Status      string            `json:"status"` // pending | completed
	CompletedAt *time.Time        `json:"completed_at,omitempty"`
	PerformedBy *uuid.UUID        `json:"performed_by,omitempty"`
	ActionTaken string            `json:"action_taken,omitempty"`
	Comments    string            `json:"comments,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// SnapshotSteps deep-copies template steps into fresh instance steps, all
// pending, each with its own generated step id.
func SnapshotSteps(steps []TemplateStep) []InstanceStep {
	out := make([]InstanceStep, len(steps))
	for i, s := range steps {
		out[i] = InstanceStep{
			StepID:      uuid.New(),
			Order:       s.Order,
			Name:        s.Name,
			Role:        s.Role,
			Action:      s.Action,
			Required:    s.Required,
			AutoAdvance: s.AutoAdvance,
			Status:      "pending",
		}
	}
	return out
}
