package status

// Status is an application lifecycle status. The sets below are the single
// source of truth for the closed enumeration; the ent schema feeds its enum
// values from Values().
type Status string

const (
	Applied       Status = "applied"
	Pending       Status = "pending"
	Shortlisted   Status = "shortlisted"
	Interview     Status = "interview"
	Accepted      Status = "accepted"
	OfferCreated  Status = "offer_created"
	OfferAccepted Status = "offer_accepted"
	Onboarded     Status = "onboarded"
	Rejected      Status = "rejected"
	Withdrawn     Status = "withdrawn"
	DidNotJoin    Status = "did_not_join"
	Cancelled     Status = "cancelled"
)

// Deleted is a ledger-only marker written on application deletion. It is not
// part of the application status enumeration.
const Deleted = "deleted"

// Category labels returned by Category.
const (
	CategoryActive   = "active"
	CategoryInactive = "inactive"
)

var activeSet = map[Status]struct{}{
	Applied:       {},
	Pending:       {},
	Shortlisted:   {},
	Interview:     {},
	Accepted:      {},
	OfferCreated:  {},
	OfferAccepted: {},
	Onboarded:     {},
}

var inactiveSet = map[Status]struct{}{
	Rejected:   {},
	Withdrawn:  {},
	DidNotJoin: {},
	Cancelled:  {},
}

// terminalSet holds statuses from which no further transition is accepted.
var terminalSet = map[Status]struct{}{
	Onboarded:  {},
	DidNotJoin: {},
	Rejected:   {},
	Withdrawn:  {},
}

func (s Status) String() string { return string(s) }

// IsActive reports whether s is in the active set.
func IsActive(s Status) bool {
	_, ok := activeSet[s]
	return ok
}

// IsInactive reports whether s is in the inactive set.
func IsInactive(s Status) bool {
	_, ok := inactiveSet[s]
	return ok
}

// IsTerminal reports whether s accepts no further transitions.
func IsTerminal(s Status) bool {
	_, ok := terminalSet[s]
	return ok
}

// Category classifies s as "active" or "inactive". Unrecognized values are
// classified "inactive" so an unknown status can never block deactivation.
func Category(s Status) string {
	if IsActive(s) {
		return CategoryActive
	}
	return CategoryInactive
}

// Valid reports whether s is a member of the closed enumeration.
func Valid(s Status) bool {
	return IsActive(s) || IsInactive(s)
}

// Parse validates a raw string against the closed enumeration.
func Parse(raw string) (Status, bool) {
	s := Status(raw)
	return s, Valid(s)
}

// All returns the full closed enumeration, active statuses first.
func All() []Status {
	out := make([]Status, 0, len(activeSet)+len(inactiveSet))
	out = append(out, Active()...)
	out = append(out, Inactive()...)
	return out
}

// Active returns the active statuses in lifecycle order.
func Active() []Status {
	return []Status{Applied, Pending, Shortlisted, Interview, Accepted, OfferCreated, OfferAccepted, Onboarded}
}

// Inactive returns the inactive statuses.
func Inactive() []Status {
	return []Status{Rejected, Withdrawn, DidNotJoin, Cancelled}
}

// Values returns the enumeration as strings, for ent schema enum values and
// for "valid values are ..." validation messages.
func Values() []string {
	all := All()
	out := make([]string, len(all))
	for i, s := range all {
		out[i] = string(s)
	}
	return out
}

// ActivePredicate returns the active statuses as strings for callers building
// a "status IN (...)" match over live applications.
func ActivePredicate() []string {
	active := Active()
	out := make([]string, len(active))
	for i, s := range active {
		out[i] = string(s)
	}
	return out
}
