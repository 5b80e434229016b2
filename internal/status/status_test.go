package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionIsDisjointAndComplete(t *testing.T) {
	assert.Len(t, All(), 12)
	for _, s := range Active() {
		assert.True(t, IsActive(s), "%s should be active", s)
		assert.False(t, IsInactive(s), "%s should not be inactive", s)
	}
	for _, s := range Inactive() {
		assert.True(t, IsInactive(s), "%s should be inactive", s)
		assert.False(t, IsActive(s), "%s should not be active", s)
	}
}

func TestCategoryFailsSafeOnUnknown(t *testing.T) {
	assert.Equal(t, CategoryActive, Category(Applied))
	assert.Equal(t, CategoryInactive, Category(Rejected))
	// Unknown values classify inactive so a bad status never blocks deactivation.
	assert.Equal(t, CategoryInactive, Category(Status("bogus")))
	assert.Equal(t, CategoryInactive, Category(Status("")))
}

func TestParseValidatesClosedEnumeration(t *testing.T) {
	for _, raw := range Values() {
		s, ok := Parse(raw)
		assert.True(t, ok)
		assert.Equal(t, raw, string(s))
	}

	_, ok := Parse("deleted")
	assert.False(t, ok, "the ledger-only deletion marker is not a lifecycle status")
	_, ok = Parse("APPLIED")
	assert.False(t, ok, "matching is case-sensitive")
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestTerminalStatuses(t *testing.T) {
	terminal := []Status{Onboarded, DidNotJoin, Rejected, Withdrawn}
	for _, s := range terminal {
		assert.True(t, IsTerminal(s), "%s should be terminal", s)
	}
	for _, s := range []Status{Applied, Pending, Shortlisted, Interview, Accepted, OfferCreated, OfferAccepted, Cancelled} {
		assert.False(t, IsTerminal(s), "%s should not be terminal", s)
	}
}

func TestActivePredicateMatchesActiveSet(t *testing.T) {
	predicate := ActivePredicate()
	assert.Len(t, predicate, len(Active()))
	for _, s := range Active() {
		assert.Contains(t, predicate, string(s))
	}
}
