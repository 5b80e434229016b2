package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"staffhub/internal/authz"
	"staffhub/internal/models"
	"staffhub/internal/status"
	"staffhub/internal/storage"
)

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// sideEffectTimeout bounds every secondary effect (history append,
// notification write, workflow advance) so a slow dependency cannot hold the
// request once the primary write has committed.
const sideEffectTimeout = 3 * time.Second

// runSideEffect executes fn on a context detached from the request. Failure
// or timeout is logged and swallowed: secondary effects never abort or roll
// back the committed primary state change.
func runSideEffect(operation string, fn func(ctx context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()
	if err := fn(ctx); err != nil {
		log.Printf("WARN: side effect %s failed (primary operation unaffected): %v", operation, err)
	}
}

// defaultTransitionNote synthesizes the ledger note when the caller supplied
// none.
func defaultTransitionNote(previous, next string) string {
	return fmt.Sprintf("Status changed from %s to %s", previous, next)
}

// clientStatusTargets returns the targets a requirement-owning client may set
// from the given current status. Fresh applications can only be rejected
// (shortlisting is an admin call), a created offer can only be retracted, and
// everything else falls to the generic list.
func clientStatusTargets(current status.Status) []status.Status {
	switch current {
	case status.Applied:
		return []status.Status{status.Rejected}
	case status.OfferCreated:
		return []status.Status{status.Withdrawn}
	default:
		return []status.Status{status.Shortlisted, status.Interview, status.Accepted, status.OfferCreated, status.Rejected}
	}
}

func statusIn(s status.Status, set []status.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// applicationTypeFor classifies a submission by the actor's role tier.
// Admin-submitted applications behave like client submissions.
func applicationTypeFor(p models.Principal) models.ApplicationType {
	if authz.IsVendor(p) {
		return models.ApplicationTypeVendorApplied
	}
	return models.ApplicationTypeClientApplied
}

func validStatusesMessage() string {
	return "valid statuses are: " + strings.Join(status.Values(), ", ")
}
