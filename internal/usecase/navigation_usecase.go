// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"courtside/internal/domain/entity"
)

// GuardState is the navigation guard's settled state for the current inputs.
type GuardState string

const (
	// GuardStateUnknown is the initial state: the session has not resolved
	// yet, so no navigation decision can be made.
	GuardStateUnknown GuardState = "unknown"
	// GuardStateUnauthenticated means no session exists.
	GuardStateUnauthenticated GuardState = "unauthenticated"
	// GuardStateIncompleteProfile means a session exists but the profile has
	// no display name yet.
	GuardStateIncompleteProfile GuardState = "authenticated_incomplete_profile"
	// GuardStateComplete means a session exists and the profile is complete.
	GuardStateComplete GuardState = "authenticated_complete"
)

// Redirect is the single navigation instruction of a settlement.
type Redirect struct {
	Path string `json:"path"`
}

// Decision is the outcome of one guard evaluation. Redirect is nil when the
// caller should stay where they are.
type Decision struct {
	State    GuardState `json:"state"`
	Redirect *Redirect  `json:"redirect,omitempty"`
}

// NavigationUsecase is the routing guard: it consumes session and profile
// state plus the current location and computes exactly one canonical screen.
//
// The decision is a pure function of (session, profile completeness, path).
// An internal snapshot latch guarantees at most one redirect per settlement
// even when the guard is evaluated from several mounted entry points.
type NavigationUsecase interface {
	// OnAppReady marks splash/init as finished. Before this, every
	// evaluation defers with GuardStateUnknown.
	OnAppReady()

	// OnSessionResolved feeds a definitive session resolution (nil means
	// signed out). Wired to the session source's change stream.
	OnSessionResolved(session *entity.Session)

	// OnLocationChanged records the client's current path.
	OnLocationChanged(path string)

	// Evaluate settles the guard for the given path and returns the
	// decision. Evaluating twice with unchanged inputs issues the redirect
	// at most once.
	Evaluate(ctx context.Context, path string) (*Decision, error)
}
