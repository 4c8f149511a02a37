// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"
)

// ChangeStatus reports the aggregator's current view of the watched tables.
type ChangeStatus struct {
	// LastChanged is the monotonic "data changed at T" timestamp. Zero
	// until the first event arrives.
	LastChanged time.Time `json:"last_changed"`

	// Degraded is set when one or more subscriptions failed to establish;
	// the remaining streams keep operating.
	Degraded bool `json:"degraded"`

	// Watching lists the tables with a live subscription.
	Watching []string `json:"watching"`
}

// ChangeUsecase is the change aggregator: it folds every row-level event
// from the watched tables into one coalesced "something changed" signal.
type ChangeUsecase interface {
	// Start establishes one subscription per watched table. Partial
	// failures leave the aggregator running in degraded mode.
	Start(ctx context.Context) error

	// Status returns the current coalesced signal state.
	Status() ChangeStatus

	// Close releases every subscription handle. After Close, no further
	// signals are applied and all handles report closed.
	Close() error
}
