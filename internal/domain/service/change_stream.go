// Package service defines interfaces for domain services that are
// implemented by the infrastructure layer.
package service

import (
	"context"

	"courtside/internal/domain/entity"
)

// ChangeHandler receives row-level change events for a subscribed table.
type ChangeHandler func(event entity.ChangeEvent)

// Subscription is an owned handle to a live event stream. Handles are held
// as a set by their owning component and released in bulk on teardown.
type Subscription interface {
	// Unsubscribe releases the handle. Safe to call more than once.
	Unsubscribe() error

	// Closed reports whether the handle has been released.
	Closed() bool
}

// ChangeStream is the change-notification transport of the external store.
// Subscriptions deliver {table, operation} with no payload guarantees beyond
// "something changed".
type ChangeStream interface {
	// Subscribe opens a stream for one table. The handler may be invoked
	// concurrently with the subscribing goroutine.
	Subscribe(ctx context.Context, table string, handler ChangeHandler) (Subscription, error)
}
