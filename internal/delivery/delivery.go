// Package delivery defines the contract every transport entry point
// implements so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server (HTTP today).
type Delivery interface {
	// Serve blocks until the server stops or fails.
	Serve(ctx context.Context) error
}
