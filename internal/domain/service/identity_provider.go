// Package service defines interfaces for domain services that are
// implemented by the infrastructure layer.
package service

import (
	"context"

	"courtside/internal/domain/entity"
)

// SessionHandler receives the new session (or nil on sign-out/expiry)
// whenever the provider-side auth state changes.
type SessionHandler func(session *entity.Session)

// IdentityProvider wraps the external identity provider. It is the only
// component allowed to talk to the provider; everything else consumes
// sessions through the session usecase.
type IdentityProvider interface {
	// GetSession returns the current session, or nil when no user is signed in.
	GetSession(ctx context.Context) (*entity.Session, error)

	// OnChange registers a handler for auth state changes and returns the
	// subscription handle. The handler is invoked with nil on sign-out.
	OnChange(handler SessionHandler) (Subscription, error)

	// ExchangeCode trades a provider credential (authorization code or
	// recovery code) for a session.
	ExchangeCode(ctx context.Context, code string) (*entity.Session, error)

	// UpdatePassword sets a new password for the signed-in user. Provider
	// failure messages are surfaced to the caller verbatim.
	UpdatePassword(ctx context.Context, newPassword string) error

	// SignOut destroys the current session and notifies change handlers.
	SignOut(ctx context.Context) error
}
