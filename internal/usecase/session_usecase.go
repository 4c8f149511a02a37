// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"courtside/internal/domain/entity"
	"courtside/internal/domain/service"
)

// SessionUsecase is the session source: the only way the rest of the
// application observes identity provider state.
type SessionUsecase interface {
	// Current returns the present session, or nil when signed out. Provider
	// fetch errors are swallowed into nil (fail safe to unauthenticated).
	Current(ctx context.Context) *entity.Session

	// Watch registers a handler for session changes.
	Watch(handler service.SessionHandler) (service.Subscription, error)

	// ExchangeCode trades a provider credential for a session. Provider
	// errors surface verbatim.
	ExchangeCode(ctx context.Context, input *ExchangeCodeInput) (*entity.Session, error)

	// UpdatePassword sets a new password through the provider. Provider
	// errors surface verbatim.
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error

	// SignOut destroys the current session.
	SignOut(ctx context.Context) error
}

// --- Input DTOs ---

// ExchangeCodeInput defines the data required for a credential exchange.
// Recovery marks exchanges that originate from a password recovery link;
// those land the user on the reset screen instead of the normal flow.
type ExchangeCodeInput struct {
	Code     string `json:"code" validate:"required"`
	Recovery bool   `json:"recovery"`
}

// UpdatePasswordInput defines the data required for a password update.
type UpdatePasswordInput struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
