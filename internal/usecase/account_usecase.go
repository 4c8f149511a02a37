// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"courtside/internal/domain/entity"
)

// AccountUsecase exposes the account partition store to request handlers.
type AccountUsecase interface {
	// Classify reports the partition side for an email.
	Classify(ctx context.Context, email string) (entity.Classification, error)

	// ListDemonstration returns the regenerated demonstration dataset.
	ListDemonstration(ctx context.Context) ([]*entity.AccountRecord, error)

	// ListReal returns a snapshot of the real accounts.
	ListReal(ctx context.Context) ([]*entity.AccountRecord, error)

	// CreateReal registers a real account from validated input.
	CreateReal(ctx context.Context, input *CreateAccountInput) (*entity.AccountRecord, error)

	// Delete removes an account's classification (and, for real accounts,
	// its record and cached auxiliary data).
	Delete(ctx context.Context, email string) error

	// OnboardingQR renders (and caches) the profile-completion QR for an
	// account's player id.
	OnboardingQR(ctx context.Context, email string) ([]byte, error)
}

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a real account.
type CreateAccountInput struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name,omitempty"`
	Handle   string `json:"handle" validate:"required,min=3,max=40"`
	PlayerID string `json:"player_id" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}
