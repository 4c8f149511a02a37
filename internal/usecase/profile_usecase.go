// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// ProfileStatus is the guard-facing projection of a profile row.
type ProfileStatus struct {
	Exists      bool   `json:"exists"`
	NamePresent bool   `json:"name_present"`
	PlayerID    string `json:"player_id,omitempty"`
}

// ProfileUsecase is the profile lookup: it reduces the external store's
// profile row to the completeness projection the guard needs.
type ProfileUsecase interface {
	// CheckCompletion fetches the profile for an identity. A missing row is
	// a normal result (Exists=false), not an error; transient store errors
	// propagate so the caller can hold its last settled state.
	CheckCompletion(ctx context.Context, userID uuid.UUID) (*ProfileStatus, error)
}
