// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"courtside/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is a domain-specific error returned when no profile row
// exists for an identity. To the navigation guard this is a normal state
// (profile not yet created), not a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository reads player profiles from the external relational store.
// The application layer depends on this interface, not the concrete implementation.
type ProfileRepository interface {
	// FindByUserID retrieves the profile row belonging to an identity.
	// Returns ErrProfileNotFound when the identity has no profile yet.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
}
