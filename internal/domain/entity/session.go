// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the stable reference to a user as issued by the identity provider.
// It is read-only to this service; the provider is the source of truth.
type Identity struct {
	UserID uuid.UUID `json:"user_id"` // The provider-issued unique ID for the user.
	Email  string    `json:"email"`   // The email the identity was registered with.
}

// Session represents an authenticated session issued by the identity provider.
// Sessions are replaced wholesale on every auth event and never mutated in place.
type Session struct {
	AccessToken  string    `json:"access_token"`  // Opaque (to us) bearer token material issued by the provider.
	RefreshToken string    `json:"refresh_token"` // Token used to obtain a replacement session after expiry.
	ExpiresAt    time.Time `json:"expires_at"`    // The exact time this session stops being valid.
	Identity     Identity  `json:"identity"`      // The user this session belongs to.
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
