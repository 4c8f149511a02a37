// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the player profile row owned by the external relational store.
// The core only ever reads a projection of it; writes happen elsewhere.
type Profile struct {
	PlayerID  string    // The public player identifier used across groups, matches and chat.
	UserID    uuid.UUID // Foreign key back to the identity provider's user.
	Name      string    // Display name. Empty until the user completes their profile.
	Handle    string    // Short unique handle, assigned at registration.
	CreatedAt time.Time // Timestamp of when the profile row was created.
	UpdatedAt time.Time // Timestamp of the last modification to the profile.
}

// NamePresent reports whether the profile has a display name set,
// which is the definition of a completed profile.
func (p *Profile) NamePresent() bool {
	return p.Name != ""
}
