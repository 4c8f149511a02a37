// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Classification partitions every known account email into exactly one bucket.
// An email is never simultaneously Demonstration and Real.
type Classification string

const (
	// ClassificationUnknown means the email has no record in the partition store.
	ClassificationUnknown Classification = "unknown"
	// ClassificationDemonstration marks a seeded, non-persistent sample account.
	ClassificationDemonstration Classification = "demonstration"
	// ClassificationReal marks a genuine account created through registration.
	ClassificationReal Classification = "real"
)

// String returns the classification as its wire representation.
func (c Classification) String() string {
	return string(c)
}

// AccountRecord is one entry of the account partition store, keyed by email.
// For Real accounts the full payload is persisted for the process lifetime;
// Demonstration records are regenerated from the seed generator on every read.
type AccountRecord struct {
	Email          string         `json:"email"`          // Unique key, always stored trimmed.
	Classification Classification `json:"classification"` // Which side of the partition this record lives on.
	PlayerID       string         `json:"player_id"`      // The player id the account maps to.
	Name           string         `json:"name,omitempty"` // Display name. Empty for accounts that never completed a profile.
	Handle         string         `json:"handle"`         // Short unique handle.
	PasswordHash   string         `json:"-"`              // bcrypt hash of the account password. Never the raw password.
	CreatedAt      time.Time      `json:"created_at"`     // When the record was created (or generated, for demo accounts).
}
