// Package constants holds shared provider selector values used by config
// and the infrastructure factories.
package constants

const (
	// Identity provider selectors
	IdentityProviderREST     = "rest"
	IdentityProviderFirebase = "firebase"
	IdentityProviderMemory   = "memory"

	// Change-stream provider selectors
	RealtimeProviderGoogle = "google"
	RealtimeProviderMemory = "memory"
)
