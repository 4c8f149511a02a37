// Package service defines interfaces for domain services that are
// implemented by the infrastructure layer.
package service

// QRCodeService renders onboarding QR codes that deep-link a player into the
// profile-completion flow.
type QRCodeService interface {
	// GenerateOnboardingQR returns a PNG QR code for the completion link of
	// the given player id.
	GenerateOnboardingQR(playerID string) ([]byte, error)
}
