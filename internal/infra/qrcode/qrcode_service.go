// Package qrcode renders onboarding QR codes.
package qrcode

import (
	"fmt"
	"net/url"

	"courtside/internal/domain/navigation"
	"courtside/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateOnboardingQR renders a PNG QR code deep-linking the player into
// the profile-completion flow.
func (s *qrcodeService) GenerateOnboardingQR(playerID string) ([]byte, error) {
	link := fmt.Sprintf("%s%s?%s=%s", s.baseURL, navigation.PathCompleteProfile, navigation.PlayerIDParam, url.QueryEscape(playerID))

	png, err := qrcode.Encode(link, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %w", err)
	}

	return png, nil
}
