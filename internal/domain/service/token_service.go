// Package service defines interfaces for domain services that are
// implemented by the infrastructure layer.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService verifies and (for the in-memory provider and tests) issues
// the JWT access tokens the identity provider signs.
type TokenService interface {
	// Generate creates a signed access token for an identity.
	Generate(userID uuid.UUID, email string, ttl time.Duration) (string, error)

	// Validate checks a token string against the provider signing secret.
	Validate(tokenString string) (*jwt.Token, error)

	// IdentityFromToken extracts the user id and email claims from a
	// validated token.
	IdentityFromToken(token *jwt.Token) (uuid.UUID, string, error)
}
