// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"courtside/config"
	"courtside/internal/domain/service"
)

// jwtService verifies access tokens signed with the identity provider's
// shared secret, and can mint tokens for the in-memory provider.
type jwtService struct {
	secret string
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Identity == nil || cfg.Identity.JWTSecret == "" {
		return nil, errors.New("identity jwt secret must be provided")
	}

	return &jwtService{secret: cfg.Identity.JWTSecret}, nil
}

// Generate creates a signed access token carrying the identity claims.
func (s *jwtService) Generate(userID uuid.UUID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   userID.String(),            // Subject (who the token is for)
		"email": email,                      // Registered email of the identity
		"iat":   time.Now().Unix(),          // Issued At
		"exp":   time.Now().Add(ttl).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Validate checks the validity of a token string against the provider secret.
func (s *jwtService) Validate(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse access token")
	}

	return token, nil
}

// IdentityFromToken extracts the sub and email claims of a validated token.
func (s *jwtService) IdentityFromToken(token *jwt.Token) (uuid.UUID, string, error) {
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", errors.New("unexpected claims type")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, "", errors.New("sub claim missing")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, "", errors.Wrap(err, "invalid sub claim")
	}

	email, _ := claims["email"].(string)

	return userID, email, nil
}
