package handler

import (
	"log/slog"
	"net/http"

	"courtside/internal/delivery/http/response"
	"courtside/internal/domain/navigation"
	"courtside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.SessionUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// ExchangeCode trades a provider credential (auth or recovery code) for a
// session.
func (h *AuthHandler) ExchangeCode(c echo.Context) error {
	var input *usecase.ExchangeCodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid exchange input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	session, err := h.uc.ExchangeCode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	payload := map[string]any{"session": session}
	if input.Recovery {
		payload["redirect"] = navigation.PathPasswordReset + "?" + navigation.RecoveryMarker
	}

	return response.Success(c, http.StatusOK, payload, "Credential exchanged successfully")
}

// UpdatePassword sets a new password for the signed-in user. Provider
// failures carry the provider's message through untouched.
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var input *usecase.UpdatePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.UpdatePassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password updated successfully")
}

// SignOut destroys the current session.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.uc.SignOut(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Signed out successfully")
}
