package handler

import (
	"log/slog"
	"net/http"

	"courtside/internal/delivery/http/response"
	"courtside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account partition handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListDemonstration returns the regenerated demonstration dataset.
func (h *AccountHandler) ListDemonstration(c echo.Context) error {
	records, err := h.uc.ListDemonstration(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Successfully retrieved demonstration accounts")
}

// ListReal returns the current real accounts.
func (h *AccountHandler) ListReal(c echo.Context) error {
	records, err := h.uc.ListReal(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "Successfully retrieved accounts")
}

// Classify reports which partition side an email falls on.
func (h *AccountHandler) Classify(c echo.Context) error {
	classification, err := h.uc.Classify(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"email":          c.Param("email"),
		"classification": string(classification),
	}, "Successfully classified account")
}

// Create registers a real account.
func (h *AccountHandler) Create(c echo.Context) error {
	var input *usecase.CreateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	record, err := h.uc.CreateReal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Account registered successfully")
}

// Delete removes an account's classification and record.
func (h *AccountHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("email")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted successfully")
}

// OnboardingQR streams the profile-completion QR code as a PNG.
func (h *AccountHandler) OnboardingQR(c echo.Context) error {
	png, err := h.uc.OnboardingQR(c.Request().Context(), c.Param("email"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
