package handler

import (
	"log/slog"
	"net/http"

	"courtside/internal/delivery/http/response"
	"courtside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NavigationHandler exposes the routing guard to clients.
type NavigationHandler struct {
	uc     usecase.NavigationUsecase
	logger *slog.Logger
}

// NewNavigationHandler is the constructor for NavigationHandler, injected by Fx.
func NewNavigationHandler(uc usecase.NavigationUsecase, logger *slog.Logger) *NavigationHandler {
	return &NavigationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Decision settles the guard for the caller's current path and returns the
// canonical screen (and at most one redirect).
func (h *NavigationHandler) Decision(c echo.Context) error {
	path := c.QueryParam("path")
	if path != "" {
		h.uc.OnLocationChanged(path)
	}

	decision, err := h.uc.Evaluate(c.Request().Context(), path)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, decision, "Navigation settled")
}
