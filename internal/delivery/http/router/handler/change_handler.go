package handler

import (
	"log/slog"
	"net/http"

	"courtside/internal/delivery/http/response"
	"courtside/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ChangeHandler exposes the change aggregator's coalesced signal.
type ChangeHandler struct {
	uc     usecase.ChangeUsecase
	logger *slog.Logger
}

// NewChangeHandler is the constructor for ChangeHandler, injected by Fx.
func NewChangeHandler(uc usecase.ChangeUsecase, logger *slog.Logger) *ChangeHandler {
	return &ChangeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Status returns the last-changed timestamp and the degraded flag. Clients
// poll this to decide when to re-query their lists.
func (h *ChangeHandler) Status(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.uc.Status(), "Successfully retrieved change status")
}
