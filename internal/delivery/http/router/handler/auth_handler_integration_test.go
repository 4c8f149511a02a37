package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courtside/config"
	"courtside/internal/delivery/http/middleware"
	"courtside/internal/delivery/http/validator"
	"courtside/internal/domain/entity"
	"courtside/internal/infra/auth"
	"courtside/internal/infra/identity"
	"courtside/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixtures struct {
	handler  *AuthHandler
	provider *identity.MemoryProvider
	echo     *echo.Echo
	errMw    *middleware.ErrorMiddleware
}

func createTestAuthHandler(t *testing.T) authFixtures {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Identity: &config.IdentityConfig{JWTSecret: "test-secret"},
	}

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	provider := identity.NewMemoryProvider(tokens)
	sessions := impl.NewSessionService(provider, logger)

	e := echo.New()
	e.Validator = validator.New()

	return authFixtures{
		handler:  NewAuthHandler(sessions, logger),
		provider: provider,
		echo:     e,
		errMw:    middleware.NewErrorMiddleware(logger),
	}
}

func TestAuthHandler_ExchangeCode_RecoveryRedirect_Integration(t *testing.T) {
	fx := createTestAuthHandler(t)
	fx.provider.RegisterCode("recovery-code", entity.Identity{
		UserID: uuid.New(),
		Email:  "player@example.com",
	})

	payload := `{"code":"recovery-code","recovery":true}`
	req := httptest.NewRequest(http.MethodPost, "/auth/exchange", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.ExchangeCode(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "access_token")
	assert.Contains(t, body, "/reset-password?from=recovery")
}

func TestAuthHandler_ExchangeCode_InvalidCode_Integration(t *testing.T) {
	fx := createTestAuthHandler(t)

	payload := `{"code":"nope"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/exchange", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.ExchangeCode(c)
	require.Error(t, err)

	fx.errMw.HandleHTTPError(err, c)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "CREDENTIAL_EXCHANGE_FAILED")
}

func TestAuthHandler_UpdatePassword_NoSession_Integration(t *testing.T) {
	fx := createTestAuthHandler(t)

	payload := `{"new_password":"brand-new-password"}`
	req := httptest.NewRequest(http.MethodPut, "/auth/password", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	err := fx.handler.UpdatePassword(c)
	require.Error(t, err)

	fx.errMw.HandleHTTPError(err, c)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	// The provider's message reaches the client untouched.
	assert.Contains(t, rec.Body.String(), "no active session")
}
