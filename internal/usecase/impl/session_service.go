package impl

import (
	"context"
	"log/slog"

	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/service"
	"courtside/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	provider service.IdentityProvider
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(provider service.IdentityProvider, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		provider: provider,
		logger:   logger,
	}
}

// Current returns the present session. Provider failures are treated as
// "signed out" so callers always get a definitive answer.
func (srv *sessionService) Current(ctx context.Context) *entity.Session {
	session, err := srv.provider.GetSession(ctx)
	if err != nil {
		srv.logger.Warn("Session fetch failed, treating as signed out", "error", err)

		return nil
	}

	return session
}

// Watch registers a handler for auth state changes.
func (srv *sessionService) Watch(handler service.SessionHandler) (service.Subscription, error) {
	return srv.provider.OnChange(handler)
}

// ExchangeCode trades a provider credential for a session.
func (srv *sessionService) ExchangeCode(ctx context.Context, input *usecase.ExchangeCodeInput) (*entity.Session, error) {
	session, err := srv.provider.ExchangeCode(ctx, input.Code)
	if err != nil {
		srv.logger.Warn("Credential exchange rejected by provider", "error", err)

		return nil, domainerrors.ErrCredentialExchangeFailed.WithDetails(err.Error())
	}

	srv.logger.Info("Credential exchange succeeded", "userID", session.Identity.UserID)

	return session, nil
}

// UpdatePassword sets a new password through the provider. The provider's
// failure message is passed through verbatim so the client can show it.
func (srv *sessionService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	if err := srv.provider.UpdatePassword(ctx, input.NewPassword); err != nil {
		return domainerrors.ErrPasswordUpdateFailed.WithDetails(err.Error())
	}

	srv.logger.Info("Password updated")

	return nil
}

// SignOut destroys the current session.
func (srv *sessionService) SignOut(ctx context.Context) error {
	return srv.provider.SignOut(ctx)
}
