package identity

import (
	"context"
	"log/slog"

	"courtside/config"
	"courtside/internal/domain/constants"
	"courtside/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderParams holds dependencies for the identity provider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Tokens service.TokenService
}

// NewProvider creates an IdentityProvider based on configuration
func NewProvider(params ProviderParams) (service.IdentityProvider, error) {
	cfg := params.Config.Identity
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Identity provider not configured, using in-memory provider")

		return NewMemoryProvider(params.Tokens), nil
	}

	switch cfg.Provider {
	case constants.IdentityProviderREST:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for rest provider")
		}
		logger.Info("Using REST identity provider",
			slog.String("endpoint", cfg.Endpoint),
		)

		return NewRESTProvider(cfg.Endpoint, cfg.APIKey, logger), nil

	case constants.IdentityProviderFirebase:
		if cfg.CredentialsPath == "" {
			return nil, errors.New("credentials path is required for firebase provider")
		}
		logger.Info("Using Firebase identity provider",
			slog.String("project_id", cfg.ProjectID),
		)

		return NewFirebaseProvider(params.Ctx, cfg.ProjectID, cfg.CredentialsPath, logger)

	case constants.IdentityProviderMemory:
		return NewMemoryProvider(params.Tokens), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Provider)
	}
}
