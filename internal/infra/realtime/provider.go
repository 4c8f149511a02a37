package realtime

import (
	"context"
	"log/slog"

	"courtside/config"
	"courtside/internal/domain/constants"
	"courtside/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StreamParams holds dependencies for the change stream, injected by Fx
type StreamParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewChangeStream creates a ChangeStream based on configuration
func NewChangeStream(params StreamParams) (service.ChangeStream, error) {
	cfg := params.Config.Realtime
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("Realtime transport not configured, using in-process bus")

		return NewMemoryBus(), nil
	}

	switch cfg.Provider {
	case constants.RealtimeProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}

		stream, closeFn, err := NewGoogleChangeStream(params.Ctx, cfg.ProjectID, cfg.SubscriptionPrefix, logger)
		if err != nil {
			return nil, err
		}

		params.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return closeFn()
			},
		})

		return stream, nil

	case constants.RealtimeProviderMemory:
		return NewMemoryBus(), nil

	default:
		return nil, errors.Errorf("unknown realtime provider: %s", cfg.Provider)
	}
}
