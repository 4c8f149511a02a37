package main

import (
	"context"
	"log/slog"
	"os"

	"courtside/config"
	"courtside/internal/delivery"
	"courtside/internal/delivery/http"
	"courtside/internal/delivery/http/middleware"
	"courtside/internal/delivery/http/router/handler"
	"courtside/internal/domain/service"
	"courtside/internal/infra/auth"
	"courtside/internal/infra/identity"
	logs "courtside/internal/infra/log"
	"courtside/internal/infra/persistence/memory"
	"courtside/internal/infra/persistence/postgres"
	"courtside/internal/infra/qrcode"
	"courtside/internal/infra/realtime"
	"courtside/internal/usecase"
	"courtside/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startChangeAggregator,
			startGuard,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			memory.NewAccountStore,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			identity.NewProvider,
			realtime.NewChangeStream,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewProfileService,
			impl.NewNavigationService,
			impl.NewAccountService,
			impl.NewChangeAggregator,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewAccountHandler,
			handler.NewNavigationHandler,
			handler.NewChangeHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

type changeAggregatorParams struct {
	fx.In
	fx.Lifecycle

	Ctx     context.Context
	Changes usecase.ChangeUsecase
}

// startChangeAggregator ties the aggregator's subscriptions to the app lifecycle.
func startChangeAggregator(params changeAggregatorParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			return params.Changes.Start(params.Ctx)
		},
		OnStop: func(context.Context) error {
			return params.Changes.Close()
		},
	})
}

type guardParams struct {
	fx.In
	fx.Lifecycle

	Guard    usecase.NavigationUsecase
	Sessions usecase.SessionUsecase
}

// startGuard resolves the initial session and marks the app ready so the
// guard leaves its deferred state.
func startGuard(params guardParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Guard.OnSessionResolved(params.Sessions.Current(ctx))
			params.Guard.OnAppReady()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
