package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"eats/config"
	"eats/internal/delivery"
	"eats/internal/delivery/http"
	"eats/internal/delivery/http/middleware"
	"eats/internal/delivery/http/router/handler"
	"eats/internal/infra/auth"
	logs "eats/internal/infra/log"
	"eats/internal/infra/persistence"
	"eats/internal/infra/pubsub"
	"eats/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		impl.NewClock,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
			persistence.NewCacheRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			pubsub.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDiscoveryService,
			impl.NewFavoriteService,
			impl.NewOwnerService,
			impl.NewSpecialHoursService,
			impl.NewReportService,
			impl.NewAnalyticsService,
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
			handler.NewRestaurantHandler,
			handler.NewFavoriteHandler,
			handler.NewOwnerHandler,
			handler.NewModerationHandler,
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

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
