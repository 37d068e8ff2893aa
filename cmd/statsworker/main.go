package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"eats/config"
	"eats/internal/delivery"
	"eats/internal/delivery/worker"
	"eats/internal/delivery/worker/handler"
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
		injectHandler(),
		injectDelivery(),
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
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			// The worker consumes events and never republishes them
			pubsub.NewNoopPublisher,
			impl.NewAnalyticsService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
