// Package redis keeps favorites and the catalog snapshot in a key-value store.
package redis

import (
	"context"
	"log/slog"

	"eats/config"
	"eats/internal/domain/lifecycle"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the Redis client. The connection is verified on start.
func New(params Params) (*goredis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil {
		return nil, errors.New("redis is not configured")
	}

	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
