// Package persistence selects the repository implementations from configuration.
package persistence

import (
	"context"
	"log/slog"

	"eats/config"
	"eats/internal/domain/lifecycle"
	"eats/internal/domain/repository"
	"eats/internal/infra/cache/redis"
	"eats/internal/infra/catalog"
	"eats/internal/infra/persistence/memory"
	"eats/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories are the stores behind the catalog and owner features.
type Repositories struct {
	fx.Out

	Restaurants  repository.RestaurantRepository
	Reports      repository.ReportRepository
	SpecialHours repository.SpecialHoursRepository
	Analytics    repository.AnalyticsRepository
}

// NewRepositories uses PostgreSQL when it is configured and the fixture catalog in memory otherwise.
func NewRepositories(params Params) (Repositories, error) {
	cfg := params.Config

	if cfg.Postgres == nil {
		restaurants, err := catalog.Load(cfg.Catalog.SeedPath)
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using in-memory catalog", slog.Int("restaurants", len(restaurants)))

		return Repositories{
			Restaurants:  memory.NewRestaurantRepository(restaurants),
			Reports:      memory.NewReportRepository(),
			SpecialHours: memory.NewSpecialHoursRepository(),
			Analytics:    memory.NewAnalyticsRepository(),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    cfg,
		Logger:    params.Logger,
	})
	if err != nil {
		return Repositories{}, err
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if cfg.Catalog.AutoMigrate {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
			}

			if !cfg.Catalog.SeedOnEmpty {
				return nil
			}

			restaurants, err := catalog.Load(cfg.Catalog.SeedPath)
			if err != nil {
				return errors.Wrap(err, "load seed catalog")
			}
			_, err = postgres.SeedRestaurants(ctx, db, params.Logger, restaurants)

			return err
		},
	})

	return Repositories{
		Restaurants:  postgres.NewRestaurantRepository(db),
		Reports:      postgres.NewReportRepository(db),
		SpecialHours: postgres.NewSpecialHoursRepository(db),
		Analytics:    postgres.NewAnalyticsRepository(db),
	}, nil
}

// CacheRepositories are the key-value stores.
type CacheRepositories struct {
	fx.Out

	Favorites repository.FavoriteRepository
	Snapshots repository.CatalogSnapshotRepository
}

// NewCacheRepositories uses Redis when it is configured and process memory otherwise.
func NewCacheRepositories(params Params) (CacheRepositories, error) {
	cfg := params.Config

	if cfg.Redis == nil {
		return CacheRepositories{
			Favorites: memory.NewFavoriteRepository(),
			Snapshots: memory.NewCatalogSnapshotRepository(cfg),
		}, nil
	}

	client, err := redis.New(redis.Params{
		Lifecycle: params.Lifecycle,
		Config:    cfg,
		Logger:    params.Logger,
	})
	if err != nil {
		return CacheRepositories{}, err
	}

	return CacheRepositories{
		Favorites: redis.NewFavoriteRepository(client, cfg),
		Snapshots: redis.NewCatalogSnapshotRepository(client, cfg),
	}, nil
}
