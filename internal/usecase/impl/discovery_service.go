// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"eats/internal/domain/discovery"
	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type DiscoveryServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	SnapshotRepo   repository.CatalogSnapshotRepository
	Clock          Clock
	Logger         *slog.Logger
}

type discoveryService struct {
	restaurantRepo repository.RestaurantRepository
	snapshotRepo   repository.CatalogSnapshotRepository
	clock          Clock
	logger         *slog.Logger
}

// NewDiscoveryService is the constructor for discoveryService.
func NewDiscoveryService(params DiscoveryServiceParams) usecase.DiscoveryUsecase {
	return &discoveryService{
		restaurantRepo: params.RestaurantRepo,
		snapshotRepo:   params.SnapshotRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *discoveryService) Search(ctx context.Context, filters *entity.SearchFilters, origin *entity.Coordinates) ([]*entity.RestaurantListing, error) {
	catalog, err := srv.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	return discovery.Filter(catalog, filters, origin, srv.clock()), nil
}

func (srv *discoveryService) GetRestaurant(ctx context.Context, id string, origin *entity.Coordinates) (*entity.RestaurantListing, error) {
	catalog, err := srv.loadCatalog(ctx)
	if err != nil {
		return nil, err
	}

	listing, err := discovery.Find(catalog, id, origin, srv.clock())
	if err != nil {
		return nil, errors.Wrapf(err, "restaurant %s", id)
	}

	return listing, nil
}

func (srv *discoveryService) Facets(_ context.Context) entity.Facets {
	return entity.DefaultFacets()
}

// loadCatalog reads the catalog source and refreshes the snapshot. When the
// source fails, the last snapshot is served instead.
func (srv *discoveryService) loadCatalog(ctx context.Context) ([]*entity.Restaurant, error) {
	catalog, err := srv.restaurantRepo.FindAll(ctx)
	if err == nil {
		if saveErr := srv.snapshotRepo.SaveSnapshot(ctx, catalog); saveErr != nil {
			srv.logger.Warn("Failed to save catalog snapshot", slog.Any("error", saveErr))
		}

		return catalog, nil
	}

	snapshot, snapErr := srv.snapshotRepo.LoadSnapshot(ctx)
	if snapErr != nil {
		if !errors.Is(snapErr, repository.ErrSnapshotNotFound) {
			srv.logger.Warn("Failed to load catalog snapshot", slog.Any("error", snapErr))
		}

		return nil, errors.Wrapf(domainerrors.ErrCatalogUnavailable, "find restaurants: %v", err)
	}

	srv.logger.Warn("Serving catalog snapshot", slog.Any("error", err), slog.Int("restaurants", len(snapshot)))

	return snapshot, nil
}
