package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type FavoriteServiceParams struct {
	fx.In

	FavoriteRepo   repository.FavoriteRepository
	RestaurantRepo repository.RestaurantRepository
	Discovery      usecase.DiscoveryUsecase
	Publisher      service.EventPublisher
	Clock          Clock
	Logger         *slog.Logger
}

type favoriteService struct {
	// mu serializes read-modify-write cycles on the favorites slot.
	mu sync.Mutex

	favoriteRepo   repository.FavoriteRepository
	restaurantRepo repository.RestaurantRepository
	discovery      usecase.DiscoveryUsecase
	publisher      service.EventPublisher
	clock          Clock
	logger         *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		favoriteRepo:   params.FavoriteRepo,
		restaurantRepo: params.RestaurantRepo,
		discovery:      params.Discovery,
		publisher:      params.Publisher,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *favoriteService) List(ctx context.Context) ([]string, error) {
	ids, err := srv.favoriteRepo.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	return ids, nil
}

func (srv *favoriteService) Toggle(ctx context.Context, restaurantID string) ([]string, bool, error) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	ids, err := srv.favoriteRepo.Load(ctx)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to load favorites")
	}

	if slices.Contains(ids, restaurantID) {
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == restaurantID })
		if err := srv.favoriteRepo.Store(ctx, ids); err != nil {
			return nil, false, errors.Wrap(err, "failed to store favorites")
		}

		return ids, false, nil
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, false, errors.Wrapf(domainerrors.ErrRestaurantNotFound, "restaurant %s", restaurantID)
		}

		return nil, false, errors.Wrap(err, "failed to find restaurant")
	}

	ids = append(ids, restaurantID)
	if err := srv.favoriteRepo.Store(ctx, ids); err != nil {
		return nil, false, errors.Wrap(err, "failed to store favorites")
	}

	event := &entity.EngagementEvent{
		RestaurantID: restaurantID,
		Type:         entity.EventFavorite,
		OccurredAt:   srv.clock(),
	}
	if err := srv.publisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish favorite event",
			slog.String("restaurantID", restaurantID),
			slog.Any("error", err),
		)
	}

	return ids, true, nil
}

func (srv *favoriteService) IsFavorite(ctx context.Context, restaurantID string) (bool, error) {
	ids, err := srv.List(ctx)
	if err != nil {
		return false, err
	}

	return slices.Contains(ids, restaurantID), nil
}

func (srv *favoriteService) Restaurants(ctx context.Context, filters *entity.SearchFilters, origin *entity.Coordinates) ([]*entity.RestaurantListing, error) {
	ids, err := srv.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*entity.RestaurantListing{}, nil
	}

	listings, err := srv.discovery.Search(ctx, filters, origin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search restaurants")
	}

	saved := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		saved[id] = struct{}{}
	}

	return slices.DeleteFunc(listings, func(l *entity.RestaurantListing) bool {
		_, ok := saved[l.ID]

		return !ok
	}), nil
}
