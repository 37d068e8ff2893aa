package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	mockRepo "eats/internal/mocks/repository"
	"eats/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type discoveryServiceFixtures struct {
	service        usecase.DiscoveryUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	snapshotRepo   *mockRepo.MockCatalogSnapshotRepository
}

func createTestDiscoveryService(t *testing.T) discoveryServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	snapshotRepo := mockRepo.NewMockCatalogSnapshotRepository(t)

	service := NewDiscoveryService(DiscoveryServiceParams{
		RestaurantRepo: restaurantRepo,
		SnapshotRepo:   snapshotRepo,
		Clock:          fixedClock(testNow),
		Logger:         discardLogger(),
	})

	return discoveryServiceFixtures{
		service:        service,
		restaurantRepo: restaurantRepo,
		snapshotRepo:   snapshotRepo,
	}
}

func TestDiscoveryService_Search_FiltersAndSavesSnapshot(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	catalog := []*entity.Restaurant{
		sampleRestaurant("1", entity.IslandStThomas),
		sampleRestaurant("2", entity.IslandStJohn),
	}

	fx.restaurantRepo.EXPECT().FindAll(ctx).Return(catalog, nil)
	fx.snapshotRepo.EXPECT().SaveSnapshot(ctx, catalog).Return(nil)

	listings, err := fx.service.Search(ctx, &entity.SearchFilters{Island: entity.IslandStJohn, OpenNow: true}, nil)

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "2", listings[0].ID)
	assert.True(t, listings[0].IsOpen)
	assert.Nil(t, listings[0].Distance)
}

func TestDiscoveryService_Search_SnapshotWriteFailureIsIgnored(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	catalog := []*entity.Restaurant{sampleRestaurant("1", entity.IslandStThomas)}

	fx.restaurantRepo.EXPECT().FindAll(ctx).Return(catalog, nil)
	fx.snapshotRepo.EXPECT().SaveSnapshot(ctx, catalog).Return(errors.New("redis down"))

	listings, err := fx.service.Search(ctx, nil, nil)

	require.NoError(t, err)
	assert.Len(t, listings, 1)
}

func TestDiscoveryService_Search_FallsBackToSnapshot(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	snapshot := []*entity.Restaurant{sampleRestaurant("7", entity.IslandWaterIsland)}

	fx.restaurantRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))
	fx.snapshotRepo.EXPECT().LoadSnapshot(ctx).Return(snapshot, nil)

	origin := &entity.Coordinates{Latitude: 18.32, Longitude: -64.95}
	listings, err := fx.service.Search(ctx, &entity.SearchFilters{}, origin)

	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "7", listings[0].ID)
	assert.NotNil(t, listings[0].Distance)
}

func TestDiscoveryService_Search_CatalogUnavailable(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().FindAll(ctx).Return(nil, errors.New("connection refused"))
	fx.snapshotRepo.EXPECT().LoadSnapshot(ctx).Return(nil, repository.ErrSnapshotNotFound)

	listings, err := fx.service.Search(ctx, nil, nil)

	assert.Nil(t, listings)
	assert.ErrorIs(t, err, domainerrors.ErrCatalogUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestDiscoveryService_GetRestaurant(t *testing.T) {
	fx := createTestDiscoveryService(t)

	ctx := context.Background()
	catalog := []*entity.Restaurant{
		sampleRestaurant("1", entity.IslandStThomas),
		sampleRestaurant("2", entity.IslandStJohn),
	}

	fx.restaurantRepo.EXPECT().FindAll(ctx).Return(catalog, nil).Times(2)
	fx.snapshotRepo.EXPECT().SaveSnapshot(ctx, catalog).Return(nil).Times(2)

	listing, err := fx.service.GetRestaurant(ctx, "2", nil)
	require.NoError(t, err)
	assert.Same(t, catalog[1], listing.Restaurant)

	listing, err = fx.service.GetRestaurant(ctx, "99", nil)
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestDiscoveryService_Facets(t *testing.T) {
	fx := createTestDiscoveryService(t)

	facets := fx.service.Facets(context.Background())

	assert.Len(t, facets.Islands, 4)
	assert.Contains(t, facets.Cuisines, "Bar & Grill")
	assert.Equal(t, []entity.PriceLevel{entity.PriceBudget, entity.PriceModerate, entity.PriceUpscale}, facets.PriceLevels)
}
