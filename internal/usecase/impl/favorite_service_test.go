package impl

import (
	"context"
	"testing"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	mockRepo "eats/internal/mocks/repository"
	mockService "eats/internal/mocks/service"
	mockUsecase "eats/internal/mocks/usecase"
	"eats/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service        usecase.FavoriteUsecase
	favoriteRepo   *mockRepo.MockFavoriteRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
	discovery      *mockUsecase.MockDiscoveryUsecase
	publisher      *mockService.MockEventPublisher
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	discovery := mockUsecase.NewMockDiscoveryUsecase(t)
	publisher := mockService.NewMockEventPublisher(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo:   favoriteRepo,
		RestaurantRepo: restaurantRepo,
		Discovery:      discovery,
		Publisher:      publisher,
		Clock:          fixedClock(testNow),
		Logger:         discardLogger(),
	})

	return favoriteServiceFixtures{
		service:        service,
		favoriteRepo:   favoriteRepo,
		restaurantRepo: restaurantRepo,
		discovery:      discovery,
		publisher:      publisher,
	}
}

func TestFavoriteService_Toggle_Adds(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{"1"}, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, "3").Return(sampleRestaurant("3", entity.IslandStCroix), nil)
	fx.favoriteRepo.EXPECT().Store(ctx, []string{"1", "3"}).Return(nil)
	fx.publisher.EXPECT().
		PublishEngagementEvent(ctx, mock.MatchedBy(func(event *entity.EngagementEvent) bool {
			return event.RestaurantID == "3" && event.Type == entity.EventFavorite && event.OccurredAt.Equal(testNow)
		})).
		Return(nil)

	favorites, added, err := fx.service.Toggle(ctx, "3")

	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"1", "3"}, favorites)
}

func TestFavoriteService_Toggle_Removes(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{"1", "3", "5"}, nil)
	fx.favoriteRepo.EXPECT().Store(ctx, []string{"1", "5"}).Return(nil)

	favorites, added, err := fx.service.Toggle(ctx, "3")

	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, []string{"1", "5"}, favorites)
}

func TestFavoriteService_Toggle_RemovingUnknownRestaurantSucceeds(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	// A restaurant dropped from the catalog can still be unfavorited.
	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{"gone"}, nil)
	fx.favoriteRepo.EXPECT().Store(ctx, []string{}).Return(nil)

	favorites, added, err := fx.service.Toggle(ctx, "gone")

	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, favorites)
}

func TestFavoriteService_Toggle_AddingUnknownRestaurant(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{}, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, "99").Return(nil, repository.ErrRestaurantNotFound)

	favorites, added, err := fx.service.Toggle(ctx, "99")

	assert.Nil(t, favorites)
	assert.False(t, added)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestFavoriteService_Toggle_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return(nil, nil)
	fx.restaurantRepo.EXPECT().FindByID(ctx, "2").Return(sampleRestaurant("2", entity.IslandStJohn), nil)
	fx.favoriteRepo.EXPECT().Store(ctx, []string{"2"}).Return(nil)
	fx.publisher.EXPECT().PublishEngagementEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	favorites, added, err := fx.service.Toggle(ctx, "2")

	require.NoError(t, err)
	assert.True(t, added)
	assert.Equal(t, []string{"2"}, favorites)
}

func TestFavoriteService_Toggle_StoreFailure(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{"1"}, nil)
	fx.favoriteRepo.EXPECT().Store(ctx, []string{}).Return(errors.New("read-only replica"))

	_, _, err := fx.service.Toggle(ctx, "1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only replica")
}

func TestFavoriteService_IsFavorite(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{"1", "4"}, nil).Times(2)

	isFavorite, err := fx.service.IsFavorite(ctx, "4")
	require.NoError(t, err)
	assert.True(t, isFavorite)

	isFavorite, err = fx.service.IsFavorite(ctx, "2")
	require.NoError(t, err)
	assert.False(t, isFavorite)
}

func TestFavoriteService_Restaurants_KeepsSearchOrder(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()
	filters := &entity.SearchFilters{OpenNow: true}
	origin := &entity.Coordinates{Latitude: 18.34, Longitude: -64.93}

	near := &entity.RestaurantListing{Restaurant: sampleRestaurant("3", entity.IslandStThomas)}
	middle := &entity.RestaurantListing{Restaurant: sampleRestaurant("2", entity.IslandStThomas)}
	far := &entity.RestaurantListing{Restaurant: sampleRestaurant("1", entity.IslandStCroix)}

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{"1", "3"}, nil)
	fx.discovery.EXPECT().Search(ctx, filters, origin).Return([]*entity.RestaurantListing{near, middle, far}, nil)

	listings, err := fx.service.Restaurants(ctx, filters, origin)

	require.NoError(t, err)
	assert.Equal(t, []*entity.RestaurantListing{near, far}, listings)
}

func TestFavoriteService_Restaurants_NoFavoritesSkipsSearch(t *testing.T) {
	fx := createTestFavoriteService(t)

	ctx := context.Background()

	fx.favoriteRepo.EXPECT().Load(ctx).Return([]string{}, nil)

	listings, err := fx.service.Restaurants(ctx, nil, nil)

	require.NoError(t, err)
	assert.Empty(t, listings)
}
