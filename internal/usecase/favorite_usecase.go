package usecase

import (
	"context"

	"eats/internal/domain/entity"
)

// FavoriteUsecase manages the diner's saved restaurants.
type FavoriteUsecase interface {
	List(ctx context.Context) ([]string, error)

	// Toggle adds the restaurant when absent and removes it otherwise. It
	// returns the updated set and whether the restaurant was added.
	Toggle(ctx context.Context, restaurantID string) (favorites []string, added bool, err error)

	IsFavorite(ctx context.Context, restaurantID string) (bool, error)

	// Restaurants is the favorites view: search results restricted to the saved set.
	Restaurants(ctx context.Context, filters *entity.SearchFilters, origin *entity.Coordinates) ([]*entity.RestaurantListing, error)
}
