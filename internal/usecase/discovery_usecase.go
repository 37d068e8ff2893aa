// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"eats/internal/domain/entity"
)

// DiscoveryUsecase serves the filtered catalog to diners.
type DiscoveryUsecase interface {
	// Search returns the restaurants matching filters, nearest first when origin is known.
	Search(ctx context.Context, filters *entity.SearchFilters, origin *entity.Coordinates) ([]*entity.RestaurantListing, error)

	// GetRestaurant returns a single restaurant with its derived fields.
	GetRestaurant(ctx context.Context, id string, origin *entity.Coordinates) (*entity.RestaurantListing, error)

	// Facets returns the values a client can offer as filter controls.
	Facets(ctx context.Context) entity.Facets
}
