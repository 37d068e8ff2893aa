// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrRestaurantNotFound is returned when no restaurant has the requested ID.
	ErrRestaurantNotFound = errors.New("restaurant not found")
	// ErrSnapshotNotFound is returned when no catalog snapshot is cached.
	ErrSnapshotNotFound = errors.New("catalog snapshot not found")
)

// RestaurantRepository is the catalog source.
type RestaurantRepository interface {
	// FindAll returns every restaurant in catalog order.
	FindAll(ctx context.Context) ([]*entity.Restaurant, error)

	// FindByID returns one restaurant.
	FindByID(ctx context.Context, id string) (*entity.Restaurant, error)

	// Save replaces the stored restaurant with the same ID.
	Save(ctx context.Context, restaurant *entity.Restaurant) error
}

// CatalogSnapshotRepository keeps the last catalog read for reuse while the
// catalog source is unreachable.
type CatalogSnapshotRepository interface {
	// SaveSnapshot stores the catalog, replacing any previous snapshot.
	SaveSnapshot(ctx context.Context, catalog []*entity.Restaurant) error

	// LoadSnapshot returns the stored catalog or ErrSnapshotNotFound.
	LoadSnapshot(ctx context.Context) ([]*entity.Restaurant, error)
}
