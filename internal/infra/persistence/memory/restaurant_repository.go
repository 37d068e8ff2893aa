// Package memory holds process-local repositories used when no database is configured.
package memory

import (
	"context"
	"sync"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"

	"github.com/pkg/errors"
)

type restaurantRepository struct {
	mu          sync.RWMutex
	restaurants []*entity.Restaurant
	index       map[string]int
}

// NewRestaurantRepository serves the given catalog. Stored values are copies.
func NewRestaurantRepository(catalog []*entity.Restaurant) repository.RestaurantRepository {
	repo := &restaurantRepository{
		restaurants: make([]*entity.Restaurant, 0, len(catalog)),
		index:       make(map[string]int, len(catalog)),
	}
	for _, r := range catalog {
		repo.index[r.ID] = len(repo.restaurants)
		repo.restaurants = append(repo.restaurants, r.Clone())
	}

	return repo
}

// FindAll returns the shared catalog entries; Save never edits them in place.
func (repo *restaurantRepository) FindAll(_ context.Context) ([]*entity.Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	out := make([]*entity.Restaurant, len(repo.restaurants))
	copy(out, repo.restaurants)

	return out, nil
}

func (repo *restaurantRepository) FindByID(_ context.Context, id string) (*entity.Restaurant, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	i, ok := repo.index[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrRestaurantNotFound)
	}

	return repo.restaurants[i], nil
}

func (repo *restaurantRepository) Save(_ context.Context, restaurant *entity.Restaurant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i, ok := repo.index[restaurant.ID]
	if !ok {
		return errors.WithStack(repository.ErrRestaurantNotFound)
	}
	repo.restaurants[i] = restaurant.Clone()

	return nil
}
