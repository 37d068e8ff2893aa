package memory

import (
	"context"
	"slices"
	"sync"

	"eats/internal/domain/repository"
)

type favoriteRepository struct {
	mu  sync.Mutex
	ids []string
}

func NewFavoriteRepository() repository.FavoriteRepository {
	return &favoriteRepository{}
}

func (repo *favoriteRepository) Load(_ context.Context) ([]string, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.ids == nil {
		return []string{}, nil
	}

	return slices.Clone(repo.ids), nil
}

func (repo *favoriteRepository) Store(_ context.Context, ids []string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.ids = slices.Clone(ids)
	if repo.ids == nil {
		repo.ids = []string{}
	}

	return nil
}
