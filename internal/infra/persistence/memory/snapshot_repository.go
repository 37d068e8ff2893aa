package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"eats/config"
	"eats/internal/domain/entity"
	"eats/internal/domain/repository"

	"github.com/pkg/errors"
)

type snapshotRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	catalog []*entity.Restaurant
	expires time.Time
}

// NewCatalogSnapshotRepository keeps the last catalog in process for catalog.snapshotTTL.
func NewCatalogSnapshotRepository(cfg *config.Config) repository.CatalogSnapshotRepository {
	return &snapshotRepository{ttl: cfg.Catalog.SnapshotTTL, now: time.Now}
}

func (repo *snapshotRepository) SaveSnapshot(_ context.Context, catalog []*entity.Restaurant) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.catalog = slices.Clone(catalog)
	repo.expires = repo.now().Add(repo.ttl)

	return nil
}

func (repo *snapshotRepository) LoadSnapshot(_ context.Context) ([]*entity.Restaurant, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if repo.catalog == nil || repo.now().After(repo.expires) {
		return nil, errors.WithStack(repository.ErrSnapshotNotFound)
	}

	return slices.Clone(repo.catalog), nil
}
