package redis

import (
	"context"
	"encoding/json"
	"time"

	"eats/config"
	"eats/internal/domain/entity"
	"eats/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

type snapshotRepository struct {
	client goredis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewCatalogSnapshotRepository stores the catalog under catalog.snapshotKey with catalog.snapshotTTL.
func NewCatalogSnapshotRepository(client goredis.UniversalClient, cfg *config.Config) repository.CatalogSnapshotRepository {
	return &snapshotRepository{
		client: client,
		key:    cfg.Catalog.SnapshotKey,
		ttl:    cfg.Catalog.SnapshotTTL,
	}
}

func (repo *snapshotRepository) SaveSnapshot(ctx context.Context, catalog []*entity.Restaurant) error {
	raw, err := json.Marshal(catalog)
	if err != nil {
		return errors.Wrap(err, "failed to encode catalog snapshot")
	}

	if err := repo.client.Set(ctx, repo.key, raw, repo.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to write catalog snapshot")
	}

	return nil
}

func (repo *snapshotRepository) LoadSnapshot(ctx context.Context) ([]*entity.Restaurant, error) {
	raw, err := repo.client.Get(ctx, repo.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, errors.WithStack(repository.ErrSnapshotNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog snapshot")
	}

	var catalog []*entity.Restaurant
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog snapshot")
	}

	return catalog, nil
}
