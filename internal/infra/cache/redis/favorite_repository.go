package redis

import (
	"context"
	"encoding/json"

	"eats/config"
	"eats/internal/domain/repository"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

// favoriteRepository stores the favorite IDs as one JSON array.
type favoriteRepository struct {
	client goredis.UniversalClient
	key    string
}

func NewFavoriteRepository(client goredis.UniversalClient, cfg *config.Config) repository.FavoriteRepository {
	return &favoriteRepository{client: client, key: cfg.Favorites.Key}
}

func (repo *favoriteRepository) Load(ctx context.Context) ([]string, error) {
	raw, err := repo.client.Get(ctx, repo.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read favorites")
	}

	ids := []string{}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, errors.Wrap(err, "failed to decode favorites")
	}
	if ids == nil {
		ids = []string{}
	}

	return ids, nil
}

func (repo *favoriteRepository) Store(ctx context.Context, ids []string) error {
	if ids == nil {
		ids = []string{}
	}

	raw, err := json.Marshal(ids)
	if err != nil {
		return errors.Wrap(err, "failed to encode favorites")
	}

	if err := repo.client.Set(ctx, repo.key, raw, 0).Err(); err != nil {
		return errors.Wrap(err, "failed to write favorites")
	}

	return nil
}
