package repository

import "context"

// FavoriteRepository is the single key-value slot holding favorite restaurant IDs.
type FavoriteRepository interface {
	// Load returns the stored IDs, or an empty slice when nothing was stored yet.
	Load(ctx context.Context) ([]string, error)

	// Store replaces the stored IDs.
	Store(ctx context.Context, ids []string) error
}
