// Package catalog loads the restaurant catalog shipped with the service.
package catalog

import (
	_ "embed"
	"encoding/json"
	"os"

	"eats/internal/domain/entity"

	"github.com/pkg/errors"
)

//go:embed restaurants.json
var fixture []byte

// Load reads the catalog file at path, or the embedded fixture when path is empty.
func Load(path string) ([]*entity.Restaurant, error) {
	if path == "" {
		return Parse(fixture)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read catalog %s", path)
	}

	return Parse(data)
}

// Parse decodes a JSON catalog and checks that every restaurant has a unique ID.
func Parse(data []byte) ([]*entity.Restaurant, error) {
	var restaurants []*entity.Restaurant
	if err := json.Unmarshal(data, &restaurants); err != nil {
		return nil, errors.Wrap(err, "decode catalog")
	}

	seen := make(map[string]struct{}, len(restaurants))
	for i, r := range restaurants {
		if r == nil || r.ID == "" {
			return nil, errors.Errorf("catalog entry %d has no id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, errors.Errorf("duplicate restaurant id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
	}

	return restaurants, nil
}
