package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"eats/internal/domain/discovery"
	"eats/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Fixture(t *testing.T) {
	t.Parallel()

	restaurants, err := Load("")
	require.NoError(t, err)
	require.Len(t, restaurants, 7)

	islands := make(map[entity.Island]int)
	for _, r := range restaurants {
		islands[r.Island]++
		assert.True(t, r.Island.Valid(), r.ID)
		assert.True(t, r.PriceLevel.Valid(), r.ID)
		assert.NotEmpty(t, r.Menu, r.ID)
		for _, tag := range r.Features {
			assert.Contains(t, entity.Features, tag, r.ID)
		}
		for _, tag := range r.DietaryOptions {
			assert.Contains(t, entity.DietaryOptions, tag, r.ID)
		}
		for _, cuisine := range r.Cuisine {
			assert.Contains(t, entity.Cuisines, cuisine, r.ID)
		}
	}
	assert.Len(t, islands, 4)
}

func TestLoad_FixtureWorksWithDiscovery(t *testing.T) {
	t.Parallel()

	restaurants, err := Load("")
	require.NoError(t, err)

	// Wednesday 12:00 in the islands.
	noon := time.Date(2024, time.June, 12, 12, 0, 0, 0, time.FixedZone("AST", -4*60*60))

	tacos := discovery.Filter(restaurants, &entity.SearchFilters{Query: "tacos"}, nil, noon)
	require.Len(t, tacos, 1)
	assert.Equal(t, "Frederiksted Pier Cantina", tacos[0].Name)
	assert.True(t, tacos[0].IsOpen)

	vegan := discovery.Filter(restaurants, &entity.SearchFilters{DietaryOptions: []string{"vegan", "gluten-free"}}, nil, noon)
	require.Len(t, vegan, 1)
	assert.Equal(t, "4", vegan[0].ID)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"a","name":"A","island":"St. John","hours":{"friday":{"open":"10:00","close":"12:00"}}}]`), 0o600))

	restaurants, err := Load(path)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	assert.Equal(t, "10:00", restaurants[0].Hours.Day(time.Friday).Open)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{`},
		{name: "missing id", data: `[{"name":"No ID"}]`},
		{name: "duplicate id", data: `[{"id":"1"},{"id":"1"}]`},
		{name: "misspelled day", data: `[{"id":"1","hours":{"wensday":{"open":"10:00","close":"12:00"}}}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
