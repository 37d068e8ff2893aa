package discovery

import (
	"math"
	"testing"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = &entity.Coordinates{Latitude: 18.0, Longitude: -65.0}

// milesNorth places a point the given distance due north of origin.
func milesNorth(miles float64) entity.Coordinates {
	degreesPerMile := 360 / (2 * math.Pi * geo.EarthRadiusMiles)

	return entity.Coordinates{Latitude: origin.Latitude + miles*degreesPerMile, Longitude: origin.Longitude}
}

// 2024-06-12 is a Wednesday.
func wednesdayAt(hour, minute int) time.Time {
	return time.Date(2024, time.June, 12, hour, minute, 0, 0, time.UTC)
}

func wednesdayHours(open, close string) entity.WeeklySchedule {
	var week entity.WeeklySchedule
	week[time.Wednesday] = &entity.DaySchedule{Open: open, Close: close}

	return week
}

func restaurant(id string, island entity.Island, miles float64, hours entity.WeeklySchedule) *entity.Restaurant {
	return &entity.Restaurant{
		ID:         id,
		Name:       "Restaurant " + id,
		Island:     island,
		PriceLevel: entity.PriceModerate,
		Location:   entity.Location{Coordinates: milesNorth(miles)},
		Hours:      hours,
	}
}

func ids(listings []*entity.RestaurantListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}

	return out
}

func scenarioCatalog() []*entity.Restaurant {
	var closedWednesday entity.WeeklySchedule
	closedWednesday[time.Wednesday] = &entity.DaySchedule{Closed: true}

	return []*entity.Restaurant{
		restaurant("C", entity.IslandStThomas, 5.0, wednesdayHours("09:00", "17:00")),
		restaurant("B", entity.IslandStJohn, 1.0, closedWednesday),
		restaurant("A", entity.IslandStThomas, 2.0, wednesdayHours("11:00", "22:00")),
	}
}

func TestFilter_Scenario(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters *entity.SearchFilters
		at      time.Time
		want    []string
	}{
		{
			name:    "st thomas open at 14:00",
			filters: &entity.SearchFilters{Island: entity.IslandStThomas, OpenNow: true},
			at:      wednesdayAt(14, 0),
			want:    []string{"A", "C"},
		},
		{
			name:    "st thomas open at 20:00",
			filters: &entity.SearchFilters{Island: entity.IslandStThomas, OpenNow: true},
			at:      wednesdayAt(20, 0),
			want:    []string{"A"},
		},
		{
			name:    "st thomas open at 23:00",
			filters: &entity.SearchFilters{Island: entity.IslandStThomas, OpenNow: true},
			at:      wednesdayAt(23, 0),
			want:    []string{},
		},
		{
			name:    "any island open at 14:00",
			filters: &entity.SearchFilters{OpenNow: true},
			at:      wednesdayAt(14, 0),
			want:    []string{"A", "C"},
		},
		{
			name:    "no filters sorts everything by distance",
			filters: &entity.SearchFilters{},
			at:      wednesdayAt(14, 0),
			want:    []string{"B", "A", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(scenarioCatalog(), tt.filters, origin, tt.at)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_DerivedFields(t *testing.T) {
	t.Parallel()

	got := Filter(scenarioCatalog(), nil, origin, wednesdayAt(14, 0))
	require.Len(t, got, 3)

	byID := make(map[string]*entity.RestaurantListing)
	for _, l := range got {
		byID[l.ID] = l
	}

	assert.True(t, byID["A"].IsOpen)
	assert.False(t, byID["B"].IsOpen)
	assert.True(t, byID["C"].IsOpen)
	require.NotNil(t, byID["A"].Distance)
	assert.InDelta(t, 2.0, *byID["A"].Distance, 1e-6)
	assert.InDelta(t, 5.0, *byID["C"].Distance, 1e-6)
}

func TestFilter_WithoutOriginKeepsCatalogOrder(t *testing.T) {
	t.Parallel()

	got := Filter(scenarioCatalog(), &entity.SearchFilters{}, nil, wednesdayAt(14, 0))

	assert.Equal(t, []string{"C", "B", "A"}, ids(got))
	for _, l := range got {
		assert.Nil(t, l.Distance)
	}
}

func TestFilter_Query(t *testing.T) {
	t.Parallel()

	tacos := restaurant("tacos", entity.IslandStCroix, 1, nil)
	tacos.Name = "Cruzan Cantina"
	tacos.Cuisine = []string{"Mexican"}
	tacos.Description = "Margaritas by the boardwalk"
	tacos.Menu = []entity.MenuCategory{{
		ID:   "mains",
		Name: "Mains",
		Items: []entity.MenuItem{
			{ID: "1", Name: "Fish Tacos", Price: "$16"},
			{ID: "2", Name: "Quesadilla", Description: "With roasted PEPPERS", Price: "$12"},
		},
	}}

	grill := restaurant("grill", entity.IslandStThomas, 2, nil)
	grill.Name = "Harbor Grill"
	grill.Cuisine = []string{"Bar & Grill", "Seafood"}
	grill.Description = "Burgers and sunsets"

	catalog := []*entity.Restaurant{tacos, grill}

	tests := []struct {
		query string
		want  []string
	}{
		{query: "fish", want: []string{"tacos"}},
		{query: "FISH", want: []string{"tacos"}},
		{query: "peppers", want: []string{"tacos"}},
		{query: "harbor", want: []string{"grill"}},
		{query: "seafood", want: []string{"grill"}},
		{query: "sunsets", want: []string{"grill"}},
		{query: "boardwalk", want: []string{"tacos"}},
		{query: "r", want: []string{"tacos", "grill"}},
		{query: "sushi", want: []string{}},
		{query: "", want: []string{"tacos", "grill"}},
	}

	for _, tt := range tests {
		t.Run("query "+tt.query, func(t *testing.T) {
			t.Parallel()

			got := Filter(catalog, &entity.SearchFilters{Query: tt.query}, nil, wednesdayAt(12, 0))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_TagFilters(t *testing.T) {
	t.Parallel()

	beach := restaurant("beach", entity.IslandStJohn, 1, nil)
	beach.Cuisine = []string{"Caribbean", "Seafood"}
	beach.PriceLevel = entity.PriceUpscale
	beach.Features = []string{"waterfront", "parking", "live-music"}
	beach.DietaryOptions = []string{"vegan", "gluten-free"}

	cafe := restaurant("cafe", entity.IslandStJohn, 2, nil)
	cafe.Cuisine = []string{"Bakery"}
	cafe.PriceLevel = entity.PriceBudget
	cafe.Features = []string{"wifi", "parking"}
	cafe.DietaryOptions = []string{"vegan"}

	catalog := []*entity.Restaurant{beach, cafe}

	tests := []struct {
		name    string
		filters *entity.SearchFilters
		want    []string
	}{
		{
			name:    "cuisine exact match",
			filters: &entity.SearchFilters{Cuisine: "Caribbean"},
			want:    []string{"beach"},
		},
		{
			name:    "cuisine is case sensitive",
			filters: &entity.SearchFilters{Cuisine: "caribbean"},
			want:    []string{},
		},
		{
			name:    "price set membership",
			filters: &entity.SearchFilters{PriceLevels: []entity.PriceLevel{entity.PriceBudget, entity.PriceModerate}},
			want:    []string{"cafe"},
		},
		{
			name:    "shared feature",
			filters: &entity.SearchFilters{Features: []string{"parking"}},
			want:    []string{"beach", "cafe"},
		},
		{
			name:    "features need all tags",
			filters: &entity.SearchFilters{Features: []string{"parking", "wifi"}},
			want:    []string{"cafe"},
		},
		{
			name:    "features missing one tag",
			filters: &entity.SearchFilters{Features: []string{"waterfront", "wifi"}},
			want:    []string{},
		},
		{
			name:    "dietary needs all tags",
			filters: &entity.SearchFilters{DietaryOptions: []string{"vegan", "gluten-free"}},
			want:    []string{"beach"},
		},
		{
			name:    "island mismatch",
			filters: &entity.SearchFilters{Island: entity.IslandWaterIsland},
			want:    []string{},
		},
		{
			name: "every filter combined",
			filters: &entity.SearchFilters{
				Island:         entity.IslandStJohn,
				Cuisine:        "Seafood",
				PriceLevels:    []entity.PriceLevel{entity.PriceUpscale},
				Features:       []string{"live-music"},
				DietaryOptions: []string{"vegan"},
			},
			want: []string{"beach"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(catalog, tt.filters, nil, wednesdayAt(12, 0))
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_UnknownDistanceSortsAsSentinel(t *testing.T) {
	t.Parallel()

	lostA := restaurant("lost-a", entity.IslandStCroix, 0, nil)
	lostA.Location.Coordinates = entity.Coordinates{Latitude: math.NaN(), Longitude: math.NaN()}
	lostB := restaurant("lost-b", entity.IslandStCroix, 0, nil)
	lostB.Location.Coordinates = entity.Coordinates{Latitude: math.NaN(), Longitude: math.NaN()}

	catalog := []*entity.Restaurant{
		lostA,
		restaurant("far", entity.IslandStCroix, 1500, nil),
		lostB,
		restaurant("near", entity.IslandStCroix, 3, nil),
		restaurant("here", entity.IslandStCroix, 0, nil),
	}

	got := Filter(catalog, nil, origin, wednesdayAt(12, 0))

	assert.Equal(t, []string{"here", "near", "lost-a", "lost-b", "far"}, ids(got))
}

func TestFilter_IsIdempotentAndLeavesCatalogUntouched(t *testing.T) {
	t.Parallel()

	catalog := scenarioCatalog()
	snapshot := make([]*entity.Restaurant, len(catalog))
	for i, r := range catalog {
		snapshot[i] = r.Clone()
	}

	filters := &entity.SearchFilters{OpenNow: true}
	first := Filter(catalog, filters, origin, wednesdayAt(14, 0))
	second := Filter(catalog, filters, origin, wednesdayAt(14, 0))

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, catalog)
	assert.Equal(t, []string{"C", "B", "A"}, []string{catalog[0].ID, catalog[1].ID, catalog[2].ID})
}

func TestFilter_EmptyInputs(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Filter(nil, nil, origin, wednesdayAt(12, 0)))
	assert.Empty(t, Filter([]*entity.Restaurant{nil}, nil, nil, wednesdayAt(12, 0)))
}

func TestFind(t *testing.T) {
	t.Parallel()

	catalog := scenarioCatalog()

	listing, err := Find(catalog, "A", origin, wednesdayAt(14, 0))
	require.NoError(t, err)
	assert.Same(t, catalog[2], listing.Restaurant)
	assert.True(t, listing.IsOpen)
	require.NotNil(t, listing.Distance)
	assert.InDelta(t, 2.0, *listing.Distance, 1e-6)

	listing, err = Find(catalog, "missing", origin, wednesdayAt(14, 0))
	assert.Nil(t, listing)
	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestDerive_WithoutOrigin(t *testing.T) {
	t.Parallel()

	r := restaurant("A", entity.IslandStThomas, 2, wednesdayHours("11:00", "22:00"))

	listing := Derive(r, nil, wednesdayAt(10, 0))

	assert.Nil(t, listing.Distance)
	assert.False(t, listing.IsOpen)
	assert.Same(t, r, listing.Restaurant)
}
