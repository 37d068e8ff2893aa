// Package discovery narrows and orders the restaurant catalog for a diner.
//
// Every function here is pure: the catalog is only read, derived fields live
// on fresh listing values, and the clock and the diner's location are passed
// in. Concurrent calls need no coordination.
package discovery

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/geo"
	"eats/internal/domain/schedule"
)

// UnknownDistance orders listings without a distance after every real one.
const UnknownDistance = 999.0

// Derive builds the listing of one restaurant at the given instant. Distance
// is left nil when origin is nil.
func Derive(r *entity.Restaurant, origin *entity.Coordinates, now time.Time) *entity.RestaurantListing {
	listing := &entity.RestaurantListing{
		Restaurant: r,
		IsOpen:     schedule.IsOpen(r.Hours, now),
	}

	if origin != nil {
		distance := geo.Distance(origin.Point(), r.Location.Coordinates.Point())
		listing.Distance = &distance
	}

	return listing
}

// Filter applies filters to the catalog and returns the matching listings.
// With a known origin the result is sorted by ascending distance, otherwise
// catalog order is kept. A nil filters value matches everything.
func Filter(catalog []*entity.Restaurant, filters *entity.SearchFilters, origin *entity.Coordinates, now time.Time) []*entity.RestaurantListing {
	if filters == nil {
		filters = &entity.SearchFilters{}
	}
	query := strings.ToLower(filters.Query)

	results := make([]*entity.RestaurantListing, 0, len(catalog))
	for _, r := range catalog {
		if r == nil {
			continue
		}

		listing := Derive(r, origin, now)
		if !matches(listing, filters, query) {
			continue
		}
		results = append(results, listing)
	}

	if origin != nil {
		slices.SortStableFunc(results, func(a, b *entity.RestaurantListing) int {
			return cmp.Compare(sortDistance(a), sortDistance(b))
		})
	}

	return results
}

// Find returns the listing of the restaurant with the given id.
func Find(catalog []*entity.Restaurant, id string, origin *entity.Coordinates, now time.Time) (*entity.RestaurantListing, error) {
	for _, r := range catalog {
		if r != nil && r.ID == id {
			return Derive(r, origin, now), nil
		}
	}

	return nil, domainerrors.ErrRestaurantNotFound
}

func matches(listing *entity.RestaurantListing, filters *entity.SearchFilters, query string) bool {
	r := listing.Restaurant

	if query != "" && !matchesQuery(r, query) {
		return false
	}
	if filters.Island != "" && r.Island != filters.Island {
		return false
	}
	if filters.Cuisine != "" && !slices.Contains(r.Cuisine, filters.Cuisine) {
		return false
	}
	if len(filters.PriceLevels) > 0 && !slices.Contains(filters.PriceLevels, r.PriceLevel) {
		return false
	}
	if !containsAll(r.Features, filters.Features) {
		return false
	}
	if !containsAll(r.DietaryOptions, filters.DietaryOptions) {
		return false
	}
	if filters.OpenNow && !listing.IsOpen {
		return false
	}

	return true
}

// matchesQuery expects query already lowercased.
func matchesQuery(r *entity.Restaurant, query string) bool {
	if containsFold(r.Name, query) || containsFold(r.Description, query) {
		return true
	}
	for _, cuisine := range r.Cuisine {
		if containsFold(cuisine, query) {
			return true
		}
	}
	for _, category := range r.Menu {
		for _, item := range category.Items {
			if containsFold(item.Name, query) || containsFold(item.Description, query) {
				return true
			}
		}
	}

	return false
}

func containsFold(text, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(text), lowerQuery)
}

func containsAll(have, want []string) bool {
	for _, tag := range want {
		if !slices.Contains(have, tag) {
			return false
		}
	}

	return true
}

func sortDistance(listing *entity.RestaurantListing) float64 {
	if listing.Distance == nil || math.IsNaN(*listing.Distance) {
		return UnknownDistance
	}

	return *listing.Distance
}
