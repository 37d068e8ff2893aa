package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"eats/internal/delivery/http/response"
	"eats/internal/domain/entity"
	"eats/internal/util"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// parseSearchFilters reads the search filters from the query string.
// Unknown values are passed through and simply match nothing.
func parseSearchFilters(c echo.Context) *entity.SearchFilters {
	filters := &entity.SearchFilters{
		Query:          c.QueryParam("q"),
		Island:         entity.Island(strings.TrimSpace(c.QueryParam("island"))),
		Cuisine:        strings.TrimSpace(c.QueryParam("cuisine")),
		Features:       splitList(c.QueryParam("features")),
		DietaryOptions: splitList(c.QueryParam("dietary")),
	}

	for _, level := range splitList(c.QueryParam("price")) {
		filters.PriceLevels = append(filters.PriceLevels, entity.PriceLevel(level))
	}

	if openNow, err := strconv.ParseBool(c.QueryParam("openNow")); err == nil {
		filters.OpenNow = openNow
	}

	return filters
}

// parseOrigin reads lat/lng. Missing or unusable coordinates mean the
// caller's location is unknown, which is never an error.
func parseOrigin(c echo.Context) *entity.Coordinates {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil || math.IsNaN(lat) || math.Abs(lat) > 90 {
		return nil
	}

	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil || math.IsNaN(lng) || math.Abs(lng) > 180 {
		return nil
	}

	return &entity.Coordinates{Latitude: lat, Longitude: lng}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	var values []string
	for value := range strings.SplitSeq(raw, ",") {
		if value = strings.TrimSpace(value); value != "" {
			values = append(values, value)
		}
	}

	return values
}

// RestaurantView is a listing as returned to clients.
type RestaurantView struct {
	*entity.RestaurantListing

	DistanceLabel string `json:"distanceLabel,omitempty"`
	IsFavorite    bool   `json:"isFavorite"`
}

func newRestaurantView(listing *entity.RestaurantListing, favorite bool) *RestaurantView {
	view := &RestaurantView{RestaurantListing: listing, IsFavorite: favorite}
	if listing.Distance != nil {
		view.DistanceLabel = util.FormatMiles(*listing.Distance)
	}

	return view
}

// SearchResult is the payload of list endpoints.
type SearchResult struct {
	Restaurants   []*RestaurantView `json:"restaurants"`
	Count         int               `json:"count"`
	ActiveFilters int               `json:"activeFilters"`
}

func newSearchResult(listings []*entity.RestaurantListing, favorites []string, filters *entity.SearchFilters) *SearchResult {
	saved := make(map[string]struct{}, len(favorites))
	for _, id := range favorites {
		saved[id] = struct{}{}
	}

	views := make([]*RestaurantView, 0, len(listings))
	for _, listing := range listings {
		_, favorite := saved[listing.ID]
		views = append(views, newRestaurantView(listing, favorite))
	}

	return &SearchResult{
		Restaurants:   views,
		Count:         len(views),
		ActiveFilters: filters.ActiveCount(),
	}
}
