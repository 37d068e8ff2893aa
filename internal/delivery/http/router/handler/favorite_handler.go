package handler

import (
	"net/http"

	"eats/internal/delivery/http/response"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
}

// FavoriteHandler serves the saved restaurants of the diner.
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{favoriteUC: params.FavoriteUC}
}

// ToggleResult is the favorites set after a toggle.
type ToggleResult struct {
	Favorites  []string `json:"favorites"`
	IsFavorite bool     `json:"isFavorite"`
}

// ListFavorites returns the saved restaurant IDs.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	ids, err := h.favoriteUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, ids, "")
}

// ListFavoriteRestaurants is the favorites view with the search filters applied.
func (h *FavoriteHandler) ListFavoriteRestaurants(c echo.Context) error {
	ctx := c.Request().Context()
	filters := parseSearchFilters(c)

	listings, err := h.favoriteUC.Restaurants(ctx, filters, parseOrigin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	ids := make([]string, 0, len(listings))
	for _, listing := range listings {
		ids = append(ids, listing.ID)
	}

	return response.Success(c, http.StatusOK, newSearchResult(listings, ids, filters), "")
}

// ToggleFavorite adds or removes one restaurant.
func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	favorites, added, err := h.favoriteUC.Toggle(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Removed from favorites"
	if added {
		message = "Added to favorites"
	}

	return response.Success(c, http.StatusOK, &ToggleResult{Favorites: favorites, IsFavorite: added}, message)
}
