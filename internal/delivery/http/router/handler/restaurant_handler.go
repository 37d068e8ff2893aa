package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "eats/internal/delivery/context"
	"eats/internal/delivery/http/response"
	"eats/internal/domain/entity"
	"eats/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	DiscoveryUC usecase.DiscoveryUsecase
	FavoriteUC  usecase.FavoriteUsecase
	AnalyticsUC usecase.AnalyticsUsecase
	ReportUC    usecase.ReportUsecase
	Logger      *slog.Logger
}

// RestaurantHandler serves the public catalog endpoints.
type RestaurantHandler struct {
	discoveryUC usecase.DiscoveryUsecase
	favoriteUC  usecase.FavoriteUsecase
	analyticsUC usecase.AnalyticsUsecase
	reportUC    usecase.ReportUsecase
	logger      *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		discoveryUC: params.DiscoveryUC,
		favoriteUC:  params.FavoriteUC,
		analyticsUC: params.AnalyticsUC,
		reportUC:    params.ReportUC,
		logger:      params.Logger,
	}
}

// RecordEventRequest represents the request body for an engagement event
type RecordEventRequest struct {
	Type     string `json:"type" validate:"required,eventtype"`
	ItemID   string `json:"itemId" validate:"max=64"`
	ItemName string `json:"itemName" validate:"max=255"`
}

// SubmitReportRequest represents the request body for a diner correction
type SubmitReportRequest struct {
	Type        string `json:"type" validate:"required,reporttype"`
	Description string `json:"description" validate:"required,max=2000"`
	UserID      string `json:"userId" validate:"max=255"`
	Photo       string `json:"photo"`
}

// GetMeta returns the filter facets.
func (h *RestaurantHandler) GetMeta(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.discoveryUC.Facets(c.Request().Context()), "")
}

// Search lists the restaurants matching the query string filters.
func (h *RestaurantHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()
	filters := parseSearchFilters(c)

	listings, err := h.discoveryUC.Search(ctx, filters, parseOrigin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSearchResult(listings, h.favorites(c), filters), "")
}

// GetRestaurant returns one restaurant and counts a profile view.
func (h *RestaurantHandler) GetRestaurant(c echo.Context) error {
	ctx := c.Request().Context()
	id := c.Param("id")

	listing, err := h.discoveryUC.GetRestaurant(ctx, id, parseOrigin(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.IsFavorite(ctx, id)
	if err != nil {
		h.loggerFor(c).Warn("Failed to read favorite state", slog.String("restaurantID", id), slog.Any("error", err))
	}

	event := &entity.EngagementEvent{
		RequestID:    deliverycontext.GetRequestID(c),
		RestaurantID: id,
		Type:         entity.EventProfileView,
	}
	if err := h.analyticsUC.Record(ctx, event); err != nil {
		h.loggerFor(c).Warn("Failed to record profile view", slog.String("restaurantID", id), slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, newRestaurantView(listing, favorite), "")
}

// RecordEvent accepts call, directions, favorite and dish view taps.
func (h *RestaurantHandler) RecordEvent(c echo.Context) error {
	var req RecordEventRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid event input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event := &entity.EngagementEvent{
		RequestID:    deliverycontext.GetRequestID(c),
		RestaurantID: c.Param("id"),
		Type:         entity.EventType(req.Type),
		ItemID:       req.ItemID,
		ItemName:     req.ItemName,
	}
	if err := h.analyticsUC.Record(c.Request().Context(), event); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, nil, "Event recorded")
}

// SubmitReport files a correction for the owner to review.
func (h *RestaurantHandler) SubmitReport(c echo.Context) error {
	var req SubmitReportRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid report input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.SubmitReportInput{
		Type:        entity.ReportType(req.Type),
		Description: req.Description,
		UserID:      req.UserID,
		Photo:       req.Photo,
	}

	report, err := h.reportUC.Submit(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report, "Report submitted")
}

// favorites is best effort: a broken store must not hide the catalog.
func (h *RestaurantHandler) favorites(c echo.Context) []string {
	ids, err := h.favoriteUC.List(c.Request().Context())
	if err != nil {
		h.loggerFor(c).Warn("Failed to load favorites", slog.Any("error", err))

		return nil
	}

	return ids
}

func (h *RestaurantHandler) loggerFor(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
