package impl

import (
	"context"
	"fmt"
	"log/slog"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/service"
	"eats/internal/usecase"
	"eats/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	topDishLimit = 5
	seriesDays   = 7
)

type AnalyticsServiceParams struct {
	fx.In

	AnalyticsRepo  repository.AnalyticsRepository
	RestaurantRepo repository.RestaurantRepository
	Publisher      service.EventPublisher
	Clock          Clock
	Logger         *slog.Logger
}

type analyticsService struct {
	analyticsRepo  repository.AnalyticsRepository
	restaurantRepo repository.RestaurantRepository
	publisher      service.EventPublisher
	clock          Clock
	logger         *slog.Logger
}

// NewAnalyticsService is the constructor for analyticsService.
func NewAnalyticsService(params AnalyticsServiceParams) usecase.AnalyticsUsecase {
	return &analyticsService{
		analyticsRepo:  params.AnalyticsRepo,
		restaurantRepo: params.RestaurantRepo,
		publisher:      params.Publisher,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *analyticsService) Record(ctx context.Context, event *entity.EngagementEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	if _, err := srv.findRestaurant(ctx, event.RestaurantID); err != nil {
		return err
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = srv.clock()
	}

	if err := srv.publisher.PublishEngagementEvent(ctx, event); err != nil {
		srv.logger.Warn("Failed to publish engagement event",
			slog.String("restaurantID", event.RestaurantID),
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
		)
	}

	return nil
}

func (srv *analyticsService) Apply(ctx context.Context, event *entity.EngagementEvent) error {
	if err := validateEvent(event); err != nil {
		return err
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = srv.clock()
	}
	day := occurredAt.In(srv.clock().Location()).Format(entity.DateLayout)

	if err := srv.analyticsRepo.Increment(ctx, event, day); err != nil {
		return errors.Wrap(err, "failed to increment engagement counter")
	}

	return nil
}

func (srv *analyticsService) Summary(ctx context.Context, restaurantID string, period entity.Period) (*entity.AnalyticsSummary, error) {
	if period == "" {
		period = entity.PeriodWeek
	}
	if !period.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown period %q", period))
	}

	restaurant, err := srv.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	now := srv.clock()
	todayDate := now.Format(entity.DateLayout)
	periodStart := now.AddDate(0, 0, -(period.Days() - 1)).Format(entity.DateLayout)
	seriesStart := now.AddDate(0, 0, -(seriesDays - 1)).Format(entity.DateLayout)

	counts, err := srv.analyticsRepo.DailyCounts(ctx, restaurantID, min(periodStart, seriesStart), todayDate)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load daily counts")
	}

	dishes, err := srv.analyticsRepo.TopItems(ctx, restaurantID, periodStart, todayDate, topDishLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load top dishes")
	}

	totals := make(map[entity.EventType]int64)
	series := make(map[string]*entity.DaySeries, seriesDays)
	weekly := make([]entity.DaySeries, seriesDays)
	for i := range weekly {
		day := now.AddDate(0, 0, i-(seriesDays-1)).Format(entity.DateLayout)
		weekly[i] = entity.DaySeries{Day: day}
		series[day] = &weekly[i]
	}

	for _, count := range counts {
		if count.Day >= periodStart {
			totals[count.Type] += count.Count
		}

		point, ok := series[count.Day]
		if !ok {
			continue
		}
		switch count.Type {
		case entity.EventProfileView:
			point.Views += count.Count
		case entity.EventCallTap:
			point.Calls += count.Count
		case entity.EventDirectionsTap:
			point.Directions += count.Count
		}
	}

	topDishes := make([]entity.DishStat, 0, len(dishes))
	for _, dish := range dishes {
		stat := *dish
		if name := menuItemName(restaurant, stat.ItemID); name != "" {
			stat.Name = name
		}
		topDishes = append(topDishes, stat)
	}

	return &entity.AnalyticsSummary{
		RestaurantID:    restaurantID,
		Period:          period,
		ProfileViews:    statTotal(totals[entity.EventProfileView]),
		CallTaps:        statTotal(totals[entity.EventCallTap]),
		DirectionTaps:   statTotal(totals[entity.EventDirectionsTap]),
		Favorites:       statTotal(totals[entity.EventFavorite]),
		TopViewedDishes: topDishes,
		Weekly:          weekly,
	}, nil
}

func (srv *analyticsService) findRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrRestaurantNotFound, "restaurant %s", restaurantID)
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

func validateEvent(event *entity.EngagementEvent) error {
	if event == nil || event.RestaurantID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("restaurant is required")
	}
	if !event.Type.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown event type %q", event.Type))
	}
	if event.Type == entity.EventDishView && event.ItemID == "" {
		return domainerrors.ErrValidationFailed.WithDetails("dish views need an item")
	}

	return nil
}

// menuItemName prefers the current menu name over the one recorded with the events.
func menuItemName(r *entity.Restaurant, itemID string) string {
	for _, category := range r.Menu {
		for _, item := range category.Items {
			if item.ID == itemID {
				return item.Name
			}
		}
	}

	return ""
}

func statTotal(count int64) entity.StatTotal {
	return entity.StatTotal{Count: count, Formatted: util.FormatCount(count)}
}
