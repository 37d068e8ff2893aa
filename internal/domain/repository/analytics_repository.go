package repository

import (
	"context"

	"eats/internal/domain/entity"
)

// AnalyticsRepository keeps per-day engagement counters.
//
// Days are calendar dates in entity.DateLayout; ranges are inclusive.
type AnalyticsRepository interface {
	// Increment adds one to the counter of the event's restaurant, type and
	// day, and to the item counter for dish views.
	Increment(ctx context.Context, event *entity.EngagementEvent, day string) error

	// DailyCounts returns the non-zero counters of a restaurant between two days.
	DailyCounts(ctx context.Context, restaurantID, fromDay, toDay string) ([]*entity.DailyCount, error)

	// TopItems returns the most viewed menu items between two days, most viewed first.
	TopItems(ctx context.Context, restaurantID, fromDay, toDay string, limit int) ([]*entity.DishStat, error)
}
