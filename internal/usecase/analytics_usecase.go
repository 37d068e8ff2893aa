package usecase

import (
	"context"

	"eats/internal/domain/entity"
)

// AnalyticsUsecase records diner engagement and reports it to owners.
type AnalyticsUsecase interface {
	// Record validates an event and publishes it for counting. Publishing is
	// best effort.
	Record(ctx context.Context, event *entity.EngagementEvent) error

	// Apply adds a published event to the counters.
	Apply(ctx context.Context, event *entity.EngagementEvent) error

	Summary(ctx context.Context, restaurantID string, period entity.Period) (*entity.AnalyticsSummary, error)
}
