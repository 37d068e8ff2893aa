package postgres

import (
	"context"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// analyticsRepository implements the domain.AnalyticsRepository interface.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// Increment bumps the daily counter and, for dish views, the item counter in one transaction.
func (repo *analyticsRepository) Increment(ctx context.Context, event *entity.EngagementEvent, day string) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stat := &model.DailyStatModel{
			RestaurantID: event.RestaurantID,
			Day:          day,
			EventType:    string(event.Type),
			Count:        1,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "day"}, {Name: "event_type"}},
			DoUpdates: clause.Assignments(map[string]any{
				"count": gorm.Expr("daily_stats.count + 1"),
			}),
		}).Create(stat).Error; err != nil {
			return errors.Wrap(err, "failed to increment daily stat")
		}

		if event.Type != entity.EventDishView || event.ItemID == "" {
			return nil
		}

		updates := map[string]any{"views": gorm.Expr("item_views.views + 1")}
		if event.ItemName != "" {
			updates["name"] = event.ItemName
		}
		view := &model.ItemViewModel{
			RestaurantID: event.RestaurantID,
			Day:          day,
			ItemID:       event.ItemID,
			Name:         event.ItemName,
			Views:        1,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "day"}, {Name: "item_id"}},
			DoUpdates: clause.Assignments(updates),
		}).Create(view).Error; err != nil {
			return errors.Wrap(err, "failed to increment item view")
		}

		return nil
	})

	return errors.WithStack(err)
}

// DailyCounts returns counters for days in [fromDay, toDay].
func (repo *analyticsRepository) DailyCounts(ctx context.Context, restaurantID, fromDay, toDay string) ([]*entity.DailyCount, error) {
	var statModels []*model.DailyStatModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND day BETWEEN ? AND ?", restaurantID, fromDay, toDay).
		Order("day ASC").
		Order("event_type ASC").
		Find(&statModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list daily stats")
	}

	counts := make([]*entity.DailyCount, 0, len(statModels))
	for _, statM := range statModels {
		counts = append(counts, &entity.DailyCount{
			Day:   statM.Day,
			Type:  entity.EventType(statM.EventType),
			Count: statM.Count,
		})
	}

	return counts, nil
}

type itemTotal struct {
	ItemID string
	Name   string
	Views  int64
}

// TopItems sums item views over [fromDay, toDay], most viewed first.
func (repo *analyticsRepository) TopItems(ctx context.Context, restaurantID, fromDay, toDay string, limit int) ([]*entity.DishStat, error) {
	var totals []itemTotal
	query := repo.db.WithContext(ctx).
		Model(&model.ItemViewModel{}).
		Select("item_id, " +
			"COALESCE((ARRAY_AGG(name ORDER BY day DESC) FILTER (WHERE name <> ''))[1], '') AS name, " +
			"SUM(views) AS views").
		Where("restaurant_id = ? AND day BETWEEN ? AND ?", restaurantID, fromDay, toDay).
		Group("item_id").
		Order("views DESC").
		Order("item_id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Scan(&totals).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list top items")
	}

	stats := make([]*entity.DishStat, 0, len(totals))
	for _, total := range totals {
		stats = append(stats, &entity.DishStat{ItemID: total.ItemID, Name: total.Name, Views: total.Views})
	}

	return stats, nil
}
