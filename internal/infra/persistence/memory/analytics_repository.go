package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"
)

type dailyKey struct {
	restaurantID string
	day          string
	eventType    entity.EventType
}

type itemKey struct {
	restaurantID string
	day          string
	itemID       string
}

type itemCount struct {
	name  string
	views int64
}

type analyticsRepository struct {
	mu    sync.Mutex
	daily map[dailyKey]int64
	items map[itemKey]*itemCount
}

func NewAnalyticsRepository() repository.AnalyticsRepository {
	return &analyticsRepository{
		daily: make(map[dailyKey]int64),
		items: make(map[itemKey]*itemCount),
	}
}

func (repo *analyticsRepository) Increment(_ context.Context, event *entity.EngagementEvent, day string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.daily[dailyKey{restaurantID: event.RestaurantID, day: day, eventType: event.Type}]++

	if event.Type == entity.EventDishView && event.ItemID != "" {
		key := itemKey{restaurantID: event.RestaurantID, day: day, itemID: event.ItemID}
		count, ok := repo.items[key]
		if !ok {
			count = &itemCount{}
			repo.items[key] = count
		}
		count.views++
		if event.ItemName != "" {
			count.name = event.ItemName
		}
	}

	return nil
}

func (repo *analyticsRepository) DailyCounts(_ context.Context, restaurantID, fromDay, toDay string) ([]*entity.DailyCount, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	counts := make([]*entity.DailyCount, 0)
	for key, count := range repo.daily {
		if key.restaurantID != restaurantID || key.day < fromDay || key.day > toDay {
			continue
		}
		counts = append(counts, &entity.DailyCount{Day: key.day, Type: key.eventType, Count: count})
	}

	slices.SortFunc(counts, func(a, b *entity.DailyCount) int {
		return cmp.Or(cmp.Compare(a.Day, b.Day), cmp.Compare(a.Type, b.Type))
	})

	return counts, nil
}

func (repo *analyticsRepository) TopItems(_ context.Context, restaurantID, fromDay, toDay string, limit int) ([]*entity.DishStat, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	totals := make(map[string]*entity.DishStat)
	nameDay := make(map[string]string)
	for key, count := range repo.items {
		if key.restaurantID != restaurantID || key.day < fromDay || key.day > toDay {
			continue
		}
		stat, ok := totals[key.itemID]
		if !ok {
			stat = &entity.DishStat{ItemID: key.itemID}
			totals[key.itemID] = stat
		}
		stat.Views += count.views
		if count.name != "" && key.day >= nameDay[key.itemID] {
			stat.Name = count.name
			nameDay[key.itemID] = key.day
		}
	}

	stats := make([]*entity.DishStat, 0, len(totals))
	for _, stat := range totals {
		stats = append(stats, stat)
	}
	slices.SortFunc(stats, func(a, b *entity.DishStat) int {
		return cmp.Or(cmp.Compare(b.Views, a.Views), cmp.Compare(a.ItemID, b.ItemID))
	})

	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	return stats, nil
}
