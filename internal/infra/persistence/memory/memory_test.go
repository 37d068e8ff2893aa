package memory

import (
	"context"
	"testing"
	"time"

	"eats/config"
	"eats/internal/domain/entity"
	"eats/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, time.June, 12, 14, 0, 0, 0, time.UTC)

func TestRestaurantRepository(t *testing.T) {
	ctx := context.Background()
	source := []*entity.Restaurant{
		{ID: "1", Name: "Gladys' Cafe", Island: entity.IslandStThomas},
		{ID: "2", Name: "Cruz Bay Landing", Island: entity.IslandStJohn},
	}
	repo := NewRestaurantRepository(source)

	// the repository keeps its own copies
	source[0].Name = "changed"

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Gladys' Cafe", all[0].Name)
	assert.Equal(t, "2", all[1].ID)

	found, err := repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Cruz Bay Landing", found.Name)

	_, err = repo.FindByID(ctx, "99")
	assert.True(t, errors.Is(err, repository.ErrRestaurantNotFound))

	updated := found.Clone()
	updated.Name = "Cruz Bay Landing & Bar"
	require.NoError(t, repo.Save(ctx, updated))

	updated.Name = "mutated after save"
	found, err = repo.FindByID(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Cruz Bay Landing & Bar", found.Name)
	// earlier FindAll results are not rewritten in place
	assert.Equal(t, "Cruz Bay Landing", all[1].Name)

	err = repo.Save(ctx, &entity.Restaurant{ID: "99"})
	assert.True(t, errors.Is(err, repository.ErrRestaurantNotFound))
}

func TestSnapshotRepository(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Catalog.SnapshotTTL = time.Minute

	repo := NewCatalogSnapshotRepository(cfg).(*snapshotRepository)
	now := baseTime
	repo.now = func() time.Time { return now }

	_, err := repo.LoadSnapshot(ctx)
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))

	catalog := []*entity.Restaurant{{ID: "1"}, {ID: "2"}}
	require.NoError(t, repo.SaveSnapshot(ctx, catalog))

	got, err := repo.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	now = now.Add(2 * time.Minute)
	_, err = repo.LoadSnapshot(ctx)
	assert.True(t, errors.Is(err, repository.ErrSnapshotNotFound))
}

func TestFavoriteRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewFavoriteRepository()

	ids, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)

	stored := []string{"3", "1"}
	require.NoError(t, repo.Store(ctx, stored))
	stored[0] = "x"

	ids, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1"}, ids)

	require.NoError(t, repo.Store(ctx, nil))
	ids, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, ids)
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepository()

	older := &entity.Report{
		ID: uuid.New(), RestaurantID: "1", Type: entity.ReportTypeHours,
		Status: entity.ReportStatusPending, CreatedAt: baseTime,
	}
	newer := &entity.Report{
		ID: uuid.New(), RestaurantID: "1", Type: entity.ReportTypeMenu,
		Status: entity.ReportStatusPending, CreatedAt: baseTime.Add(time.Hour),
	}
	other := &entity.Report{
		ID: uuid.New(), RestaurantID: "2", Type: entity.ReportTypeClosed,
		Status: entity.ReportStatusPending, CreatedAt: baseTime,
	}
	for _, r := range []*entity.Report{older, newer, other} {
		require.NoError(t, repo.Create(ctx, r))
	}

	reports, err := repo.ListByRestaurant(ctx, "1", nil)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.ID, reports[0].ID)
	assert.Equal(t, older.ID, reports[1].ID)

	count, err := repo.CountPending(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	resolved := *older
	resolved.Status = entity.ReportStatusApproved
	require.NoError(t, repo.Update(ctx, &resolved))

	approved := entity.ReportStatusApproved
	reports, err = repo.ListByRestaurant(ctx, "1", &approved)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, older.ID, reports[0].ID)

	count, err = repo.CountPending(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	found, err := repo.FindByID(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, "2", found.RestaurantID)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.True(t, errors.Is(err, repository.ErrReportNotFound))
	err = repo.Update(ctx, &entity.Report{ID: uuid.New()})
	assert.True(t, errors.Is(err, repository.ErrReportNotFound))

	// a resolved report is never overwritten
	rejected := *older
	rejected.Status = entity.ReportStatusRejected
	err = repo.Update(ctx, &rejected)
	assert.True(t, errors.Is(err, repository.ErrReportAlreadyResolved))
	found, err = repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReportStatusApproved, found.Status)

	reports, err = repo.ListByRestaurant(ctx, "3", nil)
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestSpecialHoursRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSpecialHoursRepository()

	later := &entity.SpecialHours{ID: uuid.New(), RestaurantID: "1", Date: "2024-12-25", Closed: true, Reason: "Christmas"}
	sooner := &entity.SpecialHours{ID: uuid.New(), RestaurantID: "1", Date: "2024-07-03", OpenTime: "12:00", CloseTime: "18:00", Reason: "Emancipation Day"}
	elsewhere := &entity.SpecialHours{ID: uuid.New(), RestaurantID: "2", Date: "2024-07-03", Closed: true, Reason: "Staff day"}
	for _, e := range []*entity.SpecialHours{later, sooner, elsewhere} {
		require.NoError(t, repo.Create(ctx, e))
	}

	entries, err := repo.ListByRestaurant(ctx, "1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-07-03", entries[0].Date)
	assert.Equal(t, "2024-12-25", entries[1].Date)

	found, err := repo.FindByID(ctx, elsewhere.ID)
	require.NoError(t, err)
	assert.Equal(t, "Staff day", found.Reason)

	require.NoError(t, repo.Delete(ctx, later.ID))
	_, err = repo.FindByID(ctx, later.ID)
	assert.True(t, errors.Is(err, repository.ErrSpecialHoursNotFound))
	err = repo.Delete(ctx, later.ID)
	assert.True(t, errors.Is(err, repository.ErrSpecialHoursNotFound))
}

func TestAnalyticsRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAnalyticsRepository()

	record := func(day string, event entity.EngagementEvent) {
		t.Helper()
		require.NoError(t, repo.Increment(ctx, &event, day))
	}

	record("2024-06-10", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventProfileView})
	record("2024-06-10", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventProfileView})
	record("2024-06-11", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventCallTap})
	record("2024-06-12", entity.EngagementEvent{RestaurantID: "2", Type: entity.EventProfileView})
	record("2024-06-01", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventProfileView})

	record("2024-06-10", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventDishView, ItemID: "conch", ItemName: "Conch"})
	record("2024-06-11", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventDishView, ItemID: "conch", ItemName: "Conch Fritters"})
	record("2024-06-11", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventDishView, ItemID: "conch"})
	record("2024-06-12", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventDishView, ItemID: "snapper", ItemName: "Whole Snapper"})
	record("2024-06-12", entity.EngagementEvent{RestaurantID: "1", Type: entity.EventDishView, ItemID: "johnnycake"})

	counts, err := repo.DailyCounts(ctx, "1", "2024-06-06", "2024-06-12")
	require.NoError(t, err)
	assert.Equal(t, []*entity.DailyCount{
		{Day: "2024-06-10", Type: entity.EventDishView, Count: 1},
		{Day: "2024-06-10", Type: entity.EventProfileView, Count: 2},
		{Day: "2024-06-11", Type: entity.EventCallTap, Count: 1},
		{Day: "2024-06-11", Type: entity.EventDishView, Count: 2},
		{Day: "2024-06-12", Type: entity.EventDishView, Count: 2},
	}, counts)

	top, err := repo.TopItems(ctx, "1", "2024-06-06", "2024-06-12", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, entity.DishStat{ItemID: "conch", Name: "Conch Fritters", Views: 3}, *top[0])
	assert.Equal(t, "johnnycake", top[1].ItemID)
	assert.EqualValues(t, 1, top[1].Views)

	top, err = repo.TopItems(ctx, "1", "2024-06-12", "2024-06-12", 5)
	require.NoError(t, err)
	assert.Len(t, top, 2)
}

