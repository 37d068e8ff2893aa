package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type reportRepository struct {
	mu      sync.RWMutex
	reports map[uuid.UUID]entity.Report
}

func NewReportRepository() repository.ReportRepository {
	return &reportRepository{reports: make(map[uuid.UUID]entity.Report)}
}

func (repo *reportRepository) Create(_ context.Context, report *entity.Report) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.reports[report.ID] = *report

	return nil
}

func (repo *reportRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Report, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	report, ok := repo.reports[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrReportNotFound)
	}

	return &report, nil
}

func (repo *reportRepository) ListByRestaurant(_ context.Context, restaurantID string, status *entity.ReportStatus) ([]*entity.Report, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	reports := make([]*entity.Report, 0)
	for _, report := range repo.reports {
		if report.RestaurantID != restaurantID {
			continue
		}
		if status != nil && report.Status != *status {
			continue
		}
		reports = append(reports, &report)
	}

	slices.SortFunc(reports, func(a, b *entity.Report) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return reports, nil
}

func (repo *reportRepository) CountPending(_ context.Context, restaurantID string) (int64, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var count int64
	for _, report := range repo.reports {
		if report.RestaurantID == restaurantID && report.IsPending() {
			count++
		}
	}

	return count, nil
}

func (repo *reportRepository) Update(_ context.Context, report *entity.Report) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored, ok := repo.reports[report.ID]
	if !ok {
		return errors.WithStack(repository.ErrReportNotFound)
	}
	if !stored.IsPending() {
		return errors.WithStack(repository.ErrReportAlreadyResolved)
	}
	repo.reports[report.ID] = *report

	return nil
}
