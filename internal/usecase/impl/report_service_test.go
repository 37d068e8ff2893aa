package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/memory"
	mockRepo "eats/internal/mocks/repository"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service        usecase.ReportUsecase
	reportRepo     *mockRepo.MockReportRepository
	restaurantRepo *mockRepo.MockRestaurantRepository
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	reportRepo := mockRepo.NewMockReportRepository(t)
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)

	service := NewReportService(ReportServiceParams{
		ReportRepo:     reportRepo,
		RestaurantRepo: restaurantRepo,
		Clock:          fixedClock(testNow),
		Logger:         discardLogger(),
	})

	return reportServiceFixtures{
		service:        service,
		reportRepo:     reportRepo,
		restaurantRepo: restaurantRepo,
	}
}

func TestReportService_Submit_Success(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	input := &usecase.SubmitReportInput{
		Type:        entity.ReportTypeHours,
		Description: "  Closed on Mondays now ",
		UserID:      "diner-7",
	}

	fx.restaurantRepo.EXPECT().FindByID(ctx, "1").Return(sampleRestaurant("1", entity.IslandStThomas), nil)
	fx.reportRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Report")).Return(nil)

	report, err := fx.service.Submit(ctx, "1", input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, entity.ReportStatusPending, report.Status)
	assert.Equal(t, "Closed on Mondays now", report.Description)
	assert.Equal(t, "diner-7", report.UserID)
	assert.Equal(t, testNow, report.CreatedAt)
	assert.Nil(t, report.ResolvedAt)
}

func TestReportService_Submit_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input *usecase.SubmitReportInput
	}{
		{name: "nil", input: nil},
		{name: "unknown type", input: &usecase.SubmitReportInput{Type: "price", Description: "too expensive"}},
		{name: "blank description", input: &usecase.SubmitReportInput{Type: entity.ReportTypeMenu, Description: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestReportService(t)

			_, err := fx.service.Submit(context.Background(), "1", tt.input)

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestReportService_Submit_UnknownRestaurant(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()

	fx.restaurantRepo.EXPECT().FindByID(ctx, "99").Return(nil, repository.ErrRestaurantNotFound)

	_, err := fx.service.Submit(ctx, "99", &usecase.SubmitReportInput{Type: entity.ReportTypeClosed, Description: "Shut down"})

	assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
}

func TestReportService_List(t *testing.T) {
	t.Parallel()

	pending := entity.ReportStatusPending
	rejected := entity.ReportStatusRejected

	tests := []struct {
		name       string
		status     string
		wantFilter *entity.ReportStatus
	}{
		{name: "empty lists all", status: "", wantFilter: nil},
		{name: "all", status: "all", wantFilter: nil},
		{name: "pending", status: "pending", wantFilter: &pending},
		{name: "rejected", status: "rejected", wantFilter: &rejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestReportService(t)
			ctx := context.Background()
			reports := []*entity.Report{{ID: uuid.New(), RestaurantID: "1", Status: entity.ReportStatusPending}}

			fx.reportRepo.EXPECT().ListByRestaurant(ctx, "1", tt.wantFilter).Return(reports, nil)
			fx.reportRepo.EXPECT().CountPending(ctx, "1").Return(int64(3), nil)

			list, err := fx.service.List(ctx, "1", tt.status)

			require.NoError(t, err)
			assert.Equal(t, reports, list.Reports)
			assert.Equal(t, int64(3), list.PendingCount)
		})
	}
}

func TestReportService_List_UnknownStatus(t *testing.T) {
	fx := createTestReportService(t)

	_, err := fx.service.List(context.Background(), "1", "archived")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReportService_Resolve(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	reportID := uuid.New()

	tests := []struct {
		name       string
		approve    bool
		existing   *entity.Report
		findErr    error
		wantStatus entity.ReportStatus
		wantError  error
	}{
		{
			name:       "approve pending",
			approve:    true,
			existing:   &entity.Report{ID: reportID, RestaurantID: "1", Status: entity.ReportStatusPending},
			wantStatus: entity.ReportStatusApproved,
		},
		{
			name:       "reject pending",
			approve:    false,
			existing:   &entity.Report{ID: reportID, RestaurantID: "1", Status: entity.ReportStatusPending},
			wantStatus: entity.ReportStatusRejected,
		},
		{
			name:      "already approved",
			approve:   false,
			existing:  &entity.Report{ID: reportID, RestaurantID: "1", Status: entity.ReportStatusApproved},
			wantError: domainerrors.ErrReportAlreadyResolved,
		},
		{
			name:      "report of another restaurant",
			approve:   true,
			existing:  &entity.Report{ID: reportID, RestaurantID: "2", Status: entity.ReportStatusPending},
			wantError: domainerrors.ErrReportNotFound,
		},
		{
			name:      "missing report",
			approve:   true,
			findErr:   repository.ErrReportNotFound,
			wantError: domainerrors.ErrReportNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fx := createTestReportService(t)
			ctx := context.Background()

			fx.reportRepo.EXPECT().FindByID(ctx, reportID).Return(tt.existing, tt.findErr)
			if tt.wantError == nil {
				fx.reportRepo.EXPECT().Update(ctx, tt.existing).Return(nil)
			}

			resolve := fx.service.Reject
			if tt.approve {
				resolve = fx.service.Approve
			}
			report, err := resolve(ctx, "1", reportID, ownerID)

			if tt.wantError != nil {
				assert.Nil(t, report)
				assert.ErrorIs(t, err, tt.wantError)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, report.Status)
			require.NotNil(t, report.ResolvedAt)
			assert.Equal(t, testNow, *report.ResolvedAt)
			require.NotNil(t, report.ResolvedBy)
			assert.Equal(t, ownerID, *report.ResolvedBy)
		})
	}
}

func TestReportService_Resolve_ResolvedMeanwhile(t *testing.T) {
	fx := createTestReportService(t)

	ctx := context.Background()
	reportID := uuid.New()
	existing := &entity.Report{ID: reportID, RestaurantID: "1", Status: entity.ReportStatusPending}

	fx.reportRepo.EXPECT().FindByID(ctx, reportID).Return(existing, nil)
	fx.reportRepo.EXPECT().Update(ctx, existing).Return(repository.ErrReportAlreadyResolved)

	report, err := fx.service.Approve(ctx, "1", reportID, uuid.New())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, domainerrors.ErrReportAlreadyResolved)
}

// slowReportRepository widens the gap between reading and writing a report.
type slowReportRepository struct {
	repository.ReportRepository
}

func (repo slowReportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	time.Sleep(time.Millisecond)

	return repo.ReportRepository.FindByID(ctx, id)
}

func TestReportService_Resolve_Concurrent(t *testing.T) {
	ctx := context.Background()
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	restaurantRepo.EXPECT().FindByID(ctx, "1").Return(sampleRestaurant("1", entity.IslandStCroix), nil)

	service := NewReportService(ReportServiceParams{
		ReportRepo:     slowReportRepository{ReportRepository: memory.NewReportRepository()},
		RestaurantRepo: restaurantRepo,
		Clock:          fixedClock(testNow),
		Logger:         discardLogger(),
	})

	for range 20 {
		report, err := service.Submit(ctx, "1", &usecase.SubmitReportInput{Type: entity.ReportTypeHours, Description: "Opens at noon"})
		require.NoError(t, err)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			resolved  int
		)
		for i := range 8 {
			resolve := service.Approve
			if i%2 == 1 {
				resolve = service.Reject
			}

			wg.Add(1)
			go func() {
				defer wg.Done()

				_, err := resolve(ctx, "1", report.ID, uuid.New())

				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errors.Is(err, domainerrors.ErrReportAlreadyResolved):
					resolved++
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, 7, resolved)
	}
}
