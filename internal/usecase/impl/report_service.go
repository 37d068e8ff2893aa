package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ReportServiceParams struct {
	fx.In

	ReportRepo     repository.ReportRepository
	RestaurantRepo repository.RestaurantRepository
	Clock          Clock
	Logger         *slog.Logger
}

type reportService struct {
	reportRepo     repository.ReportRepository
	restaurantRepo repository.RestaurantRepository
	clock          Clock
	logger         *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(params ReportServiceParams) usecase.ReportUsecase {
	return &reportService{
		reportRepo:     params.ReportRepo,
		restaurantRepo: params.RestaurantRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *reportService) Submit(ctx context.Context, restaurantID string, input *usecase.SubmitReportInput) (*entity.Report, error) {
	if input == nil || !input.Type.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("report type must be one of hours, menu, contact, closed, other")
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("description is required")
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrRestaurantNotFound, "restaurant %s", restaurantID)
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	report := &entity.Report{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		UserID:       input.UserID,
		Type:         input.Type,
		Description:  description,
		Photo:        input.Photo,
		Status:       entity.ReportStatusPending,
		CreatedAt:    srv.clock(),
	}

	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to create report")
	}

	srv.logger.Info("Report submitted",
		slog.String("restaurantID", restaurantID),
		slog.String("reportID", report.ID.String()),
		slog.String("type", string(report.Type)),
	)

	return report, nil
}

func (srv *reportService) List(ctx context.Context, restaurantID, status string) (*usecase.ReportList, error) {
	var filter *entity.ReportStatus
	if status != "" && status != entity.ReportFilterAll {
		reportStatus := entity.ReportStatus(status)
		if !reportStatus.Valid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown report status %q", status))
		}
		filter = &reportStatus
	}

	reports, err := srv.reportRepo.ListByRestaurant(ctx, restaurantID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	pending, err := srv.reportRepo.CountPending(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending reports")
	}

	if reports == nil {
		reports = []*entity.Report{}
	}

	return &usecase.ReportList{Reports: reports, PendingCount: pending}, nil
}

func (srv *reportService) Approve(ctx context.Context, restaurantID string, reportID, ownerID uuid.UUID) (*entity.Report, error) {
	return srv.resolve(ctx, restaurantID, reportID, ownerID, entity.ReportStatusApproved)
}

func (srv *reportService) Reject(ctx context.Context, restaurantID string, reportID, ownerID uuid.UUID) (*entity.Report, error) {
	return srv.resolve(ctx, restaurantID, reportID, ownerID, entity.ReportStatusRejected)
}

func (srv *reportService) resolve(ctx context.Context, restaurantID string, reportID, ownerID uuid.UUID, status entity.ReportStatus) (*entity.Report, error) {
	report, err := srv.reportRepo.FindByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrReportNotFound, "report %s", reportID)
		}

		return nil, errors.Wrap(err, "failed to find report")
	}

	if report.RestaurantID != restaurantID {
		return nil, errors.Wrapf(domainerrors.ErrReportNotFound, "report %s", reportID)
	}
	if !report.IsPending() {
		return nil, errors.Wrapf(domainerrors.ErrReportAlreadyResolved, "report %s is %s", reportID, report.Status)
	}

	resolvedAt := srv.clock()
	report.Status = status
	report.ResolvedAt = &resolvedAt
	report.ResolvedBy = &ownerID

	if err := srv.reportRepo.Update(ctx, report); err != nil {
		switch {
		case errors.Is(err, repository.ErrReportAlreadyResolved):
			return nil, errors.Wrapf(domainerrors.ErrReportAlreadyResolved, "report %s", reportID)
		case errors.Is(err, repository.ErrReportNotFound):
			return nil, errors.Wrapf(domainerrors.ErrReportNotFound, "report %s", reportID)
		}

		return nil, errors.Wrap(err, "failed to update report")
	}

	srv.logger.Info("Report resolved",
		slog.String("reportID", reportID.String()),
		slog.String("status", string(status)),
		slog.String("ownerID", ownerID.String()),
	)

	return report, nil
}
