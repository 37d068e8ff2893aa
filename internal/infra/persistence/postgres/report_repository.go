package postgres

import (
	"context"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reportRepository implements the domain.ReportRepository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(db *gorm.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

// Create persists a new report.
func (repo *reportRepository) Create(ctx context.Context, report *entity.Report) error {
	reportM := fromReportDomain(report)

	if err := repo.db.WithContext(ctx).Create(reportM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("report already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required report information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create report")
	}

	return nil
}

// FindByID retrieves a report by its unique ID.
func (repo *reportRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error) {
	var reportM model.ReportModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reportM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to find report by ID")
	}

	return toReportDomain(&reportM), nil
}

// ListByRestaurant returns the reports of one restaurant, newest first.
func (repo *reportRepository) ListByRestaurant(ctx context.Context, restaurantID string, status *entity.ReportStatus) ([]*entity.Report, error) {
	query := repo.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var reportModels []*model.ReportModel
	if err := query.
		Order("created_at DESC").
		Order("id ASC").
		Find(&reportModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reports by restaurant")
	}

	reports := make([]*entity.Report, 0, len(reportModels))
	for _, reportM := range reportModels {
		reports = append(reports, toReportDomain(reportM))
	}

	return reports, nil
}

// CountPending counts the reports still awaiting a decision.
func (repo *reportRepository) CountPending(ctx context.Context, restaurantID string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("restaurant_id = ? AND status = ?", restaurantID, string(entity.ReportStatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending reports")
	}

	return count, nil
}

// Update stores the moderation outcome of a report that is still pending.
func (repo *reportRepository) Update(ctx context.Context, report *entity.Report) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("id = ? AND status = ?", report.ID, string(entity.ReportStatusPending)).
		Updates(map[string]any{
			"status":      string(report.Status),
			"resolved_at": report.ResolvedAt,
			"resolved_by": report.ResolvedBy,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update report")
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.ReportModel{}).
			Where("id = ?", report.ID).
			Count(&count).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to check report")
		}
		if count == 0 {
			return repository.ErrReportNotFound
		}

		return repository.ErrReportAlreadyResolved
	}

	return nil
}

// --- Mapper Functions ---

func toReportDomain(data *model.ReportModel) *entity.Report {
	if data == nil {
		return nil
	}

	return &entity.Report{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		UserID:       data.UserID,
		Type:         entity.ReportType(data.Type),
		Description:  data.Description,
		Photo:        data.Photo,
		Status:       entity.ReportStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		ResolvedAt:   data.ResolvedAt,
		ResolvedBy:   data.ResolvedBy,
	}
}

func fromReportDomain(data *entity.Report) *model.ReportModel {
	if data == nil {
		return nil
	}

	return &model.ReportModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		UserID:       data.UserID,
		Type:         string(data.Type),
		Description:  data.Description,
		Photo:        data.Photo,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		ResolvedAt:   data.ResolvedAt,
		ResolvedBy:   data.ResolvedBy,
	}
}
