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

// specialHoursRepository implements the domain.SpecialHoursRepository interface.
type specialHoursRepository struct {
	db *gorm.DB
}

// NewSpecialHoursRepository is the constructor for specialHoursRepository.
func NewSpecialHoursRepository(db *gorm.DB) repository.SpecialHoursRepository {
	return &specialHoursRepository{db: db}
}

func (repo *specialHoursRepository) Create(ctx context.Context, entry *entity.SpecialHours) error {
	if err := repo.db.WithContext(ctx).Create(fromSpecialHoursDomain(entry)).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required special hours information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create special hours")
	}

	return nil
}

// ListByRestaurant returns entries ordered by date.
func (repo *specialHoursRepository) ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.SpecialHours, error) {
	var entryModels []*model.SpecialHoursModel
	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("date ASC").
		Order("created_at ASC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list special hours by restaurant")
	}

	entries := make([]*entity.SpecialHours, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toSpecialHoursDomain(entryM))
	}

	return entries, nil
}

func (repo *specialHoursRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SpecialHours, error) {
	var entryM model.SpecialHoursModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSpecialHoursNotFound
		}

		return nil, errors.Wrap(err, "failed to find special hours by ID")
	}

	return toSpecialHoursDomain(&entryM), nil
}

func (repo *specialHoursRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SpecialHoursModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete special hours")
	}

	// If no rows were affected, it means the entry was not found.
	if result.RowsAffected == 0 {
		return repository.ErrSpecialHoursNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSpecialHoursDomain(data *model.SpecialHoursModel) *entity.SpecialHours {
	if data == nil {
		return nil
	}

	return &entity.SpecialHours{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Date:         data.Date,
		OpenTime:     data.OpenTime,
		CloseTime:    data.CloseTime,
		Closed:       data.Closed,
		Reason:       data.Reason,
		CreatedAt:    data.CreatedAt,
	}
}

func fromSpecialHoursDomain(data *entity.SpecialHours) *model.SpecialHoursModel {
	if data == nil {
		return nil
	}

	return &model.SpecialHoursModel{
		ID:           data.ID,
		RestaurantID: data.RestaurantID,
		Date:         data.Date,
		OpenTime:     data.OpenTime,
		CloseTime:    data.CloseTime,
		Closed:       data.Closed,
		Reason:       data.Reason,
		CreatedAt:    data.CreatedAt,
	}
}
