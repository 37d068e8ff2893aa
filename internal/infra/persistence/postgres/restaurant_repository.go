// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// restaurantRepository implements the domain.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

// FindAll returns the catalog in seed order.
func (repo *restaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	if err := repo.db.WithContext(ctx).
		Order("position ASC").
		Order("id ASC").
		Find(&restaurantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list restaurants")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurants = append(restaurants, toRestaurantDomain(restaurantM))
	}

	return restaurants, nil
}

// FindByID retrieves a restaurant by its catalog ID.
func (repo *restaurantRepository) FindByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	var restaurantM model.RestaurantModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&restaurantM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to find restaurant by ID")
	}

	return toRestaurantDomain(&restaurantM), nil
}

// Save replaces every editable column of an existing restaurant.
func (repo *restaurantRepository) Save(ctx context.Context, restaurant *entity.Restaurant) error {
	restaurantM := fromRestaurantDomain(restaurant)

	result := repo.db.WithContext(ctx).
		Model(&model.RestaurantModel{}).
		Where("id = ?", restaurant.ID).
		Select("*").
		Omit("id", "position", "created_at").
		Updates(restaurantM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update restaurant")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRestaurantNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) *entity.Restaurant {
	if data == nil {
		return nil
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Description: data.Description,
		Island:      entity.Island(data.Island),
		Cuisine:     []string(data.Cuisine),
		PriceLevel:  entity.PriceLevel(data.PriceLevel),
		Rating:      data.Rating,
		ReviewCount: data.ReviewCount,
		Images:      data.Images.Data(),
		Location: entity.Location{
			Address:      data.Address,
			Neighborhood: data.Neighborhood,
			Coordinates: entity.Coordinates{
				Latitude:  data.Latitude,
				Longitude: data.Longitude,
			},
		},
		Contact:        data.Contact.Data(),
		Hours:          data.Hours.Data(),
		Features:       []string(data.Features),
		DietaryOptions: []string(data.DietaryOptions),
		Menu:           []entity.MenuCategory(data.Menu),
		LastUpdated:    data.LastUpdated,
	}
}

// fromRestaurantDomain converts a domain Restaurant entity to a GORM RestaurantModel.
func fromRestaurantDomain(data *entity.Restaurant) *model.RestaurantModel {
	if data == nil {
		return nil
	}

	return &model.RestaurantModel{
		ID:             data.ID,
		Slug:           data.Slug,
		Name:           data.Name,
		Description:    data.Description,
		Island:         string(data.Island),
		Cuisine:        nonNilSlice(data.Cuisine),
		PriceLevel:     string(data.PriceLevel),
		Rating:         data.Rating,
		ReviewCount:    data.ReviewCount,
		Images:         datatypes.NewJSONType(data.Images),
		Address:        data.Location.Address,
		Neighborhood:   data.Location.Neighborhood,
		Latitude:       data.Location.Coordinates.Latitude,
		Longitude:      data.Location.Coordinates.Longitude,
		Contact:        datatypes.NewJSONType(data.Contact),
		Hours:          datatypes.NewJSONType(data.Hours),
		Features:       nonNilSlice(data.Features),
		DietaryOptions: nonNilSlice(data.DietaryOptions),
		Menu:           nonNilSlice(data.Menu),
		LastUpdated:    data.LastUpdated,
	}
}

// nonNilSlice keeps JSONB columns as [] rather than null.
func nonNilSlice[T any](s []T) datatypes.JSONSlice[T] {
	if s == nil {
		return datatypes.JSONSlice[T]{}
	}

	return datatypes.JSONSlice[T](s)
}
