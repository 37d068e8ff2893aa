package postgres

import (
	"context"
	"log/slog"

	"eats/internal/domain/entity"
	"eats/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const seedBatchSize = 100

// Models lists every table owned by this service.
func Models() []any {
	return []any{
		&model.RestaurantModel{},
		&model.ReportModel{},
		&model.SpecialHoursModel{},
		&model.DailyStatModel{},
		&model.ItemViewModel{},
	}
}

// Migrate creates or alters the tables for Models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

// SeedRestaurants inserts the catalog when the restaurants table is empty.
// It reports how many rows were written.
func SeedRestaurants(ctx context.Context, db *gorm.DB, logger *slog.Logger, catalog []*entity.Restaurant) (int, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.RestaurantModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count restaurants")
	}
	if count > 0 {
		logger.Debug("Restaurants table already populated, skipping seed", slog.Int64("count", count))

		return 0, nil
	}

	restaurantModels := toSeedModels(catalog)
	if len(restaurantModels) == 0 {
		return 0, nil
	}

	if err := db.WithContext(ctx).CreateInBatches(restaurantModels, seedBatchSize).Error; err != nil {
		return 0, errors.Wrap(err, "failed to seed restaurants")
	}

	logger.Info("Seeded restaurant catalog", slog.Int("count", len(restaurantModels)))

	return len(restaurantModels), nil
}

func toSeedModels(catalog []*entity.Restaurant) []*model.RestaurantModel {
	restaurantModels := make([]*model.RestaurantModel, 0, len(catalog))
	for i, restaurant := range catalog {
		restaurantM := fromRestaurantDomain(restaurant)
		if restaurantM == nil {
			continue
		}
		restaurantM.Position = i
		restaurantModels = append(restaurantModels, restaurantM)
	}

	return restaurantModels
}
