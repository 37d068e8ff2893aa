package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSpecialHoursNotFound is returned when a special hours entry is not found.
var ErrSpecialHoursNotFound = errors.New("special hours not found")

// SpecialHoursRepository defines the persistence of date-specific hour overrides.
type SpecialHoursRepository interface {
	Create(ctx context.Context, entry *entity.SpecialHours) error

	// ListByRestaurant returns the restaurant's entries ordered by date.
	ListByRestaurant(ctx context.Context, restaurantID string) ([]*entity.SpecialHours, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.SpecialHours, error)

	Delete(ctx context.Context, id uuid.UUID) error
}
