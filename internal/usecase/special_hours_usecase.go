package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

type AddSpecialHoursInput struct {
	Date      string
	Reason    string
	Closed    bool
	OpenTime  string
	CloseTime string
}

// SpecialHoursList splits entries around today; today counts as upcoming.
type SpecialHoursList struct {
	Upcoming []*entity.SpecialHours `json:"upcoming"`
	Past     []*entity.SpecialHours `json:"past"`
}

// SpecialHoursUsecase manages holiday and event hours.
type SpecialHoursUsecase interface {
	Add(ctx context.Context, restaurantID string, input *AddSpecialHoursInput) (*entity.SpecialHours, error)
	List(ctx context.Context, restaurantID string) (*SpecialHoursList, error)
	Delete(ctx context.Context, restaurantID string, id uuid.UUID) error
}
