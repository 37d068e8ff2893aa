package usecase

import (
	"context"

	"eats/internal/domain/entity"
)

// UpdateProfileInput carries the profile fields an owner wants to change.
// Nil fields are left untouched.
type UpdateProfileInput struct {
	Name           *string
	Description    *string
	Island         *entity.Island
	Cuisine        []string
	PriceLevel     *entity.PriceLevel
	Phone          *string
	Website        *string
	Instagram      *string
	Facebook       *string
	Address        *string
	Neighborhood   *string
	Hours          *entity.WeeklySchedule
	Features       []string
	DietaryOptions []string
}

// OwnerUsecase lets restaurant owners edit their listing.
type OwnerUsecase interface {
	UpdateProfile(ctx context.Context, restaurantID string, input *UpdateProfileInput) (*entity.Restaurant, error)

	// UpdateMenu replaces the whole menu.
	UpdateMenu(ctx context.Context, restaurantID string, categories []entity.MenuCategory) (*entity.Restaurant, error)
}
