package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"eats/internal/domain/entity"
	domainerrors "eats/internal/domain/errors"
	"eats/internal/domain/repository"
	"eats/internal/domain/schedule"
	"eats/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type OwnerServiceParams struct {
	fx.In

	RestaurantRepo repository.RestaurantRepository
	Clock          Clock
	Logger         *slog.Logger
}

type ownerService struct {
	restaurantRepo repository.RestaurantRepository
	clock          Clock
	logger         *slog.Logger
	locks          restaurantLocks
}

// restaurantLocks serializes the read-modify-write edits of one restaurant.
type restaurantLocks struct {
	mu   sync.Mutex
	byID map[string]*sync.Mutex
}

func (l *restaurantLocks) lock(restaurantID string) (unlock func()) {
	l.mu.Lock()
	if l.byID == nil {
		l.byID = make(map[string]*sync.Mutex)
	}
	m, ok := l.byID[restaurantID]
	if !ok {
		m = &sync.Mutex{}
		l.byID[restaurantID] = m
	}
	l.mu.Unlock()

	m.Lock()

	return m.Unlock
}

// NewOwnerService is the constructor for ownerService.
func NewOwnerService(params OwnerServiceParams) usecase.OwnerUsecase {
	return &ownerService{
		restaurantRepo: params.RestaurantRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *ownerService) UpdateProfile(ctx context.Context, restaurantID string, input *usecase.UpdateProfileInput) (*entity.Restaurant, error) {
	srv.logger.Info("Updating restaurant profile", slog.String("restaurantID", restaurantID))

	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	unlock := srv.locks.lock(restaurantID)
	defer unlock()

	current, err := srv.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	applyProfileInput(updated, input)
	updated.LastUpdated = srv.clock()

	if err := srv.restaurantRepo.Save(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "failed to save restaurant profile")
	}

	return updated, nil
}

func (srv *ownerService) UpdateMenu(ctx context.Context, restaurantID string, categories []entity.MenuCategory) (*entity.Restaurant, error) {
	srv.logger.Info("Updating restaurant menu", slog.String("restaurantID", restaurantID), slog.Int("categories", len(categories)))

	menu := entity.CloneMenu(categories)
	if err := normalizeMenu(menu); err != nil {
		return nil, err
	}

	unlock := srv.locks.lock(restaurantID)
	defer unlock()

	current, err := srv.findRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	updated := current.Clone()
	updated.Menu = menu
	updated.LastUpdated = srv.clock()

	if err := srv.restaurantRepo.Save(ctx, updated); err != nil {
		return nil, errors.Wrap(err, "failed to save restaurant menu")
	}

	return updated, nil
}

func (srv *ownerService) findRestaurant(ctx context.Context, restaurantID string) (*entity.Restaurant, error) {
	restaurant, err := srv.restaurantRepo.FindByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrRestaurantNotFound, "restaurant %s", restaurantID)
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	return restaurant, nil
}

func validateProfileInput(input *usecase.UpdateProfileInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("profile is required")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if input.Island != nil && !input.Island.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown island %q", *input.Island))
	}
	if input.PriceLevel != nil && !input.PriceLevel.Valid() {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown price level %q", *input.PriceLevel))
	}
	if err := validateTags("cuisine", input.Cuisine, entity.Cuisines); err != nil {
		return err
	}
	if err := validateTags("feature", input.Features, entity.Features); err != nil {
		return err
	}
	if err := validateTags("dietary option", input.DietaryOptions, entity.DietaryOptions); err != nil {
		return err
	}
	if input.Hours != nil {
		return validateWeek(*input.Hours)
	}

	return nil
}

func validateTags(kind string, tags, allowed []string) error {
	for _, tag := range tags {
		if !slices.Contains(allowed, tag) {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown %s %q", kind, tag))
		}
	}

	return nil
}

func validateWeek(week entity.WeeklySchedule) error {
	for day := time.Sunday; day <= time.Saturday; day++ {
		entry := week.Day(day)
		if entry == nil || entry.Closed {
			continue
		}
		if !schedule.ValidClock(entry.Open) || !schedule.ValidClock(entry.Close) {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("%s needs open and close times as HH:MM", entity.DayName(day)))
		}
	}

	return nil
}

func applyProfileInput(r *entity.Restaurant, input *usecase.UpdateProfileInput) {
	setString(&r.Name, input.Name)
	setString(&r.Description, input.Description)
	setString(&r.Contact.Phone, input.Phone)
	setString(&r.Contact.Website, input.Website)
	setString(&r.Contact.Instagram, input.Instagram)
	setString(&r.Contact.Facebook, input.Facebook)
	setString(&r.Location.Address, input.Address)
	setString(&r.Location.Neighborhood, input.Neighborhood)

	if input.Island != nil {
		r.Island = *input.Island
	}
	if input.PriceLevel != nil {
		r.PriceLevel = *input.PriceLevel
	}
	if input.Hours != nil {
		r.Hours = input.Hours.Clone()
	}
	if input.Cuisine != nil {
		r.Cuisine = slices.Clone(input.Cuisine)
	}
	if input.Features != nil {
		r.Features = slices.Clone(input.Features)
	}
	if input.DietaryOptions != nil {
		r.DietaryOptions = slices.Clone(input.DietaryOptions)
	}
}

func setString(dst *string, value *string) {
	if value != nil {
		*dst = strings.TrimSpace(*value)
	}
}

// normalizeMenu checks required fields and assigns IDs to new categories and items.
func normalizeMenu(menu []entity.MenuCategory) error {
	for i := range menu {
		category := &menu[i]
		if strings.TrimSpace(category.Name) == "" {
			return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("category %d needs a name", i+1))
		}
		if category.ID == "" {
			category.ID = uuid.NewString()
		}

		for j := range category.Items {
			item := &category.Items[j]
			if strings.TrimSpace(item.Name) == "" || strings.TrimSpace(item.Price) == "" {
				return domainerrors.ErrValidationFailed.WithDetails(
					fmt.Sprintf("item %d in %q needs a name and a price", j+1, category.Name))
			}
			if item.ID == "" {
				item.ID = uuid.NewString()
			}
		}
	}

	return nil
}
