package impl

import (
	"context"
	"log/slog"
	"strings"
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

type SpecialHoursServiceParams struct {
	fx.In

	SpecialHoursRepo repository.SpecialHoursRepository
	RestaurantRepo   repository.RestaurantRepository
	Clock            Clock
	Logger           *slog.Logger
}

type specialHoursService struct {
	specialHoursRepo repository.SpecialHoursRepository
	restaurantRepo   repository.RestaurantRepository
	clock            Clock
	logger           *slog.Logger
}

// NewSpecialHoursService is the constructor for specialHoursService.
func NewSpecialHoursService(params SpecialHoursServiceParams) usecase.SpecialHoursUsecase {
	return &specialHoursService{
		specialHoursRepo: params.SpecialHoursRepo,
		restaurantRepo:   params.RestaurantRepo,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

func (srv *specialHoursService) Add(ctx context.Context, restaurantID string, input *usecase.AddSpecialHoursInput) (*entity.SpecialHours, error) {
	if err := validateSpecialHours(input); err != nil {
		return nil, err
	}

	if _, err := srv.restaurantRepo.FindByID(ctx, restaurantID); err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrRestaurantNotFound, "restaurant %s", restaurantID)
		}

		return nil, errors.Wrap(err, "failed to find restaurant")
	}

	entry := &entity.SpecialHours{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
		Date:         input.Date,
		Reason:       strings.TrimSpace(input.Reason),
		Closed:       input.Closed,
		CreatedAt:    srv.clock(),
	}
	if !input.Closed {
		entry.OpenTime = input.OpenTime
		entry.CloseTime = input.CloseTime
	}

	if err := srv.specialHoursRepo.Create(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create special hours")
	}

	srv.logger.Info("Special hours added",
		slog.String("restaurantID", restaurantID),
		slog.String("date", entry.Date),
		slog.Bool("closed", entry.Closed),
	)

	return entry, nil
}

func (srv *specialHoursService) List(ctx context.Context, restaurantID string) (*usecase.SpecialHoursList, error) {
	entries, err := srv.specialHoursRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list special hours")
	}

	todayDate := today(srv.clock)
	list := &usecase.SpecialHoursList{
		Upcoming: []*entity.SpecialHours{},
		Past:     []*entity.SpecialHours{},
	}
	for _, entry := range entries {
		if entry.IsUpcoming(todayDate) {
			list.Upcoming = append(list.Upcoming, entry)
		} else {
			list.Past = append(list.Past, entry)
		}
	}

	return list, nil
}

func (srv *specialHoursService) Delete(ctx context.Context, restaurantID string, id uuid.UUID) error {
	entry, err := srv.specialHoursRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSpecialHoursNotFound) {
			return errors.Wrapf(domainerrors.ErrSpecialHoursNotFound, "special hours %s", id)
		}

		return errors.Wrap(err, "failed to find special hours")
	}

	// Entries of other restaurants are reported as missing.
	if entry.RestaurantID != restaurantID {
		return errors.Wrapf(domainerrors.ErrSpecialHoursNotFound, "special hours %s", id)
	}

	if err := srv.specialHoursRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete special hours")
	}

	return nil
}

func validateSpecialHours(input *usecase.AddSpecialHoursInput) error {
	if input == nil || input.Date == "" || strings.TrimSpace(input.Reason) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("date and reason are required")
	}
	if _, err := time.Parse(entity.DateLayout, input.Date); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD")
	}
	if input.Closed {
		return nil
	}
	if input.OpenTime == "" || input.CloseTime == "" {
		return domainerrors.ErrValidationFailed.WithDetails("open and close times are required unless closed")
	}
	if !schedule.ValidClock(input.OpenTime) || !schedule.ValidClock(input.CloseTime) {
		return domainerrors.ErrValidationFailed.WithDetails("times must be HH:MM")
	}

	return nil
}
