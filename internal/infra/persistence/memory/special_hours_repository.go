package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"eats/internal/domain/entity"
	"eats/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type specialHoursRepository struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entity.SpecialHours
}

func NewSpecialHoursRepository() repository.SpecialHoursRepository {
	return &specialHoursRepository{entries: make(map[uuid.UUID]entity.SpecialHours)}
}

func (repo *specialHoursRepository) Create(_ context.Context, entry *entity.SpecialHours) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.entries[entry.ID] = *entry

	return nil
}

func (repo *specialHoursRepository) ListByRestaurant(_ context.Context, restaurantID string) ([]*entity.SpecialHours, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	entries := make([]*entity.SpecialHours, 0)
	for _, entry := range repo.entries {
		if entry.RestaurantID == restaurantID {
			entries = append(entries, &entry)
		}
	}

	slices.SortFunc(entries, func(a, b *entity.SpecialHours) int {
		return cmp.Or(
			cmp.Compare(a.Date, b.Date),
			a.CreatedAt.Compare(b.CreatedAt),
		)
	})

	return entries, nil
}

func (repo *specialHoursRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.SpecialHours, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	entry, ok := repo.entries[id]
	if !ok {
		return nil, errors.WithStack(repository.ErrSpecialHoursNotFound)
	}

	return &entry, nil
}

func (repo *specialHoursRepository) Delete(_ context.Context, id uuid.UUID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.entries[id]; !ok {
		return errors.WithStack(repository.ErrSpecialHoursNotFound)
	}
	delete(repo.entries, id)

	return nil
}
