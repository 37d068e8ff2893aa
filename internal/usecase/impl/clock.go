package impl

import (
	"time"

	"eats/config"
	"eats/internal/domain/entity"
)

// Clock returns the current instant in the catalog time zone.
type Clock func() time.Time

// NewClock builds the service clock from the catalog configuration.
func NewClock(cfg *config.Config) Clock {
	loc := cfg.Catalog.Location()

	return func() time.Time {
		return time.Now().In(loc)
	}
}

func today(clock Clock) string {
	return clock().Format(entity.DateLayout)
}
