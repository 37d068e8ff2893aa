package impl

import (
	"io"
	"log/slog"
	"time"

	"eats/internal/domain/entity"
)

// Wednesday 2024-06-12 14:00 in the US Virgin Islands.
var testNow = time.Date(2024, time.June, 12, 14, 0, 0, 0, time.FixedZone("AST", -4*60*60))

func fixedClock(at time.Time) Clock {
	return func() time.Time { return at }
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleRestaurant(id string, island entity.Island) *entity.Restaurant {
	var hours entity.WeeklySchedule
	hours[time.Wednesday] = &entity.DaySchedule{Open: "11:00", Close: "22:00"}

	return &entity.Restaurant{
		ID:          id,
		Name:        "Restaurant " + id,
		Island:      island,
		Cuisine:     []string{"Caribbean"},
		PriceLevel:  entity.PriceModerate,
		Hours:       hours,
		Features:    []string{"waterfront"},
		LastUpdated: testNow.AddDate(0, -1, 0),
		Menu: []entity.MenuCategory{{
			ID:   "mains",
			Name: "Mains",
			Items: []entity.MenuItem{
				{ID: "conch", Name: "Conch Fritters", Price: "$14"},
				{ID: "snapper", Name: "Whole Snapper", Price: "Market Price"},
			},
		}},
	}
}
