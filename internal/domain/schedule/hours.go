// Package schedule decides whether a restaurant is open at a given instant.
package schedule

import (
	"strconv"
	"strings"
	"time"

	"eats/internal/domain/entity"
)

// IsOpen reports whether the weekly schedule is open at the given instant.
// The instant is evaluated in its own location, so callers convert it into
// the catalog time zone first.
//
// Times are compared on an hour*100+minute scale. A window whose close is
// before its open (crossing midnight) is never open, and any missing or
// unparsable time means closed.
func IsOpen(week entity.WeeklySchedule, at time.Time) bool {
	day := week.Day(at.Weekday())
	if day == nil || day.Closed || day.Open == "" || day.Close == "" {
		return false
	}

	open, ok := ParseClock(day.Open)
	if !ok {
		return false
	}
	closing, ok := ParseClock(day.Close)
	if !ok {
		return false
	}

	current := at.Hour()*100 + at.Minute()

	return open <= current && current <= closing
}

// ParseClock encodes an "HH:MM" string as hour*100+minute.
func ParseClock(value string) (int, bool) {
	hourText, minuteText, found := strings.Cut(value, ":")
	if !found {
		return 0, false
	}

	hour, err := strconv.Atoi(strings.TrimSpace(hourText))
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(strings.TrimSpace(minuteText))
	if err != nil {
		return 0, false
	}

	return hour*100 + minute, true
}

// ValidClock reports whether value is a well-formed 24-hour "HH:MM" time.
// Schedules read from the catalog are evaluated leniently; owner edits are
// held to this stricter form.
func ValidClock(value string) bool {
	_, err := time.Parse("15:04", value)

	return err == nil
}
