package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DaySchedule is one day of a weekly schedule. Times are "HH:MM", 24-hour.
type DaySchedule struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// WeeklySchedule holds an optional entry per day, indexed by time.Weekday.
// A nil entry means the restaurant is not open that day.
//
// On the wire it is an object keyed by lowercase English day names.
type WeeklySchedule [7]*DaySchedule

// DayName returns the lowercase English name used as the JSON key for a weekday.
func DayName(day time.Weekday) string {
	return strings.ToLower(day.String())
}

// ParseDayName maps a lowercase English day name back to its weekday.
func ParseDayName(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if DayName(day) == name {
			return day, true
		}
	}

	return 0, false
}

// Day returns the entry for a weekday, or nil.
func (w WeeklySchedule) Day(day time.Weekday) *DaySchedule {
	if day < time.Sunday || day > time.Saturday {
		return nil
	}

	return w[day]
}

func (w WeeklySchedule) Clone() WeeklySchedule {
	var cloned WeeklySchedule
	for i, entry := range w {
		if entry != nil {
			copied := *entry
			cloned[i] = &copied
		}
	}

	return cloned
}

func (w WeeklySchedule) MarshalJSON() ([]byte, error) {
	byName := make(map[string]*DaySchedule, len(w))
	for day, entry := range w {
		if entry != nil {
			byName[DayName(time.Weekday(day))] = entry
		}
	}

	return json.Marshal(byName)
}

// UnmarshalJSON rejects keys that are not day names so a misspelled day
// cannot silently disappear from a schedule.
func (w *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var byName map[string]*DaySchedule
	if err := json.Unmarshal(data, &byName); err != nil {
		return errors.WithStack(err)
	}

	var parsed WeeklySchedule
	for name, entry := range byName {
		day, ok := ParseDayName(strings.ToLower(name))
		if !ok {
			return errors.Errorf("unknown day %q in schedule", name)
		}
		parsed[day] = entry
	}
	*w = parsed

	return nil
}
