package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used by special hours.
const DateLayout = "2006-01-02"

// SpecialHours overrides the weekly schedule for one calendar date,
// for example a holiday closure.
type SpecialHours struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID string    `json:"restaurantId"`
	Date         string    `json:"date"`
	OpenTime     string    `json:"openTime,omitempty"`
	CloseTime    string    `json:"closeTime,omitempty"`
	Closed       bool      `json:"closed"`
	Reason       string    `json:"reason"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsUpcoming reports whether the entry falls on today or later. Dates
// compare lexically because they share DateLayout.
func (s *SpecialHours) IsUpcoming(today string) bool {
	return s.Date >= today
}
