package entity

import (
	"slices"
	"time"
)

// EventType is a kind of diner engagement that owners can see in analytics.
type EventType string

const (
	EventProfileView   EventType = "view"
	EventCallTap       EventType = "call"
	EventDirectionsTap EventType = "direction"
	EventFavorite      EventType = "favorite"
	EventDishView      EventType = "dish_view"
)

var EventTypes = []EventType{EventProfileView, EventCallTap, EventDirectionsTap, EventFavorite, EventDishView}

func (e EventType) Valid() bool {
	return slices.Contains(EventTypes, e)
}

// EngagementEvent is one diner interaction with a restaurant.
type EngagementEvent struct {
	RequestID    string    `json:"requestId,omitempty"`
	RestaurantID string    `json:"restaurantId"`
	Type         EventType `json:"type"`
	// ItemID and ItemName are set for dish views only.
	ItemID     string    `json:"itemId,omitempty"`
	ItemName   string    `json:"itemName,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// Period is an analytics reporting window ending now.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth:
		return true
	}

	return false
}

// Days is the number of calendar days, today included, the period covers.
func (p Period) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodMonth:
		return 30
	default:
		return 7
	}
}

// DailyCount is the per-day tally of one metric for one restaurant.
type DailyCount struct {
	Day   string    `json:"day"`
	Type  EventType `json:"type"`
	Count int64     `json:"count"`
}

type StatTotal struct {
	Count     int64  `json:"count"`
	Formatted string `json:"formatted"`
}

type DishStat struct {
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
	Views  int64  `json:"views"`
}

// DaySeries is one point of the last-seven-days chart.
type DaySeries struct {
	Day        string `json:"day"`
	Views      int64  `json:"views"`
	Calls      int64  `json:"calls"`
	Directions int64  `json:"directions"`
}

type AnalyticsSummary struct {
	RestaurantID    string      `json:"restaurantId"`
	Period          Period      `json:"period"`
	ProfileViews    StatTotal   `json:"profileViews"`
	CallTaps        StatTotal   `json:"callTaps"`
	DirectionTaps   StatTotal   `json:"directionTaps"`
	Favorites       StatTotal   `json:"favorites"`
	TopViewedDishes []DishStat  `json:"topViewedDishes"`
	Weekly          []DaySeries `json:"weekly"`
}
