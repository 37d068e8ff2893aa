package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// ReportType classifies a user-submitted correction.
type ReportType string

const (
	ReportTypeHours   ReportType = "hours"
	ReportTypeMenu    ReportType = "menu"
	ReportTypeContact ReportType = "contact"
	ReportTypeClosed  ReportType = "closed"
	ReportTypeOther   ReportType = "other"
)

var ReportTypes = []ReportType{ReportTypeHours, ReportTypeMenu, ReportTypeContact, ReportTypeClosed, ReportTypeOther}

func (t ReportType) Valid() bool {
	return slices.Contains(ReportTypes, t)
}

// ReportStatus is the moderation state of a report.
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

func (s ReportStatus) Valid() bool {
	switch s {
	case ReportStatusPending, ReportStatusApproved, ReportStatusRejected:
		return true
	}

	return false
}

// Report is a diner's claim that some restaurant information is wrong.
type Report struct {
	ID           uuid.UUID    `json:"id"`
	RestaurantID string       `json:"restaurantId"`
	UserID       string       `json:"userId,omitempty"`
	Type         ReportType   `json:"type"`
	Description  string       `json:"description"`
	Photo        string       `json:"photo,omitempty"`
	Status       ReportStatus `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
	ResolvedAt   *time.Time   `json:"resolvedAt,omitempty"`
	ResolvedBy   *uuid.UUID   `json:"resolvedBy,omitempty"`
}

// ReportFilterAll lists reports in every status.
const ReportFilterAll = "all"

// IsPending reports whether the report still awaits a decision.
func (r *Report) IsPending() bool {
	return r.Status == ReportStatusPending
}
