package usecase

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
)

type SubmitReportInput struct {
	Type        entity.ReportType
	Description string
	UserID      string
	Photo       string
}

type ReportList struct {
	Reports      []*entity.Report `json:"reports"`
	PendingCount int64            `json:"pendingCount"`
}

// ReportUsecase handles diner corrections and their moderation by owners.
type ReportUsecase interface {
	Submit(ctx context.Context, restaurantID string, input *SubmitReportInput) (*entity.Report, error)

	// List filters by status; "all" or an empty status lists everything.
	List(ctx context.Context, restaurantID, status string) (*ReportList, error)

	Approve(ctx context.Context, restaurantID string, reportID, ownerID uuid.UUID) (*entity.Report, error)
	Reject(ctx context.Context, restaurantID string, reportID, ownerID uuid.UUID) (*entity.Report, error)
}
