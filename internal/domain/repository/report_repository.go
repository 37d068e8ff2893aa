package repository

import (
	"context"

	"eats/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrReportNotFound is returned when a report is not found.
	ErrReportNotFound = errors.New("report not found")
	// ErrReportAlreadyResolved is returned when a report is no longer pending.
	ErrReportAlreadyResolved = errors.New("report already resolved")
)

// ReportRepository defines the persistence of user-submitted reports.
type ReportRepository interface {
	// Create persists a new report.
	Create(ctx context.Context, report *entity.Report) error

	// FindByID retrieves a report by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Report, error)

	// ListByRestaurant returns the restaurant's reports, newest first. A nil
	// status returns every report.
	ListByRestaurant(ctx context.Context, restaurantID string, status *entity.ReportStatus) ([]*entity.Report, error)

	// CountPending counts the restaurant's reports awaiting a decision.
	CountPending(ctx context.Context, restaurantID string) (int64, error)

	// Update saves the status fields of a report that is still pending. The
	// check and the write are atomic: a report resolved in the meantime yields
	// ErrReportAlreadyResolved.
	Update(ctx context.Context, report *entity.Report) error
}
