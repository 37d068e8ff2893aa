package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportModel is the GORM-specific struct for the 'reports' table.
type ReportModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RestaurantID string    `gorm:"type:varchar(64);not null;index:idx_reports_on_restaurant"`
	UserID       string    `gorm:"type:varchar(255);not null;default:''"`
	Type         string    `gorm:"type:varchar(16);not null"`
	Description  string    `gorm:"type:text;not null"`
	Photo        string    `gorm:"type:text;not null;default:''"`
	Status       string    `gorm:"type:varchar(16);not null;index:idx_reports_on_restaurant"`
	CreatedAt    time.Time `gorm:"not null"`
	ResolvedAt   *time.Time
	ResolvedBy   *uuid.UUID `gorm:"type:uuid"`
}

// TableName explicitly sets the table name for GORM.
func (ReportModel) TableName() string {
	return "reports"
}
