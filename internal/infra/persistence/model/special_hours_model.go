package model

import (
	"time"

	"github.com/google/uuid"
)

// SpecialHoursModel is the GORM-specific struct for the 'special_hours' table.
// Date keeps the YYYY-MM-DD text form so it orders like the domain value.
type SpecialHoursModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	RestaurantID string    `gorm:"type:varchar(64);not null;index:idx_special_hours_on_restaurant_date"`
	Date         string    `gorm:"type:varchar(10);not null;index:idx_special_hours_on_restaurant_date"`
	OpenTime     string    `gorm:"type:varchar(5);not null;default:''"`
	CloseTime    string    `gorm:"type:varchar(5);not null;default:''"`
	Closed       bool      `gorm:"not null;default:false"`
	Reason       string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (SpecialHoursModel) TableName() string {
	return "special_hours"
}
