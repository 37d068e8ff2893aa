package model

import (
	"time"

	"eats/internal/domain/entity"

	"gorm.io/datatypes"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
// Nested catalog data is stored as JSONB.
type RestaurantModel struct {
	ID             string                                    `gorm:"type:varchar(64);primary_key"`
	Position       int                                       `gorm:"not null;default:0"`
	Slug           string                                    `gorm:"type:varchar(255);not null;index"`
	Name           string                                    `gorm:"type:varchar(255);not null"`
	Description    string                                    `gorm:"type:text;not null;default:''"`
	Island         string                                    `gorm:"type:varchar(32);not null;index"`
	Cuisine        datatypes.JSONSlice[string]               `gorm:"type:jsonb;not null"`
	PriceLevel     string                                    `gorm:"type:varchar(3);not null"`
	Rating         float64                                   `gorm:"type:decimal(2,1);not null;default:0"`
	ReviewCount    int                                       `gorm:"not null;default:0"`
	Images         datatypes.JSONType[entity.Images]         `gorm:"type:jsonb;not null"`
	Address        string                                    `gorm:"type:text;not null;default:''"`
	Neighborhood   string                                    `gorm:"type:varchar(255);not null;default:''"`
	Latitude       float64                                   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64                                   `gorm:"type:decimal(11,8);not null"`
	Contact        datatypes.JSONType[entity.Contact]        `gorm:"type:jsonb;not null"`
	Hours          datatypes.JSONType[entity.WeeklySchedule] `gorm:"type:jsonb;not null"`
	Features       datatypes.JSONSlice[string]               `gorm:"type:jsonb;not null"`
	DietaryOptions datatypes.JSONSlice[string]               `gorm:"type:jsonb;not null"`
	Menu           datatypes.JSONSlice[entity.MenuCategory]  `gorm:"type:jsonb;not null"`
	LastUpdated    time.Time                                 `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
