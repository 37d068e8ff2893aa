package model

// DailyStatModel counts one engagement type per restaurant per local day.
type DailyStatModel struct {
	RestaurantID string `gorm:"type:varchar(64);primaryKey"`
	Day          string `gorm:"type:varchar(10);primaryKey"`
	EventType    string `gorm:"type:varchar(16);primaryKey"`
	Count        int64  `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (DailyStatModel) TableName() string {
	return "daily_stats"
}

// ItemViewModel counts menu item views per restaurant per local day.
type ItemViewModel struct {
	RestaurantID string `gorm:"type:varchar(64);primaryKey"`
	Day          string `gorm:"type:varchar(10);primaryKey"`
	ItemID       string `gorm:"type:varchar(64);primaryKey"`
	Name         string `gorm:"type:varchar(255);not null;default:''"`
	Views        int64  `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ItemViewModel) TableName() string {
	return "item_views"
}
