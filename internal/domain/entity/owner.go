package entity

import (
	"slices"

	"github.com/google/uuid"
)

// OwnerClaims identifies a restaurant owner and the restaurants they manage.
type OwnerClaims struct {
	OwnerID       uuid.UUID `json:"ownerId"`
	RestaurantIDs []string  `json:"restaurantIds"`
}

// CanManage reports whether the owner may edit the given restaurant.
func (c *OwnerClaims) CanManage(restaurantID string) bool {
	if c == nil {
		return false
	}

	return slices.Contains(c.RestaurantIDs, restaurantID)
}
