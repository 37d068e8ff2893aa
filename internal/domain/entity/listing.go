package entity

// RestaurantListing is a restaurant as seen by one query: the shared catalog
// entry plus the fields derived for that query. The embedded restaurant must
// be treated as read-only.
type RestaurantListing struct {
	*Restaurant

	IsOpen bool `json:"isOpen"`
	// Distance in miles from the caller; nil when the caller's location is unknown.
	Distance *float64 `json:"distance,omitempty"`
}
