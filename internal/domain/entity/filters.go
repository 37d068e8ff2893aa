package entity

// SearchFilters narrows the catalog. Zero values mean "no constraint".
type SearchFilters struct {
	Query          string       `json:"query,omitempty"`
	Island         Island       `json:"island,omitempty"`
	Cuisine        string       `json:"cuisine,omitempty"`
	PriceLevels    []PriceLevel `json:"priceLevel,omitempty"`
	Features       []string     `json:"features,omitempty"`
	DietaryOptions []string     `json:"dietaryOptions,omitempty"`
	OpenNow        bool         `json:"openNow,omitempty"`
}

// ActiveCount is the number of filter chips a user has switched on.
func (f *SearchFilters) ActiveCount() int {
	if f == nil {
		return 0
	}

	count := len(f.Features) + len(f.DietaryOptions)
	if f.Island != "" {
		count++
	}
	if f.OpenNow {
		count++
	}

	return count
}
