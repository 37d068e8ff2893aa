package entity

// Cuisines are the cuisine tags offered as filter chips.
var Cuisines = []string{
	"Caribbean",
	"American",
	"Italian",
	"Mexican",
	"Seafood",
	"Asian",
	"French",
	"Pizza",
	"Burgers",
	"Sushi",
	"Vegetarian",
	"Bakery",
	"Bar & Grill",
}

// Features are the amenity tags offered as filter chips.
var Features = []string{
	"waterfront",
	"parking",
	"kid-friendly",
	"live-music",
	"outdoor-seating",
	"wifi",
	"takeout",
	"delivery",
}

// DietaryOptions are the dietary tags offered as filter chips.
var DietaryOptions = []string{
	"vegan",
	"vegetarian",
	"gluten-free",
	"dairy-free",
	"keto",
}

// Facets is the set of values a client can offer in filter controls.
type Facets struct {
	Islands        []Island     `json:"islands"`
	Cuisines       []string     `json:"cuisines"`
	Features       []string     `json:"features"`
	DietaryOptions []string     `json:"dietaryOptions"`
	PriceLevels    []PriceLevel `json:"priceLevels"`
}

// DefaultFacets returns the fixed filter vocabulary.
func DefaultFacets() Facets {
	return Facets{
		Islands:        Islands,
		Cuisines:       Cuisines,
		Features:       Features,
		DietaryOptions: DietaryOptions,
		PriceLevels:    PriceLevels,
	}
}
