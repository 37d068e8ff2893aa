// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/paulmach/orb"
)

// Island is one of the fixed regions a restaurant belongs to.
type Island string

const (
	IslandStThomas    Island = "St. Thomas"
	IslandStJohn      Island = "St. John"
	IslandStCroix     Island = "St. Croix"
	IslandWaterIsland Island = "Water Island"
)

// Islands lists every island in display order.
var Islands = []Island{IslandStThomas, IslandStJohn, IslandStCroix, IslandWaterIsland}

// Valid reports whether the island is one of the known islands.
func (i Island) Valid() bool {
	return slices.Contains(Islands, i)
}

// PriceLevel is the ordinal price tier of a restaurant.
type PriceLevel string

const (
	PriceBudget   PriceLevel = "$"
	PriceModerate PriceLevel = "$$"
	PriceUpscale  PriceLevel = "$$$"
)

// PriceLevels lists the tiers from cheapest to most expensive.
var PriceLevels = []PriceLevel{PriceBudget, PriceModerate, PriceUpscale}

func (p PriceLevel) Valid() bool {
	return slices.Contains(PriceLevels, p)
}

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Point returns the coordinates as an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

type Location struct {
	Address      string      `json:"address"`
	Coordinates  Coordinates `json:"coordinates"`
	Neighborhood string      `json:"neighborhood,omitempty"`
}

type Contact struct {
	Phone     string `json:"phone,omitempty"`
	Website   string `json:"website,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type Images struct {
	Hero    string   `json:"hero"`
	Logo    string   `json:"logo,omitempty"`
	Gallery []string `json:"gallery"`
}

// Restaurant is a catalog item. Catalog entries are never mutated in place;
// edits replace the whole value.
type Restaurant struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Slug           string         `json:"slug"`
	Description    string         `json:"description"`
	Island         Island         `json:"island"`
	Cuisine        []string       `json:"cuisine"`
	PriceLevel     PriceLevel     `json:"priceLevel"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"reviewCount"`
	Images         Images         `json:"images"`
	Location       Location       `json:"location"`
	Contact        Contact        `json:"contact"`
	Hours          WeeklySchedule `json:"hours"`
	Features       []string       `json:"features"`
	DietaryOptions []string       `json:"dietaryOptions"`
	Menu           []MenuCategory `json:"menu"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}

// Clone returns a deep copy so callers can build a replacement value.
func (r *Restaurant) Clone() *Restaurant {
	if r == nil {
		return nil
	}

	clone := *r
	clone.Cuisine = slices.Clone(r.Cuisine)
	clone.Features = slices.Clone(r.Features)
	clone.DietaryOptions = slices.Clone(r.DietaryOptions)
	clone.Images.Gallery = slices.Clone(r.Images.Gallery)
	clone.Hours = r.Hours.Clone()
	clone.Menu = CloneMenu(r.Menu)

	return &clone
}

type MenuCategory struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Items       []MenuItem `json:"items"`
}

// MenuItem price is free text because items may be priced "Market Price".
type MenuItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Price       string           `json:"price"`
	Options     []MenuItemOption `json:"options,omitempty"`
	DietaryTags []string         `json:"dietaryTags,omitempty"`
	Popular     bool             `json:"popular,omitempty"`
}

type MenuItemOption struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
}

// CloneMenu deep-copies a menu.
func CloneMenu(menu []MenuCategory) []MenuCategory {
	if menu == nil {
		return nil
	}

	cloned := make([]MenuCategory, len(menu))
	for i, category := range menu {
		cloned[i] = category
		cloned[i].Items = make([]MenuItem, len(category.Items))
		for j, item := range category.Items {
			item.Options = slices.Clone(item.Options)
			item.DietaryTags = slices.Clone(item.DietaryTags)
			cloned[i].Items[j] = item
		}
	}

	return cloned
}
