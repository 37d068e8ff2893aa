// Package geo computes great-circle distances between coordinates.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMiles is the mean Earth radius used by the haversine formula.
const EarthRadiusMiles = 3959.0

// DistanceMiles returns the haversine distance in miles between two points
// given in decimal degrees. Inputs are not validated; NaN propagates.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	a := sinLat*sinLat + math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*sinLon*sinLon

	return 2 * EarthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Distance is DistanceMiles over orb points, which store longitude first.
func Distance(a, b orb.Point) float64 {
	return DistanceMiles(a.Lat(), a.Lon(), b.Lat(), b.Lon())
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
