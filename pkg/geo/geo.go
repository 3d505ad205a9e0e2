// Package geo computes great-circle distances and the delivery ETA derived
// from them. Inputs are degrees; callers validate coordinates first, NaN
// propagates.
package geo

import "math"

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two points in
// kilometers.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(degreesToRadians(lat1))*math.Cos(degreesToRadians(lat2))*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// RoundKm rounds a distance to two decimal places for storage.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// ETAMinutes derives the delivery estimate from distance: four minutes per
// kilometer, rounded up. A fixed linear model, not a routing engine.
func ETAMinutes(distanceKm float64) int {
	return int(math.Ceil(distanceKm * 4))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
