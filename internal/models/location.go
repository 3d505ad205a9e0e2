package models

import "math"

// LocationSnapshot is a point frozen onto a record at write time. Orders
// embed two of these (pickup and drop); later edits to the source address
// never touch them.
type LocationSnapshot struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinates are finite and inside the WGS84
// ranges. NaN from the haversine is avoided by checking here first.
func (l LocationSnapshot) Valid() bool {
	if math.IsNaN(l.Latitude) || math.IsNaN(l.Longitude) ||
		math.IsInf(l.Latitude, 0) || math.IsInf(l.Longitude, 0) {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}
