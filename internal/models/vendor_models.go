package models

import "time"

// Earnings buckets the grand totals of delivered orders by date. The
// buckets are recomputed on demand, not streamed incrementally.
type Earnings struct {
	Today     float64 `json:"today"`
	ThisWeek  float64 `json:"this_week"`
	ThisMonth float64 `json:"this_month"`
	Total     float64 `json:"total"`
}

// Vendor is a restaurant profile owned by a user account.
type Vendor struct {
	ID        string            `json:"id"`
	UserID    string            `json:"user_id"`
	ShopName  string            `json:"shop_name"`
	ImageURL  string            `json:"image_url,omitempty"`
	FoodType  string            `json:"food_type"`
	OrderIDs  []string          `json:"orders"`
	Rating    RatingAggregate   `json:"rating"`
	Earnings  Earnings          `json:"earnings"`
	IsActive  bool              `json:"is_active"`
	Location  *LocationSnapshot `json:"location,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// NearbyVendor is a locator result: a vendor plus its distance from the
// query point. Results are always sorted ascending by distance.
type NearbyVendor struct {
	Vendor
	DistanceMeters float64 `json:"distance_meters"`
}

// UpdateVendorRequest updates the mutable profile fields.
type UpdateVendorRequest struct {
	ShopName *string `json:"shop_name,omitempty"`
	ImageURL *string `json:"image_url,omitempty"`
	FoodType *string `json:"food_type,omitempty" validate:"omitempty,oneof=Vegetables Fruits Both"`
}

// UpdateLocationRequest moves the vendor's registered pickup point.
type UpdateLocationRequest struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
