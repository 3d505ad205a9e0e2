package models

import "time"

// Dish is a live menu entry. Orders snapshot these values; this row keeps
// changing independently.
type Dish struct {
	ID          string          `json:"id"`
	VendorID    string          `json:"vendor_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       float64         `json:"price"`
	ImageURL    string          `json:"image_url"`
	Category    string          `json:"category"`
	Rating      RatingAggregate `json:"rating"`
	Tags        []string        `json:"tags,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CreateDishRequest adds a dish to the calling vendor's menu.
type CreateDishRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Price       float64  `json:"price" validate:"min=0"`
	ImageURL    string   `json:"image_url,omitempty"`
	Category    string   `json:"category" validate:"required"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateDishRequest changes the mutable fields of a dish.
type UpdateDishRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=500"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,min=0"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
