package models

import "time"

// Role of an authenticated user.
const (
	RoleCustomer = "Customer"
	RoleVendor   = "Vendor"
)

// User is an account that can authenticate. Vendors additionally own a
// Vendor row keyed by UserID.
type User struct {
	ID           string            `json:"id"`
	FullName     string            `json:"full_name"`
	Email        string            `json:"email"`
	PasswordHash string            `json:"-"`
	Contact      string            `json:"contact"`
	Role         string            `json:"role"`
	Location     *LocationSnapshot `json:"location,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// RegisterRequest creates a new account.
type RegisterRequest struct {
	FullName string            `json:"full_name" validate:"required"`
	Email    string            `json:"email" validate:"required,email"`
	Password string            `json:"password" validate:"required,min=6"`
	Contact  string            `json:"contact" validate:"required,len=10,numeric"`
	Role     string            `json:"role" validate:"omitempty,oneof=Customer Vendor"`
	Location *LocationSnapshot `json:"location,omitempty"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
