package models

import "errors"

var ErrNotFound = errors.New("requested resource not found")
var ErrForbidden = errors.New("user does not have permission to access this resource")
var ErrConflict = errors.New("resource conflict, item already exists")
var ErrInvalidToken = errors.New("token not found or expired")
var ErrInvalidCredentials = errors.New("invalid credentials") // email or password provided does not match database record

// Validation failures around order creation.
var ErrEmptyCart = errors.New("cart cannot be empty")
var ErrInvalidLocation = errors.New("location must have finite, in-range latitude and longitude")
var ErrInvalidCartLine = errors.New("cart line has a negative price or non-positive quantity")

// ErrDishMismatch indicates that one or more cart lines reference dishes
// that do not exist or do not belong to the target vendor.
var ErrDishMismatch = errors.New("some dishes are invalid for this vendor")

// Status lifecycle violations.
var ErrOrderClosed = errors.New("order is delivered or canceled and can no longer change")
var ErrStatusOrder = errors.New("status change would move backwards in the delivery lifecycle")
var ErrInvalidStatus = errors.New("unknown order status")

var ErrInvalidRating = errors.New("rating must be between 0 and 5")
var ErrCancelReasonRequired = errors.New("cancellation reason is required")

// ErrorResponse is the standard JSON error body returned by all handlers.
type ErrorResponse struct {
	Message string `json:"message"`
}
