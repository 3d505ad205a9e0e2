package models

import (
	"time"
)

// OrderStatus is one of the delivery lifecycle states.
type OrderStatus string

const (
	StatusPending         OrderStatus = "Pending"
	StatusPlaced          OrderStatus = "Placed"
	StatusConfirmed       OrderStatus = "Confirmed"
	StatusPreparing       OrderStatus = "Preparing"
	StatusReadyForPickup  OrderStatus = "ReadyForPickup"
	StatusAcceptedByAgent OrderStatus = "AcceptedByAgent"
	StatusOutForDelivery  OrderStatus = "OutForDelivery"
	StatusDelivered       OrderStatus = "Delivered"
	StatusCanceled        OrderStatus = "Canceled"
)

// statusRank orders the forward lifecycle. Canceled sits outside the
// sequence and is handled separately.
var statusRank = map[OrderStatus]int{
	StatusPending:         0,
	StatusPlaced:          1,
	StatusConfirmed:       2,
	StatusPreparing:       3,
	StatusReadyForPickup:  4,
	StatusAcceptedByAgent: 5,
	StatusOutForDelivery:  6,
	StatusDelivered:       7,
}

// Known reports whether s is a valid lifecycle state.
func (s OrderStatus) Known() bool {
	_, ok := statusRank[s]
	return ok || s == StatusCanceled
}

// Terminal reports whether no further status mutation is permitted.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCanceled
}

// ActorType identifies who performed a cancellation.
type ActorType string

const (
	ActorCustomer        ActorType = "Customer"
	ActorRestaurantOwner ActorType = "Restaurant_Owner"
)

// CartItem is one order line, snapshotted at creation time. Dish price
// changes after the fact must not retroactively alter past orders.
type CartItem struct {
	DishID    string  `json:"dish_id"`
	Name      string  `json:"name"`
	ImageURL  string  `json:"image_url,omitempty"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// DeliveryDetails is computed once at creation and never recomputed.
type DeliveryDetails struct {
	Pickup           LocationSnapshot `json:"pickup"`
	Drop             LocationSnapshot `json:"drop"`
	DistanceKm       float64          `json:"distance_km"`
	EstimatedTimeMin int              `json:"estimated_time_min"`
	// DegradedEstimate marks orders priced against a fallback pickup
	// location (vendor had none registered), which zeroes distance and ETA.
	DegradedEstimate bool `json:"degraded_estimate,omitempty"`
}

// Bill holds the order totals. GrandTotal = CartTotal + TaxAmount always.
type Bill struct {
	CartTotal  float64 `json:"cart_total"`
	TaxAmount  float64 `json:"gst_amount"`
	GrandTotal float64 `json:"grand_total"`
}

// StatusEntry is one row of the append-only status audit trail.
type StatusEntry struct {
	Status OrderStatus `json:"status"`
	Time   time.Time   `json:"time"`
}

// CancellationDetails is present exactly when the order is Canceled.
type CancellationDetails struct {
	CanceledBy string    `json:"canceled_by"`
	Reason     string    `json:"reason"`
	ActorType  ActorType `json:"actor_type"`
}

// RatingDetails carries the customer's per-aspect scores, each in [0,5].
type RatingDetails struct {
	Restaurant float64 `json:"restaurant"`
	Food       float64 `json:"food"`
	Delivery   float64 `json:"delivery_agent"`
}

// Order is the central aggregate: delivery snapshot, cart snapshot, bill
// and the status history, all frozen or guarded after creation.
type Order struct {
	ID                  string               `json:"id"`
	CustomerID          string               `json:"customer_id"`
	VendorID            string               `json:"vendor_id"`
	CartItems           []CartItem           `json:"cart_items"`
	DeliveryDetails     DeliveryDetails      `json:"delivery_details"`
	Bill                Bill                 `json:"bill"`
	CurrentStatus       OrderStatus          `json:"current_status"`
	StatusHistory       []StatusEntry        `json:"status_history"`
	CancellationDetails *CancellationDetails `json:"cancellation_details,omitempty"`
	RatingDetails       *RatingDetails       `json:"rating_details,omitempty"`
	GatewayOrderID      string               `json:"gateway_order_id,omitempty"`
	PaymentID           string               `json:"payment_id,omitempty"`
	IsActive            bool                 `json:"is_active"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// ApplyStatus moves the order to next at time now. Terminal orders are
// frozen, unknown states rejected, and the lifecycle only runs forward;
// cancellation goes through Cancel instead. A history entry is appended
// only when the value actually changes, so the trail never holds two
// consecutive identical entries.
func (o *Order) ApplyStatus(next OrderStatus, now time.Time) error {
	if o.CurrentStatus.Terminal() {
		return ErrOrderClosed
	}
	if next == StatusCanceled {
		return ErrInvalidStatus
	}
	rank, ok := statusRank[next]
	if !ok {
		return ErrInvalidStatus
	}
	if rank < statusRank[o.CurrentStatus] {
		return ErrStatusOrder
	}
	o.setStatus(next, now)
	return nil
}

// Cancel moves the order to Canceled and stamps who did it and why.
// Reachable from any non-terminal state.
func (o *Order) Cancel(actorID, reason string, actor ActorType, now time.Time) error {
	if o.CurrentStatus.Terminal() {
		return ErrOrderClosed
	}
	if reason == "" {
		return ErrCancelReasonRequired
	}
	o.setStatus(StatusCanceled, now)
	o.CancellationDetails = &CancellationDetails{
		CanceledBy: actorID,
		Reason:     reason,
		ActorType:  actor,
	}
	return nil
}

func (o *Order) setStatus(next OrderStatus, now time.Time) {
	o.CurrentStatus = next
	if n := len(o.StatusHistory); n > 0 && o.StatusHistory[n-1].Status == next {
		return
	}
	o.StatusHistory = append(o.StatusHistory, StatusEntry{Status: next, Time: now})
}

// CartLineRequest is one line of an incoming cart.
type CartLineRequest struct {
	DishID    string  `json:"dish_id" validate:"required"`
	Name      string  `json:"name,omitempty"`
	ImageURL  string  `json:"image_url,omitempty"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity" validate:"required"`
}

// CreateOrderRequest represents the data needed to create a new order.
type CreateOrderRequest struct {
	VendorID     string            `json:"vendor_id" validate:"required"`
	CartItems    []CartLineRequest `json:"cart_items" validate:"required"`
	DropLocation LocationSnapshot  `json:"drop_location"`
}

// UpdateOrderStatusRequest carries the next lifecycle state.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// CancelOrderRequest carries the mandatory cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason" validate:"required"`
}

// RateOrderRequest carries the customer's scores for a finished order.
type RateOrderRequest struct {
	RestaurantRating float64 `json:"restaurant_rating" validate:"min=0,max=5"`
	FoodRating       float64 `json:"food_rating" validate:"min=0,max=5"`
	DeliveryRating   float64 `json:"delivery_rating" validate:"min=0,max=5"`
}
