package order

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"dine-and-deliver/internal/models"
	"dine-and-deliver/pkg/geo"
	"dine-and-deliver/pkg/notify"
	"dine-and-deliver/pkg/pricing"

	"github.com/google/uuid"
)

// VendorDirectoryInterface is what the lifecycle service needs from the
// vendor module: lookups, the order-list link write and the rating fold.
type VendorDirectoryInterface interface {
	FindByID(ctx context.Context, vendorID string) (*models.Vendor, error)
	FindByUserID(ctx context.Context, userID string) (*models.Vendor, error)
	AppendOrder(ctx context.Context, vendorID, orderID string) error
	RecordRating(ctx context.Context, vendorID string, score float64) error
}

// DishCatalogInterface is the read-only dish lookup used during creation,
// plus the food-score fold applied on rating.
type DishCatalogInterface interface {
	FindForVendor(ctx context.Context, vendorID string, dishIDs []string) ([]*models.Dish, error)
	RecordFoodRating(ctx context.Context, dishID string, score float64) error
}

// ServiceInterface defines the contract for the order lifecycle service.
type ServiceInterface interface {
	Create(ctx context.Context, customerID string, req models.CreateOrderRequest) (*models.Order, error)
	Track(ctx context.Context, orderID, customerID string) (*models.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string, activeOnly bool) ([]*models.Order, error)
	ListVendorOrders(ctx context.Context, vendorUserID string, activeOnly bool) ([]*models.Order, error)
	UpdateStatus(ctx context.Context, orderID, vendorUserID, status string) (*models.Order, error)
	CancelByCustomer(ctx context.Context, orderID, customerID, reason string) (*models.Order, error)
	CancelByVendor(ctx context.Context, orderID, vendorUserID, reason string) (*models.Order, error)
	Rate(ctx context.Context, orderID, customerID string, req models.RateOrderRequest) (*models.Order, error)
}

// Service implements the order lifecycle.
type Service struct {
	repo     RepositoryInterface
	vendors  VendorDirectoryInterface
	catalog  DishCatalogInterface
	notifier notify.Notifier
}

// NewService creates a new order service.
func NewService(repo RepositoryInterface, vendors VendorDirectoryInterface, catalog DishCatalogInterface, notifier notify.Notifier) *Service {
	if notifier == nil {
		notifier = notify.NoopNotifier{}
	}
	return &Service{
		repo:     repo,
		vendors:  vendors,
		catalog:  catalog,
		notifier: notifier,
	}
}

// Create validates the cart against the vendor's live menu, computes the
// delivery estimate and bill, and persists the order starting at Placed.
func (s *Service) Create(ctx context.Context, customerID string, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.CartItems) == 0 {
		return nil, models.ErrEmptyCart
	}
	if !req.DropLocation.Valid() {
		return nil, models.ErrInvalidLocation
	}

	vendor, err := s.vendors.FindByID(ctx, req.VendorID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("service.CreateOrder: %w", err)
	}

	// Vendors without a registered location get the drop coordinate as a
	// stand-in pickup. That zeroes distance and ETA; the order carries a
	// degraded-estimate flag instead of hiding it.
	pickup := models.LocationSnapshot{Address: "Default Vendor Location",
		Latitude: req.DropLocation.Latitude, Longitude: req.DropLocation.Longitude}
	degraded := true
	if vendor.Location != nil {
		pickup = *vendor.Location
		degraded = false
	}

	dishIDs := make([]string, 0, len(req.CartItems))
	for _, line := range req.CartItems {
		dishIDs = append(dishIDs, line.DishID)
	}
	dishes, err := s.catalog.FindForVendor(ctx, vendor.ID, dishIDs)
	if err != nil {
		return nil, fmt.Errorf("service.CreateOrder: resolve dishes: %w", err)
	}
	// Set-equality check: deleted dishes, another vendor's dishes and
	// duplicated cart lines all surface here as a count mismatch.
	if len(dishes) != len(req.CartItems) {
		return nil, models.ErrDishMismatch
	}
	dishByID := make(map[string]*models.Dish, len(dishes))
	for _, d := range dishes {
		dishByID[d.ID] = d
	}

	lines := make([]pricing.Line, 0, len(req.CartItems))
	for _, line := range req.CartItems {
		lines = append(lines, pricing.Line{UnitPrice: line.UnitPrice, Quantity: line.Quantity})
	}
	bill, err := pricing.Quote(lines)
	if err != nil {
		if errors.Is(err, pricing.ErrInvalidLine) {
			return nil, models.ErrInvalidCartLine
		}
		return nil, fmt.Errorf("service.CreateOrder: %w", err)
	}

	distanceKm := geo.RoundKm(geo.DistanceKm(
		pickup.Latitude, pickup.Longitude,
		req.DropLocation.Latitude, req.DropLocation.Longitude))

	cart := make([]models.CartItem, 0, len(req.CartItems))
	for _, line := range req.CartItems {
		item := models.CartItem{
			DishID:    line.DishID,
			Name:      line.Name,
			ImageURL:  line.ImageURL,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		}
		if d := dishByID[line.DishID]; d != nil {
			if item.Name == "" {
				item.Name = d.Name
			}
			if item.ImageURL == "" {
				item.ImageURL = d.ImageURL
			}
		}
		cart = append(cart, item)
	}

	now := time.Now()
	order := &models.Order{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		VendorID:   vendor.ID,
		CartItems:  cart,
		DeliveryDetails: models.DeliveryDetails{
			Pickup:           pickup,
			Drop:             req.DropLocation,
			DistanceKm:       distanceKm,
			EstimatedTimeMin: geo.ETAMinutes(distanceKm),
			DegradedEstimate: degraded,
		},
		Bill: models.Bill{
			CartTotal:  bill.CartTotal,
			TaxAmount:  bill.TaxAmount,
			GrandTotal: bill.GrandTotal,
		},
		CurrentStatus: models.StatusPlaced,
		StatusHistory: []models.StatusEntry{{Status: models.StatusPlaced, Time: now}},
		IsActive:      true,
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("service.CreateOrder: %w", err)
	}

	// Secondary write: link the order on the vendor side. Not atomic with
	// the insert; on failure the order still exists and vendor-filtered
	// order queries remain the source of truth.
	if err := s.vendors.AppendOrder(ctx, vendor.ID, created.ID); err != nil {
		log.Printf("CRITICAL: order %s created but vendor %s link failed: %v", created.ID, vendor.ID, err)
	}

	return created, nil
}

// Track retrieves a customer's order.
func (s *Service) Track(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	return s.repo.FindByIDForCustomer(ctx, orderID, customerID)
}

// ListCustomerOrders lists a customer's order history or active dashboard.
func (s *Service) ListCustomerOrders(ctx context.Context, customerID string, activeOnly bool) ([]*models.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID, activeOnly)
}

// ListVendorOrders lists the calling vendor's orders.
func (s *Service) ListVendorOrders(ctx context.Context, vendorUserID string, activeOnly bool) ([]*models.Order, error) {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByVendor(ctx, vendor.ID, activeOnly)
}

// UpdateStatus moves a vendor's own order along the lifecycle. The
// aggregate guard rejects terminal orders, unknown states and backward
// moves, and appends history only on an actual change.
func (s *Service) UpdateStatus(ctx context.Context, orderID, vendorUserID, status string) (*models.Order, error) {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}

	order, err := s.repo.FindByIDForVendor(ctx, orderID, vendor.ID)
	if err != nil {
		return nil, err
	}

	if err := order.ApplyStatus(models.OrderStatus(status), time.Now()); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("service.UpdateStatus: %w", err)
	}

	s.notifyStatus(ctx, updated)
	return updated, nil
}

// CancelByCustomer cancels the customer's own order.
func (s *Service) CancelByCustomer(ctx context.Context, orderID, customerID, reason string) (*models.Order, error) {
	order, err := s.repo.FindByIDForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, order, customerID, reason, models.ActorCustomer)
}

// CancelByVendor cancels an order on the vendor side.
func (s *Service) CancelByVendor(ctx context.Context, orderID, vendorUserID, reason string) (*models.Order, error) {
	vendor, err := s.vendors.FindByUserID(ctx, vendorUserID)
	if err != nil {
		return nil, err
	}
	order, err := s.repo.FindByIDForVendor(ctx, orderID, vendor.ID)
	if err != nil {
		return nil, err
	}
	return s.cancel(ctx, order, vendorUserID, reason, models.ActorRestaurantOwner)
}

func (s *Service) cancel(ctx context.Context, order *models.Order, actorID, reason string, actor models.ActorType) (*models.Order, error) {
	if err := order.Cancel(actorID, reason, actor, time.Now()); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("service.CancelOrder: %w", err)
	}
	s.notifyStatus(ctx, updated)
	return updated, nil
}

// Rate stores the customer's scores on the order and folds them into the
// vendor and dish aggregates. There is deliberately no status guard here;
// clients rate orders before delivery and depend on that.
func (s *Service) Rate(ctx context.Context, orderID, customerID string, req models.RateOrderRequest) (*models.Order, error) {
	if !validScore(req.RestaurantRating) || !validScore(req.FoodRating) || !validScore(req.DeliveryRating) {
		return nil, models.ErrInvalidRating
	}

	order, err := s.repo.FindByIDForCustomer(ctx, orderID, customerID)
	if err != nil {
		return nil, err
	}

	order.RatingDetails = &models.RatingDetails{
		Restaurant: req.RestaurantRating,
		Food:       req.FoodRating,
		Delivery:   req.DeliveryRating,
	}
	updated, err := s.repo.Update(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("service.RateOrder: %w", err)
	}

	if err := s.vendors.RecordRating(ctx, order.VendorID, req.RestaurantRating); err != nil {
		log.Printf("CRITICAL: order %s rated but vendor %s aggregate update failed: %v", order.ID, order.VendorID, err)
	}
	for _, dishID := range distinctDishIDs(order.CartItems) {
		if err := s.catalog.RecordFoodRating(ctx, dishID, req.FoodRating); err != nil {
			log.Printf("CRITICAL: order %s rated but dish %s aggregate update failed: %v", order.ID, dishID, err)
		}
	}

	return updated, nil
}

func (s *Service) notifyStatus(ctx context.Context, order *models.Order) {
	email, err := s.repo.CustomerEmail(ctx, order.ID)
	if err != nil || email == "" {
		return
	}
	if err := s.notifier.OrderStatusChanged(ctx, email, order.ID, string(order.CurrentStatus)); err != nil {
		log.Printf("order %s: status notification failed: %v", order.ID, err)
	}
}

func validScore(score float64) bool {
	return score >= 0 && score <= 5
}

func distinctDishIDs(items []models.CartItem) []string {
	seen := make(map[string]struct{}, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.DishID]; ok {
			continue
		}
		seen[item.DishID] = struct{}{}
		ids = append(ids, item.DishID)
	}
	return ids
}
