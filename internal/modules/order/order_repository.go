package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dine-and-deliver/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the order repository. Orders
// are stored as one row per aggregate; cart, delivery details, history and
// the optional sub-documents live in JSONB columns so every mutation is a
// single-row (single-document) atomic write.
type RepositoryInterface interface {
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	FindByID(ctx context.Context, orderID string) (*models.Order, error)
	FindByIDForCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error)
	FindByIDForVendor(ctx context.Context, orderID, vendorID string) (*models.Order, error)
	// Update persists the mutable aggregate state: current status, history,
	// cancellation and rating sub-documents.
	Update(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByCustomer(ctx context.Context, customerID string, activeOnly bool) ([]*models.Order, error)
	ListByVendor(ctx context.Context, vendorID string, activeOnly bool) ([]*models.Order, error)
	// CustomerEmail resolves the ordering customer's email for
	// notifications.
	CustomerEmail(ctx context.Context, orderID string) (string, error)
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new order repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const orderColumns = `id, customer_id, vendor_id, cart_items, delivery_details, bill,
	current_status, status_history, cancellation_details, rating_details,
	gateway_order_id, payment_id, is_active, created_at, updated_at`

// Create inserts the full aggregate.
func (r *Repository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	cart, err := json.Marshal(order.CartItems)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateOrder: cart: %w", err)
	}
	delivery, err := json.Marshal(order.DeliveryDetails)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateOrder: delivery: %w", err)
	}
	bill, err := json.Marshal(order.Bill)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateOrder: bill: %w", err)
	}
	history, err := json.Marshal(order.StatusHistory)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateOrder: history: %w", err)
	}

	query := `
		INSERT INTO orders (id, customer_id, vendor_id, cart_items, delivery_details, bill,
		                    current_status, status_history, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns
	row := r.db.QueryRow(ctx, query,
		order.ID, order.CustomerID, order.VendorID, cart, delivery, bill,
		order.CurrentStatus, history, order.IsActive)
	created, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateOrder: %w", err)
	}
	return created, nil
}

// FindByID retrieves a single order by its ID.
func (r *Repository) FindByID(ctx context.Context, orderID string) (*models.Order, error) {
	row := r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, orderID)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByID: %w", err)
	}
	return order, nil
}

// FindByIDForCustomer retrieves an order only when owned by the customer;
// anything else is a plain not-found so nothing about other customers'
// orders leaks.
func (r *Repository) FindByIDForCustomer(ctx context.Context, orderID, customerID string) (*models.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND customer_id = $2`, orderID, customerID)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByIDForCustomer: %w", err)
	}
	return order, nil
}

// FindByIDForVendor is the vendor-scoped variant.
func (r *Repository) FindByIDForVendor(ctx context.Context, orderID, vendorID string) (*models.Order, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1 AND vendor_id = $2`, orderID, vendorID)
	order, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindByIDForVendor: %w", err)
	}
	return order, nil
}

// Update writes the mutable aggregate state back in one statement.
func (r *Repository) Update(ctx context.Context, order *models.Order) (*models.Order, error) {
	history, err := json.Marshal(order.StatusHistory)
	if err != nil {
		return nil, fmt.Errorf("repository.UpdateOrder: history: %w", err)
	}
	var cancellation, rating []byte
	if order.CancellationDetails != nil {
		if cancellation, err = json.Marshal(order.CancellationDetails); err != nil {
			return nil, fmt.Errorf("repository.UpdateOrder: cancellation: %w", err)
		}
	}
	if order.RatingDetails != nil {
		if rating, err = json.Marshal(order.RatingDetails); err != nil {
			return nil, fmt.Errorf("repository.UpdateOrder: rating: %w", err)
		}
	}

	query := `
		UPDATE orders
		SET current_status       = $2,
		    status_history       = $3,
		    cancellation_details = $4,
		    rating_details       = $5,
		    is_active            = $6,
		    updated_at           = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns
	row := r.db.QueryRow(ctx, query,
		order.ID, order.CurrentStatus, history, cancellation, rating, order.IsActive)
	updated, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateOrder: %w", err)
	}
	return updated, nil
}

// ListByCustomer returns a customer's orders, newest first. activeOnly
// restricts to dashboard orders: non-terminal and still flagged active.
func (r *Repository) ListByCustomer(ctx context.Context, customerID string, activeOnly bool) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1`
	if activeOnly {
		query += ` AND current_status NOT IN ('Delivered', 'Canceled') AND is_active`
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, customerID)
}

// ListByVendor returns a vendor's orders, newest first. This query, not the
// vendor's embedded order list, is the reconciliation source when the
// secondary link write was lost.
func (r *Repository) ListByVendor(ctx context.Context, vendorID string, activeOnly bool) ([]*models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE vendor_id = $1`
	if activeOnly {
		query += ` AND current_status NOT IN ('Delivered', 'Canceled') AND is_active`
	}
	query += ` ORDER BY created_at DESC`
	return r.list(ctx, query, vendorID)
}

// CustomerEmail resolves the ordering customer's email address.
func (r *Repository) CustomerEmail(ctx context.Context, orderID string) (string, error) {
	var email string
	err := r.db.QueryRow(ctx,
		`SELECT u.email FROM orders o JOIN users u ON u.id = o.customer_id WHERE o.id = $1`,
		orderID).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", models.ErrNotFound
		}
		return "", fmt.Errorf("repository.CustomerEmail: %w", err)
	}
	return email, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]*models.Order, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.ListOrders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListOrders: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

// scanOrder is a helper to scan a row into an Order model, unpacking the
// JSONB sub-documents.
func scanOrder(row pgx.Row) (*models.Order, error) {
	var order models.Order
	var cart, delivery, bill, history, cancellation, rating []byte
	var gatewayOrderID, paymentID *string
	err := row.Scan(
		&order.ID, &order.CustomerID, &order.VendorID,
		&cart, &delivery, &bill,
		&order.CurrentStatus, &history, &cancellation, &rating,
		&gatewayOrderID, &paymentID, &order.IsActive,
		&order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	if err := json.Unmarshal(cart, &order.CartItems); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}
	if err := json.Unmarshal(delivery, &order.DeliveryDetails); err != nil {
		return nil, fmt.Errorf("failed to decode delivery details: %w", err)
	}
	if err := json.Unmarshal(bill, &order.Bill); err != nil {
		return nil, fmt.Errorf("failed to decode bill: %w", err)
	}
	if err := json.Unmarshal(history, &order.StatusHistory); err != nil {
		return nil, fmt.Errorf("failed to decode status history: %w", err)
	}
	if len(cancellation) > 0 {
		order.CancellationDetails = &models.CancellationDetails{}
		if err := json.Unmarshal(cancellation, order.CancellationDetails); err != nil {
			return nil, fmt.Errorf("failed to decode cancellation details: %w", err)
		}
	}
	if len(rating) > 0 {
		order.RatingDetails = &models.RatingDetails{}
		if err := json.Unmarshal(rating, order.RatingDetails); err != nil {
			return nil, fmt.Errorf("failed to decode rating details: %w", err)
		}
	}
	if gatewayOrderID != nil {
		order.GatewayOrderID = *gatewayOrderID
	}
	if paymentID != nil {
		order.PaymentID = *paymentID
	}
	return &order, nil
}
