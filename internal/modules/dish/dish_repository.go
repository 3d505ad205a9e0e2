package dish

import (
	"context"
	"errors"
	"fmt"

	"dine-and-deliver/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryInterface defines the contract for the dish repository.
type RepositoryInterface interface {
	Create(ctx context.Context, dish *models.Dish) (*models.Dish, error)
	Update(ctx context.Context, dishID, vendorID string, req models.UpdateDishRequest) (*models.Dish, error)
	Delete(ctx context.Context, dishID, vendorID string) error
	FindByID(ctx context.Context, dishID string) (*models.Dish, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*models.Dish, error)
	ListAll(ctx context.Context) ([]*models.Dish, error)
	Search(ctx context.Context, query string) ([]*models.Dish, error)
	// FindForVendor resolves dish ids scoped to one vendor; ids from other
	// vendors or deleted dishes simply do not come back.
	FindForVendor(ctx context.Context, vendorID string, dishIDs []string) ([]*models.Dish, error)
	// RecordFoodRating folds one score into the dish aggregate using the
	// floored-to-one-decimal average rule.
	RecordFoodRating(ctx context.Context, dishID string, score float64) error
}

// Repository implements the RepositoryInterface.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new dish repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

const dishColumns = `id, vendor_id, name, description, price, image_url, category,
	rating_total, rating_count, avg_rating, tags, created_at, updated_at`

// Create inserts a new dish for a vendor.
func (r *Repository) Create(ctx context.Context, dish *models.Dish) (*models.Dish, error) {
	query := `
		INSERT INTO dishes (vendor_id, name, description, price, image_url, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + dishColumns
	row := r.db.QueryRow(ctx, query,
		dish.VendorID, dish.Name, dish.Description, dish.Price, dish.ImageURL, dish.Category, dish.Tags)
	created, err := scanDish(row)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateDish: %w", err)
	}
	return created, nil
}

// Update changes only the provided fields, scoped to the owning vendor.
func (r *Repository) Update(ctx context.Context, dishID, vendorID string, req models.UpdateDishRequest) (*models.Dish, error) {
	query := `
		UPDATE dishes
		SET name        = COALESCE($3, name),
		    description = COALESCE($4, description),
		    price       = COALESCE($5, price),
		    image_url   = COALESCE($6, image_url),
		    category    = COALESCE($7, category),
		    tags        = COALESCE($8, tags),
		    updated_at  = NOW()
		WHERE id = $1 AND vendor_id = $2
		RETURNING ` + dishColumns
	row := r.db.QueryRow(ctx, query, dishID, vendorID,
		req.Name, req.Description, req.Price, req.ImageURL, req.Category, req.Tags)
	dish, err := scanDish(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.UpdateDish: %w", err)
	}
	return dish, nil
}

// Delete removes a dish owned by the vendor.
func (r *Repository) Delete(ctx context.Context, dishID, vendorID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM dishes WHERE id = $1 AND vendor_id = $2`, dishID, vendorID)
	if err != nil {
		return fmt.Errorf("repository.DeleteDish: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

// FindByID retrieves a single dish.
func (r *Repository) FindByID(ctx context.Context, dishID string) (*models.Dish, error) {
	row := r.db.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, dishID)
	dish, err := scanDish(row)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindDishByID: %w", err)
	}
	return dish, nil
}

// ListByVendor returns a vendor's menu, newest first.
func (r *Repository) ListByVendor(ctx context.Context, vendorID string) ([]*models.Dish, error) {
	return r.list(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE vendor_id = $1 ORDER BY created_at DESC`, vendorID)
}

// ListAll returns the full public catalog.
func (r *Repository) ListAll(ctx context.Context) ([]*models.Dish, error) {
	return r.list(ctx, `SELECT `+dishColumns+` FROM dishes ORDER BY created_at DESC`)
}

// Search matches dish names case-insensitively.
func (r *Repository) Search(ctx context.Context, query string) ([]*models.Dish, error) {
	return r.list(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE name ILIKE '%' || $1 || '%' ORDER BY created_at DESC`, query)
}

// FindForVendor resolves the given ids scoped to the vendor.
func (r *Repository) FindForVendor(ctx context.Context, vendorID string, dishIDs []string) ([]*models.Dish, error) {
	return r.list(ctx,
		`SELECT `+dishColumns+` FROM dishes WHERE vendor_id = $1 AND id = ANY($2)`, vendorID, dishIDs)
}

// RecordFoodRating updates the aggregate in one statement. The floored
// average mirrors models.RatingAggregate.RecordFloored; dishes round down
// to one decimal while vendors keep the raw mean.
func (r *Repository) RecordFoodRating(ctx context.Context, dishID string, score float64) error {
	query := `
		UPDATE dishes
		SET rating_total = rating_total + $2,
		    rating_count = rating_count + 1,
		    avg_rating   = floor((rating_total + $2) / (rating_count + 1) * 10) / 10,
		    updated_at   = NOW()
		WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, dishID, score)
	if err != nil {
		return fmt.Errorf("repository.RecordFoodRating: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...any) ([]*models.Dish, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("repository.ListDishes: %w", err)
	}
	defer rows.Close()

	var dishes []*models.Dish
	for rows.Next() {
		dish, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("repository.ListDishes: %w", err)
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func scanDish(row pgx.Row) (*models.Dish, error) {
	var dish models.Dish
	err := row.Scan(
		&dish.ID, &dish.VendorID, &dish.Name, &dish.Description, &dish.Price,
		&dish.ImageURL, &dish.Category,
		&dish.Rating.Total, &dish.Rating.Count, &dish.Rating.Avg,
		&dish.Tags, &dish.CreatedAt, &dish.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &dish, nil
}
