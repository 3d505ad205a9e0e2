package auth

import (
	"context"
	"errors"
	"fmt"

	"dine-and-deliver/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// Repository implements RepositoryInterface on PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new auth repository.
func NewRepository(db *pgxpool.Pool) RepositoryInterface {
	return &Repository{db: db}
}

// CreateUser inserts the account row; when the role is Vendor a blank
// vendor profile is created in the same transaction.
func (r *Repository) CreateUser(ctx context.Context, user *models.User, passwordHash string) (*models.User, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository.CreateUser: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var address any
	var lat, lon any
	if user.Location != nil {
		address = user.Location.Address
		lat = user.Location.Latitude
		lon = user.Location.Longitude
	}

	query := `
		INSERT INTO users (full_name, email, password_hash, contact, role, address, location)
		VALUES ($1, $2, $3, $4, $5, $6,
		        CASE WHEN $7::float8 IS NULL THEN NULL
		             ELSE ST_SetSRID(ST_MakePoint($8::float8, $7::float8), 4326)::geography END)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(ctx, query,
		user.FullName, user.Email, passwordHash, user.Contact, user.Role, address, lat, lon,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, models.ErrConflict
		}
		return nil, fmt.Errorf("repository.CreateUser: %w", err)
	}

	if user.Role == models.RoleVendor {
		_, err = tx.Exec(ctx,
			`INSERT INTO vendors (user_id, shop_name, is_active) VALUES ($1, $2, TRUE)`,
			user.ID, user.FullName)
		if err != nil {
			return nil, fmt.Errorf("repository.CreateUser: vendor profile: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository.CreateUser: commit: %w", err)
	}
	return user, nil
}

// FindUserByEmail returns the account and its password hash.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, string, error) {
	query := `
		SELECT id, full_name, email, password_hash, contact, role,
		       address,
		       ST_Y(location::geometry), ST_X(location::geometry),
		       created_at, updated_at
		FROM users
		WHERE email = $1`
	user, hash, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, "", models.ErrNotFound
		}
		return nil, "", fmt.Errorf("repository.FindUserByEmail: %w", err)
	}
	return user, hash, nil
}

// FindUserByID returns the account without credentials.
func (r *Repository) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, full_name, email, password_hash, contact, role,
		       address,
		       ST_Y(location::geometry), ST_X(location::geometry),
		       created_at, updated_at
		FROM users
		WHERE id = $1`
	user, _, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("repository.FindUserByID: %w", err)
	}
	return user, nil
}

func scanUser(row pgx.Row) (*models.User, string, error) {
	var user models.User
	var hash string
	var address *string
	var lat, lon *float64
	err := row.Scan(
		&user.ID, &user.FullName, &user.Email, &hash, &user.Contact, &user.Role,
		&address, &lat, &lon,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", models.ErrNotFound
		}
		return nil, "", err
	}
	if lat != nil && lon != nil {
		loc := models.LocationSnapshot{Latitude: *lat, Longitude: *lon}
		if address != nil {
			loc.Address = *address
		}
		user.Location = &loc
	}
	return &user, hash, nil
}
