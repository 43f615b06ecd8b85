package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// List retrieves all categories.
	List(ctx context.Context) ([]model.Category, error)

	// GetByID retrieves a single category by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Category, error)

	// Create inserts a new category and fills in its assigned ID.
	Create(ctx context.Context, c *model.Category) error

	// Update replaces a category's stored fields. Reports whether the row existed.
	Update(ctx context.Context, c *model.Category) (bool, error)

	// Delete removes a category. Products referencing it are nullified by
	// the storage layer, never deleted. Reports whether the row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products matching the filter, newest first.
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)

	// ListByOwner retrieves the products owned by the given identity, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Product, error)

	// GetByID retrieves a single product with its category and owner joined
	// in. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Create inserts a new product and fills in its assigned ID and timestamps.
	Create(ctx context.Context, p *model.Product) error

	// Update replaces a product's editable fields and bumps updated_at.
	// Reports whether the row existed.
	Update(ctx context.Context, p *model.Product) (bool, error)

	// Delete removes a product; its reviews cascade away in storage.
	// Reports whether the row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// List retrieves reviews, optionally narrowed to one product, newest first.
	List(ctx context.Context, productID *int64) ([]model.Review, error)

	// GetByID retrieves a single review by its ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Review, error)

	// Create inserts a new review and fills in its assigned ID and timestamps.
	Create(ctx context.Context, rv *model.Review) error

	// Update replaces a review's editable fields and bumps updated_at.
	// Reports whether the row existed.
	Update(ctx context.Context, rv *model.Review) (bool, error)

	// Delete removes a review. Reports whether the row existed.
	Delete(ctx context.Context, id int64) (bool, error)
}

// UserRepository mirrors identity-provider subjects into local storage.
type UserRepository interface {
	// Ensure upserts the identity so ownership foreign keys can reference it.
	Ensure(ctx context.Context, ident *model.Identity) error

	// GetByID retrieves a user by ID. Returns nil when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)

	// Delete removes a user; their products (and those products' reviews)
	// cascade away in storage. Reports whether the row existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// wrapWriteError classifies write failures. Foreign key violations mean a
// referenced row vanished between validation and write; they surface as
// integrity errors rather than succeeding silently or masquerading as
// client mistakes.
func wrapWriteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return &model.IntegrityError{Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
