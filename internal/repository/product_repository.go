package repository

import (
	"context"
	"fmt"
	"strings"

	"catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// productColumns selects a product with its category and owner joined in.
const productColumns = `
	SELECT p.id, p.title, p.description, p.price,
	       p.category_id, c.name, c.description,
	       p.owner_id, u.username, p.image,
	       p.created_at, p.updated_at
	FROM products p
	LEFT JOIN categories c ON c.id = p.category_id
	JOIN users u ON u.id = p.owner_id
`

// scanProduct scans one joined product row, reassembling the nested
// category when the reference is present.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var (
		p             model.Product
		categoryName  *string
		categoryDescr *string
	)

	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Price,
		&p.CategoryID, &categoryName, &categoryDescr,
		&p.OwnerID, &p.Owner, &p.Image,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if p.CategoryID != nil && categoryName != nil {
		p.Category = &model.Category{
			ID:          *p.CategoryID,
			Name:        *categoryName,
			Description: *categoryDescr,
		}
	}

	return &p, nil
}

// escapeLike neutralises LIKE metacharacters so a search term always means
// its literal characters. Postgres treats backslash as the escape character
// by default.
func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}

// List retrieves products matching the filter, newest first. The search
// term matches title OR description case-insensitively as a literal
// substring; the category filter is exact; filters of different kinds
// compose with AND. An empty filter matches everything.
func (r *productRepository) List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error) {
	query := productColumns + `
		WHERE ($1 = '' OR p.title ILIKE '%' || $1 || '%' OR p.description ILIKE '%' || $1 || '%')
		  AND ($2::bigint IS NULL OR p.category_id = $2)
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.pool.Query(ctx, query, escapeLike(filter.Search), filter.CategoryID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("search", filter.Search).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, r.logger)
}

// ListByOwner retrieves the products owned by the given identity, newest first.
func (r *productRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Product, error) {
	query := productColumns + `
		WHERE p.owner_id = $1
		ORDER BY p.created_at DESC, p.id DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		r.logger.Error().Err(err).
			Str("owner_id", ownerID.String()).
			Msg("failed to query products by owner")
		return nil, fmt.Errorf("failed to query products by owner: %w", err)
	}
	defer rows.Close()

	return collectProducts(rows, r.logger)
}

// collectProducts drains joined product rows.
func collectProducts(rows pgx.Rows, logger zerolog.Logger) ([]model.Product, error) {
	var products []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := productColumns + `WHERE p.id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Create inserts a new product and fills in its assigned ID and timestamps.
func (r *productRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (title, description, price, category_id, owner_id, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.Title, p.Description, p.Price, p.CategoryID, p.OwnerID, p.Image,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Str("title", p.Title).
			Str("owner_id", p.OwnerID.String()).
			Msg("failed to create product")
		return wrapWriteError("failed to create product", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")
	return nil
}

// Update replaces a product's editable fields and bumps updated_at. The
// owner is immutable after creation and deliberately not part of the SET list.
func (r *productRepository) Update(ctx context.Context, p *model.Product) (bool, error) {
	query := `
		UPDATE products
		SET title = $2, description = $3, price = $4, category_id = $5,
		    image = $6, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, p.Price, p.CategoryID, p.Image,
	).Scan(&p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		r.logger.Error().Err(err).Int64("product_id", p.ID).Msg("failed to update product")
		return false, wrapWriteError("failed to update product", err)
	}

	return true, nil
}

// Delete removes a product; its reviews cascade away via the ON DELETE
// CASCADE constraint.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, wrapWriteError("failed to delete product", err)
	}

	r.logger.Debug().Int64("product_id", id).Msg("product deleted")
	return tag.RowsAffected() > 0, nil
}
