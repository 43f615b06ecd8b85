package repository

import (
	"context"
	"fmt"

	"catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// reviewColumns selects a review with the product title denormalised in.
const reviewColumns = `
	SELECT rv.id, rv.product_id, p.title, rv.author, rv.rating, rv.text,
	       rv.created_at, rv.updated_at
	FROM reviews rv
	JOIN products p ON p.id = rv.product_id
`

// List retrieves reviews, optionally narrowed to one product, newest first.
// A nil productID matches everything; absence of a filter is never an error
// here (the by-product lookup enforces its own required parameter).
func (r *reviewRepository) List(ctx context.Context, productID *int64) ([]model.Review, error) {
	query := reviewColumns + `
		WHERE ($1::bigint IS NULL OR rv.product_id = $1)
		ORDER BY rv.created_at DESC, rv.id DESC
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		err := rows.Scan(
			&rv.ID, &rv.ProductID, &rv.ProductTitle, &rv.Author, &rv.Rating,
			&rv.Text, &rv.CreatedAt, &rv.UpdatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// GetByID retrieves a single review by its ID.
func (r *reviewRepository) GetByID(ctx context.Context, id int64) (*model.Review, error) {
	query := reviewColumns + `WHERE rv.id = $1`

	var rv model.Review
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rv.ID, &rv.ProductID, &rv.ProductTitle, &rv.Author, &rv.Rating,
		&rv.Text, &rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("review_id", id).Msg("review not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("review_id", id).Msg("failed to query review")
		return nil, fmt.Errorf("failed to query review: %w", err)
	}

	return &rv, nil
}

// Create inserts a new review and fills in its assigned ID and timestamps.
func (r *reviewRepository) Create(ctx context.Context, rv *model.Review) error {
	query := `
		INSERT INTO reviews (product_id, author, rating, text)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query, rv.ProductID, rv.Author, rv.Rating, rv.Text).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).
			Int64("product_id", rv.ProductID).
			Msg("failed to create review")
		return wrapWriteError("failed to create review", err)
	}

	r.logger.Debug().Int64("review_id", rv.ID).Msg("review created")
	return nil
}

// Update replaces a review's editable fields and bumps updated_at.
func (r *reviewRepository) Update(ctx context.Context, rv *model.Review) (bool, error) {
	query := `
		UPDATE reviews
		SET product_id = $2, author = $3, rating = $4, text = $5, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query, rv.ID, rv.ProductID, rv.Author, rv.Rating, rv.Text).
		Scan(&rv.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		r.logger.Error().Err(err).Int64("review_id", rv.ID).Msg("failed to update review")
		return false, wrapWriteError("failed to update review", err)
	}

	return true, nil
}

// Delete removes a review.
func (r *reviewRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Int64("review_id", id).Msg("failed to delete review")
		return false, wrapWriteError("failed to delete review", err)
	}

	r.logger.Debug().Int64("review_id", id).Msg("review deleted")
	return tag.RowsAffected() > 0, nil
}
