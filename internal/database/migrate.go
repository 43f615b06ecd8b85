package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the catalogue schema. Referential integrity lives here, in the
// database itself: deleting a category nullifies the product reference,
// deleting a product cascades to its reviews, deleting a user cascades to
// their products. Listing indexes match the newest-first default order.
const Schema = `
	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS categories (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL CHECK (name <> ''),
		description TEXT NOT NULL DEFAULT ''
	);

	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		price NUMERIC(10, 2) NOT NULL,
		category_id BIGINT REFERENCES categories(id) ON DELETE SET NULL,
		owner_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		image TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		author TEXT NOT NULL,
		rating INT NOT NULL DEFAULT 5 CHECK (rating BETWEEN 1 AND 5),
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
	CREATE INDEX IF NOT EXISTS idx_products_owner_id ON products(owner_id);
	CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC, id DESC);
	CREATE INDEX IF NOT EXISTS idx_reviews_product_id ON reviews(product_id);
	CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews(created_at DESC, id DESC);
`

// Migrate applies the schema. Idempotent; runs at startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Info().Msg("database schema applied")
	return nil
}
