package repository

import (
	"context"
	"testing"
	"time"

	"catalog/internal/database"
	"catalog/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer, applies the schema and
// returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(ctx, pool, zerolog.Nop()))

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// seedUser registers an identity so products can reference it.
func seedUser(t *testing.T, pool *pgxpool.Pool, username string) *model.Identity {
	t.Helper()
	ident := &model.Identity{ID: uuid.New(), Username: username}
	require.NoError(t, NewUserRepository(pool, zerolog.Nop()).Ensure(context.Background(), ident))
	return ident
}

// seedCategory inserts a category and returns it with its assigned ID.
func seedCategory(t *testing.T, pool *pgxpool.Pool, name string) *model.Category {
	t.Helper()
	c := &model.Category{Name: name}
	require.NoError(t, NewCategoryRepository(pool, zerolog.Nop()).Create(context.Background(), c))
	return c
}

// seedProduct inserts a product owned by the given identity.
func seedProduct(t *testing.T, pool *pgxpool.Pool, owner *model.Identity, title, description string, categoryID *int64) *model.Product {
	t.Helper()
	p := &model.Product{
		Title:       title,
		Description: description,
		Price:       decimal.RequireFromString("9.99"),
		CategoryID:  categoryID,
		OwnerID:     owner.ID,
		Owner:       owner.Username,
	}
	require.NoError(t, NewProductRepository(pool, zerolog.Nop()).Create(context.Background(), p))
	return p
}

// seedReview inserts a review for the given product.
func seedReview(t *testing.T, pool *pgxpool.Pool, productID int64, author string, rating int) *model.Review {
	t.Helper()
	rv := &model.Review{
		ProductID: productID,
		Author:    author,
		Rating:    rating,
		Text:      "seed review",
	}
	require.NoError(t, NewReviewRepository(pool, zerolog.Nop()).Create(context.Background(), rv))
	return rv
}
