package main

import (
	"context"
	"fmt"
	"os"

	"catalog/internal/config"
	"catalog/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// Seeds a handful of categories and products for local development.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, cfg.Database.ConnectionString())
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, database.Schema); err != nil {
		fmt.Fprintf(os.Stderr, "failed to apply schema: %v\n", err)
		os.Exit(1)
	}

	seller := uuid.New()
	if _, err := conn.Exec(ctx,
		`INSERT INTO users (id, username) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
		seller, "seed-seller",
	); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed user: %v\n", err)
		os.Exit(1)
	}

	categories := []struct {
		name        string
		description string
	}{
		{"Footwear", "Shoes, boots and sandals"},
		{"Electronics", "Gadgets and accessories"},
		{"Books", "Printed and electronic books"},
	}

	categoryIDs := make(map[string]int64)
	for _, c := range categories {
		var id int64
		err := conn.QueryRow(ctx,
			`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
			c.name, c.description,
		).Scan(&id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed category %q: %v\n", c.name, err)
			os.Exit(1)
		}
		categoryIDs[c.name] = id
	}

	products := []struct {
		title       string
		description string
		price       string
		category    string
	}{
		{"Trail running shoe", "Lightweight shoe for rough terrain", "89.99", "Footwear"},
		{"Leather boot", "Waterproof ankle boot", "129.50", "Footwear"},
		{"Wireless earbuds", "Noise cancelling, 24h battery", "59.00", "Electronics"},
		{"Paperback novel", "Contemporary fiction bestseller", "12.40", "Books"},
	}

	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			fmt.Fprintf(os.Stderr, "bad seed price %q: %v\n", p.price, err)
			os.Exit(1)
		}
		categoryID := categoryIDs[p.category]
		if _, err := conn.Exec(ctx,
			`INSERT INTO products (title, description, price, category_id, owner_id)
			 VALUES ($1, $2, $3, $4, $5)`,
			p.title, p.description, price, categoryID, seller,
		); err != nil {
			fmt.Fprintf(os.Stderr, "failed to seed product %q: %v\n", p.title, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded %d categories and %d products (owner %s)\n",
		len(categories), len(products), seller)
}
