// Package main provides a CLI tool for creating the database schema and
// seeding it with demo data.
package main

import (
	"context"
	"fmt"
	"os"

	"stallbook/internal/core/id"
	"stallbook/internal/infrastructure/storage/postgres"
	"stallbook/pkg/logger"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id            UUID PRIMARY KEY,
		name          TEXT NOT NULL,
		unit_type     TEXT NOT NULL CHECK (unit_type IN ('weight', 'count')),
		cost_price    NUMERIC(12,2) NOT NULL DEFAULT 0,
		retail_price  NUMERIC(12,2) NOT NULL DEFAULT 0,
		is_active     BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS locations (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS sales_lines (
		id              UUID PRIMARY KEY,
		batch_id        UUID NOT NULL,
		record_date     DATE NOT NULL,
		location        TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL,
		product_name    TEXT NOT NULL,
		unit_type       TEXT NOT NULL CHECK (unit_type IN ('weight', 'count')),
		retail_price    NUMERIC(12,2) NOT NULL,
		cost_price      NUMERIC(12,2) NOT NULL,
		purchase_units  BIGINT NOT NULL CHECK (purchase_units >= 0),
		return_units    BIGINT NOT NULL CHECK (return_units >= 0),
		commission_rate NUMERIC(6,4) NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_lines_day_location
		ON sales_lines (record_date, location, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_lines_batch
		ON sales_lines (batch_id)`,
}

func main() {
	log, err := logger.New(logger.Config{
		Level:       "info",
		Development: true,
	})
	if err != nil {
		fmt.Printf("failed to create logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(dbURL))
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	log.Info("connected to database")

	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
	}
	log.Info("schema applied")

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := seedDemoData(ctx, pool, log); err != nil {
			log.Fatalw("failed to seed demo data", "error", err)
		}
	}

	log.Info("seeding completed successfully")
}

func seedDemoData(ctx context.Context, pool *postgres.Pool, log *logger.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM products").Scan(&count); err != nil {
		return fmt.Errorf("check products: %w", err)
	}
	if count > 0 {
		log.Info("demo data already present, skipping")
		return nil
	}

	products := []struct {
		name        string
		unitType    string
		costPrice   string
		retailPrice string
	}{
		{"Dried Shrimp", "weight", "60", "100"},
		{"Salted Fish", "weight", "35", "55"},
		{"Dried Squid", "weight", "80", "120"},
		{"Preserved Egg", "count", "1.5", "3"},
	}

	for _, p := range products {
		_, err := pool.Exec(ctx,
			`INSERT INTO products (id, name, unit_type, cost_price, retail_price, is_active)
			 VALUES ($1, $2, $3, $4, $5, TRUE)`,
			id.New(), p.name, p.unitType, p.costPrice, p.retailPrice)
		if err != nil {
			return fmt.Errorf("insert product %s: %w", p.name, err)
		}
	}

	for _, name := range []string{"East Gate", "West Market"} {
		_, err := pool.Exec(ctx,
			"INSERT INTO locations (id, name) VALUES ($1, $2)",
			id.New(), name)
		if err != nil {
			return fmt.Errorf("insert location %s: %w", name, err)
		}
	}

	log.Infow("demo data seeded", "products", len(products), "locations", 2)
	return nil
}
