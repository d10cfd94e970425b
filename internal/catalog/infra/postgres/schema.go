package postgres

import (
	"context"
	"database/sql"
)

const productsDDL = `
CREATE TABLE IF NOT EXISTS products (
	id         BIGSERIAL PRIMARY KEY,
	name       TEXT NOT NULL,
	price      BIGINT NOT NULL CHECK (price >= 0),
	stock      BIGINT NOT NULL DEFAULT 999,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the products table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, productsDDL)
	return err
}

// SeedDemoProducts inserts the demo catalog, but only into an empty table so
// restarts do not duplicate rows.
func SeedDemoProducts(ctx context.Context, db *sql.DB) error {
	var count int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []struct {
		name  string
		price int64
		stock int64
	}{
		{"Apple", 30, 100},
		{"Banana", 20, 200},
		{"Strawberry", 50, 50},
	}

	for _, p := range demo {
		_, err := db.ExecContext(ctx, `
			INSERT INTO products (name, price, stock) VALUES ($1, $2, $3)`,
			p.name, p.price, p.stock,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
