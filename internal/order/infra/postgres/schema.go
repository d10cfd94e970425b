package postgres

import (
	"context"
	"database/sql"
)

// product_id carries no foreign key on purpose: a cart can reference a
// product deleted after the order was placed, and the frozen unit_price is
// the record that matters.
const ordersDDL = `
CREATE TABLE IF NOT EXISTS orders (
	id            BIGSERIAL PRIMARY KEY,
	customer_name TEXT NOT NULL,
	phone         TEXT NOT NULL,
	address       TEXT NOT NULL,
	total_amount  BIGINT NOT NULL,
	created_at    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
	id         BIGSERIAL PRIMARY KEY,
	order_id   BIGINT NOT NULL REFERENCES orders(id),
	product_id BIGINT NOT NULL,
	quantity   BIGINT NOT NULL,
	unit_price BIGINT NOT NULL
)`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, ordersDDL)
	return err
}
