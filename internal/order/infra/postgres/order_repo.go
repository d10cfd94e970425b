package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"minimart/internal/order/app"
	"minimart/internal/order/domain"
)

// createdAtLayout is ISO-8601 at second precision, stored as text.
const createdAtLayout = "2006-01-02T15:04:05"

type OrderRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewOrderRepo(db *sql.DB) *OrderRepo {
	return &OrderRepo{
		db:  db,
		now: time.Now,
	}
}

func (r *OrderRepo) execTX(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w; rollback err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// CreateOrderTx inserts the order row and every line inside one transaction.
// Any failure rolls the whole thing back; an order without its lines is never
// observable.
func (r *OrderRepo) CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error) {
	var created domain.Order

	err := r.execTX(ctx, func(tx *sql.Tx) error {
		createdAt := r.now()

		var orderID int64
		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (customer_name, phone, address, total_amount, created_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.CustomerName, order.Phone, order.Address,
			order.TotalAmount, createdAt.Format(createdAtLayout),
		).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		lines := make([]domain.Line, 0, len(order.Lines))
		for i, ln := range order.Lines {
			var lineID int64
			err := tx.QueryRowContext(ctx, `
				INSERT INTO order_items (order_id, product_id, quantity, unit_price)
				VALUES ($1, $2, $3, $4)
				RETURNING id`,
				orderID, ln.ProductID, ln.Quantity, ln.UnitPrice,
			).Scan(&lineID)
			if err != nil {
				return fmt.Errorf("failed to insert line %d: %w", i, err)
			}

			lines = append(lines, domain.Line{
				ID:        lineID,
				OrderID:   orderID,
				ProductID: ln.ProductID,
				Quantity:  ln.Quantity,
				UnitPrice: ln.UnitPrice,
			})
		}

		created = domain.Order{
			ID:           orderID,
			CustomerName: order.CustomerName,
			Phone:        order.Phone,
			Address:      order.Address,
			TotalAmount:  order.TotalAmount,
			CreatedAt:    createdAt.Truncate(time.Second),
			Lines:        lines,
		}
		return nil
	})
	if err != nil {
		return domain.Order{}, err
	}
	return created, nil
}

func (r *OrderRepo) Get(ctx context.Context, id int64) (domain.Order, error) {
	var (
		o         domain.Order
		createdAt string
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, customer_name, phone, address, total_amount, created_at
		FROM orders
		WHERE id = $1`,
		id,
	).Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.TotalAmount, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Order{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, err
	}

	if ts, parseErr := time.Parse(createdAtLayout, createdAt); parseErr == nil {
		o.CreatedAt = ts
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`,
		id,
	)
	if err != nil {
		return domain.Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var ln domain.Line
		if err := rows.Scan(&ln.ID, &ln.OrderID, &ln.ProductID, &ln.Quantity, &ln.UnitPrice); err != nil {
			return domain.Order{}, err
		}
		o.Lines = append(o.Lines, ln)
	}
	return o, rows.Err()
}
