package app

import (
	"context"

	"minimart/internal/order/domain"
)

type OrderRepo interface {
	// CreateOrderTx persists the order and all of its lines as one atomic
	// unit; a partial order must never become visible.
	CreateOrderTx(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id int64) (domain.Order, error)
}
