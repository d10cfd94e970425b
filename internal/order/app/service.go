package app

import (
	"context"
	"errors"
	"fmt"

	"minimart/internal/order/domain"
)

var ErrNotFound = errors.New("order not found")

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// CreateOrder computes the authoritative total from the request lines and
// persists everything atomically. The caller's prices are expected to come
// fresh from the catalog, never from client input.
func (s *Service) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (domain.Order, error) {
	if len(req.Lines) == 0 {
		return domain.Order{}, fmt.Errorf("order must contain at least one line")
	}

	lines := make([]domain.Line, 0, len(req.Lines))
	var total int64

	for i, ln := range req.Lines {
		if ln.Quantity <= 0 {
			return domain.Order{}, fmt.Errorf("line %d: quantity must be positive, got %d", i, ln.Quantity)
		}
		if ln.UnitPrice < 0 {
			return domain.Order{}, fmt.Errorf("line %d: unit price cannot be negative, got %d", i, ln.UnitPrice)
		}

		lines = append(lines, domain.Line{
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			UnitPrice: ln.UnitPrice,
		})
		total += ln.UnitPrice * ln.Quantity
	}

	order := domain.Order{
		CustomerName: req.CustomerName,
		Phone:        req.Phone,
		Address:      req.Address,
		TotalAmount:  total,
		Lines:        lines,
	}

	return s.repo.CreateOrderTx(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id int64) (domain.Order, error) {
	if id <= 0 {
		return domain.Order{}, ErrNotFound
	}
	return s.repo.Get(ctx, id)
}
