package adapter

import (
	"context"

	checkoutdomain "minimart/internal/checkout/domain"
	orderapp "minimart/internal/order/app"
	orderdomain "minimart/internal/order/domain"
)

type OrderServiceWriter struct {
	svc *orderapp.Service
}

func NewOrderServiceWriter(svc *orderapp.Service) *OrderServiceWriter {
	return &OrderServiceWriter{svc: svc}
}

func (w *OrderServiceWriter) CreateOrder(ctx context.Context, customer checkoutdomain.Customer, items []checkoutdomain.LineItem) (checkoutdomain.Receipt, error) {
	lines := make([]orderdomain.LineRequest, 0, len(items))
	for _, it := range items {
		lines = append(lines, orderdomain.LineRequest{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}

	order, err := w.svc.CreateOrder(ctx, orderdomain.CreateOrderRequest{
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Address:      customer.Address,
		Lines:        lines,
	})
	if err != nil {
		return checkoutdomain.Receipt{}, err
	}

	return checkoutdomain.Receipt{
		OrderID: order.ID,
		Total:   order.TotalAmount,
	}, nil
}
