package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	cartdomain "minimart/internal/cart/domain"
	"minimart/internal/checkout/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// ValidationError is recoverable: the handler re-renders the checkout form
// with the message and the already-computed quote.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type CatalogReader interface {
	GetProductsByIDs(ctx context.Context, ids []int64) ([]Product, error)
}

type Product struct {
	ID    int64
	Name  string
	Price int64
}

type OrderWriter interface {
	// CreateOrder persists the order and all its lines atomically.
	CreateOrder(ctx context.Context, customer domain.Customer, items []domain.LineItem) (domain.Receipt, error)
}

type Service struct {
	catalog CatalogReader
	orders  OrderWriter
}

func NewService(catalog CatalogReader, orders OrderWriter) *Service {
	return &Service{
		catalog: catalog,
		orders:  orders,
	}
}

// Quote reconciles a cart into priced line items and a total. Prices come
// from the catalog at call time, never from the cart or the client. Cart ids
// with no catalog row are silently dropped; an empty cart short-circuits
// without a catalog call. Read-only and idempotent.
func (s *Service) Quote(ctx context.Context, cart cartdomain.Cart) (domain.Quote, error) {
	if cart.Empty() {
		return domain.Quote{}, nil
	}

	products, err := s.catalog.GetProductsByIDs(ctx, cart.ProductIDs())
	if err != nil {
		return domain.Quote{}, fmt.Errorf("failed to load cart products: %w", err)
	}

	// Line order follows the catalog's return order, not cart insertion.
	items := make([]domain.LineItem, 0, len(products))
	var total int64

	for _, p := range products {
		qty := cart.Quantity(p.ID)
		subtotal := p.Price * qty
		total += subtotal

		items = append(items, domain.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  qty,
			Subtotal:  subtotal,
		})
	}

	return domain.Quote{Items: items, Total: total}, nil
}

// Checkout validates the customer, recomputes the quote fresh from storage
// and persists the order atomically. The caller clears the session cart after
// a successful return.
func (s *Service) Checkout(ctx context.Context, cart cartdomain.Cart, customer domain.Customer) (domain.Receipt, error) {
	if cart.Empty() {
		return domain.Receipt{}, ErrEmptyCart
	}

	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	customer.Address = strings.TrimSpace(customer.Address)

	if customer.Name == "" || customer.Phone == "" || customer.Address == "" {
		return domain.Receipt{}, &ValidationError{
			Message: "Please fill in all customer information.",
		}
	}

	quote, err := s.Quote(ctx, cart)
	if err != nil {
		return domain.Receipt{}, err
	}

	// Every cart id may dangle after product deletions; an order must carry
	// at least one line, so treat that the same as an empty cart.
	if len(quote.Items) == 0 {
		return domain.Receipt{}, ErrEmptyCart
	}

	receipt, err := s.orders.CreateOrder(ctx, customer, quote.Items)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("failed to persist order: %w", err)
	}

	return receipt, nil
}
