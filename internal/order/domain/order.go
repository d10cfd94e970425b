package domain

import "time"

// Order is the persisted result of a checkout. Immutable once created; its
// TotalAmount always equals the sum of Quantity*UnitPrice over Lines.
type Order struct {
	ID           int64
	CustomerName string
	Phone        string
	Address      string
	TotalAmount  int64
	CreatedAt    time.Time
	Lines        []Line
}

// Line freezes one product's quantity and unit price at checkout time. The
// product reference is informational; later price changes never touch it.
type Line struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int64
	UnitPrice int64
}

type CreateOrderRequest struct {
	CustomerName string
	Phone        string
	Address      string
	Lines        []LineRequest
}

type LineRequest struct {
	ProductID int64
	Quantity  int64
	UnitPrice int64
}
