package domain

import "time"

// Product is a catalog row. Price is in the smallest currency unit. Stock is
// informational only; nothing in the checkout flow decrements it.
type Product struct {
	ID        int64
	Name      string
	Price     int64
	Stock     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
