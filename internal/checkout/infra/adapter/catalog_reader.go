package adapter

import (
	"context"

	catalogapp "minimart/internal/catalog/app"
	checkoutapp "minimart/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProductsByIDs(ctx context.Context, ids []int64) ([]checkoutapp.Product, error) {
	products, err := r.svc.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]checkoutapp.Product, 0, len(products))
	for _, p := range products {
		out = append(out, checkoutapp.Product{
			ID:    p.ID,
			Name:  p.Name,
			Price: p.Price,
		})
	}
	return out, nil
}
