package app

import (
	"context"
	"testing"

	"minimart/internal/catalog/domain"
)

type fakeRepo struct {
	getByIDsCalls int
}

func (f *fakeRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	p.ID = 1
	return p, nil
}

func (f *fakeRepo) Get(ctx context.Context, id int64) (domain.Product, error) {
	return domain.Product{ID: id}, nil
}

func (f *fakeRepo) GetByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	f.getByIDsCalls++
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.Product{ID: id})
	}
	return out, nil
}

func (f *fakeRepo) List(ctx context.Context, query string, limit int, cursor int64) ([]domain.Product, int64, error) {
	return nil, 0, nil
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "   ", 100, 10)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "Apple", -1, 10)
		if err != ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := svc.CreateProduct(context.Background(), "Freebie", 0, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("name is trimmed", func(t *testing.T) {
		p, err := svc.CreateProduct(context.Background(), "  Apple  ", 30, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != "Apple" {
			t.Fatalf("expected trimmed name, got %q", p.Name)
		}
	})
}

func TestGetProductsByIDs(t *testing.T) {
	t.Run("empty set skips the repo", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		got, err := svc.GetProductsByIDs(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no products, got %d", len(got))
		}
		if repo.getByIDsCalls != 0 {
			t.Fatalf("expected 0 repo calls, got %d", repo.getByIDsCalls)
		}
	})

	t.Run("non-empty set queries once", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo)

		got, err := svc.GetProductsByIDs(context.Background(), []int64{1, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 products, got %d", len(got))
		}
		if repo.getByIDsCalls != 1 {
			t.Fatalf("expected 1 repo call, got %d", repo.getByIDsCalls)
		}
	})
}

func TestGetProductValidation(t *testing.T) {
	svc := NewService(&fakeRepo{})

	if _, err := svc.GetProduct(context.Background(), 0); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
