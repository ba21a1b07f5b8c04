package ports

import (
	"context"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// CreateProductInput carries the admin-supplied catalog entry fields.
type CreateProductInput struct {
	Title      string
	Price      float64
	Attributes map[string]any
}

// ProductService is a thin passthrough over the catalog collection.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput) (string, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
