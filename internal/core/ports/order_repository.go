package ports

import (
	"context"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for orders.
type OrderRepository interface {
	// Create inserts the order and returns its new identifier.
	Create(ctx context.Context, order *domain.Order) (string, error)
	// FindByCustomerEmail returns orders in store order (no sort applied).
	FindByCustomerEmail(ctx context.Context, email string) ([]*domain.Order, error)
	// FindAll returns every order sorted by creation time descending.
	FindAll(ctx context.Context) ([]*domain.Order, error)
	// UpdateStatus sets the order status and returns the updated document.
	UpdateStatus(ctx context.Context, id string, status string) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	// FindRecent returns up to limit orders in whatever order the store
	// yields them in.
	FindRecent(ctx context.Context, limit int) ([]*domain.Order, error)
}
