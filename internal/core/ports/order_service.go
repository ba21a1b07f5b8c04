package ports

import (
	"context"

	"github.com/primekart/storefront-api/internal/core/domain"
)

// PlaceOrderInput carries client-supplied order data. CustomerEmail is
// intentionally absent: the service always takes it from the principal.
type PlaceOrderInput struct {
	CustomerName  string
	CustomerPhone string
	Items         []domain.OrderItem
	Total         float64
	Address       string
}

// Summary is the admin dashboard aggregate.
type Summary struct {
	Products     int64           `json:"products"`
	Users        int64           `json:"users"`
	Orders       int64           `json:"orders"`
	Pending      int64           `json:"pending"`
	RecentOrders []*domain.Order `json:"recentOrders"`
}

// OrderService governs the order lifecycle: creation, ownership-scoped
// reads, and admin status updates.
type OrderService interface {
	// PlaceOrder persists a new Pending order owned by the principal and
	// returns its identifier.
	PlaceOrder(ctx context.Context, principal domain.Principal, input PlaceOrderInput) (string, error)
	// ListForCustomer returns the orders whose customer email equals the
	// requested email, which must match the principal's token email.
	ListForCustomer(ctx context.Context, principal domain.Principal, email string) ([]*domain.Order, error)
	// ListAll returns every order, newest first. Admin only.
	ListAll(ctx context.Context, principal domain.Principal) ([]*domain.Order, error)
	// UpdateStatus sets an order's status and returns the updated document.
	// Admin only; the status string is not constrained to an enumeration.
	UpdateStatus(ctx context.Context, principal domain.Principal, orderID, status string) (*domain.Order, error)
	// Summarize returns aggregate counts plus the recent orders slice.
	// Admin only.
	Summarize(ctx context.Context, principal domain.Principal) (*Summary, error)
}
