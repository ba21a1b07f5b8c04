package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/primekart/storefront-api/internal/api/metrics"
	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

const recentOrdersLimit = 6

// OrderService governs the order lifecycle.
type OrderService struct {
	orders   ports.OrderRepository
	users    ports.UserRepository
	products ports.ProductRepository
	logger   zerolog.Logger
}

func NewOrderService(orders ports.OrderRepository, users ports.UserRepository, products ports.ProductRepository, logger zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, users: users, products: products, logger: logger}
}

// PlaceOrder persists a new Pending order. The customer email is forcibly
// the principal's token email; any client-supplied email is discarded
// upstream. The total is stored as supplied, not recomputed from the
// catalog.
func (s *OrderService) PlaceOrder(ctx context.Context, principal domain.Principal, input ports.PlaceOrderInput) (string, error) {
	if len(input.Items) == 0 {
		return "", domain.ErrEmptyCart
	}

	order := &domain.Order{
		UserID: principal.ID,
		Customer: domain.Customer{
			Name:  input.CustomerName,
			Email: principal.Email,
			Phone: input.CustomerPhone,
		},
		Items:     input.Items,
		Total:     input.Total,
		Address:   input.Address,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", principal.ID).Msg("failed to place order")
		return "", err
	}

	metrics.OrdersPlacedTotal.Inc()
	s.logger.Info().Str("order_id", id).Str("user_id", principal.ID).Msg("order placed")
	return id, nil
}

// ListForCustomer returns the orders for the requested email. A non-admin
// principal may only request their own email; the check applies even when
// no orders exist.
func (s *OrderService) ListForCustomer(ctx context.Context, principal domain.Principal, email string) ([]*domain.Order, error) {
	if principal.Email != email {
		return nil, domain.ErrEmailMismatch
	}
	return s.orders.FindByCustomerEmail(ctx, email)
}

// ListAll returns every order, newest first. Admin only.
func (s *OrderService) ListAll(ctx context.Context, principal domain.Principal) ([]*domain.Order, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	return s.orders.FindAll(ctx)
}

// UpdateStatus sets an order's status. The status string is stored as
// given; the store imposes no transition graph or enumeration.
func (s *OrderService) UpdateStatus(ctx context.Context, principal domain.Principal, orderID, status string) (*domain.Order, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}
	if status == "" {
		return nil, domain.ErrEmptyStatus
	}

	order, err := s.orders.UpdateStatus(ctx, orderID, status)
	if err != nil {
		return nil, err
	}

	metrics.OrderStatusUpdatesTotal.WithLabelValues(status).Inc()
	s.logger.Info().Str("order_id", orderID).Str("status", status).Msg("order status updated")
	return order, nil
}

// Summarize returns the admin dashboard aggregate. The recent slice is in
// store order, not guaranteed sorted.
func (s *OrderService) Summarize(ctx context.Context, principal domain.Principal) (*ports.Summary, error) {
	if !principal.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	products, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.orders.CountByStatus(ctx, domain.StatusPending)
	if err != nil {
		return nil, err
	}
	recent, err := s.orders.FindRecent(ctx, recentOrdersLimit)
	if err != nil {
		return nil, err
	}

	return &ports.Summary{
		Products:     products,
		Users:        users,
		Orders:       orders,
		Pending:      pending,
		RecentOrders: recent,
	}, nil
}
