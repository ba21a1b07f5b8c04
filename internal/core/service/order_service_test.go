package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

type stubOrderRepo struct {
	orders []*domain.Order
	nextID int
}

func (r *stubOrderRepo) Create(_ context.Context, order *domain.Order) (string, error) {
	r.nextID++
	stored := *order
	stored.ID = fmt.Sprintf("order-%d", r.nextID)
	r.orders = append(r.orders, &stored)
	return stored.ID, nil
}

func (r *stubOrderRepo) FindByCustomerEmail(_ context.Context, email string) ([]*domain.Order, error) {
	out := make([]*domain.Order, 0)
	for _, o := range r.orders {
		if o.Customer.Email == email {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]*domain.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepo) UpdateStatus(_ context.Context, id string, status string) (*domain.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			o.Status = status
			return o, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

func (r *stubOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *stubOrderRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

func (r *stubOrderRepo) FindRecent(_ context.Context, limit int) ([]*domain.Order, error) {
	if len(r.orders) < limit {
		limit = len(r.orders)
	}
	return r.orders[:limit], nil
}

type stubProductRepo struct {
	count int64
}

func (r *stubProductRepo) Create(_ context.Context, _ *domain.Product) (string, error) {
	return "", nil
}
func (r *stubProductRepo) FindByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}
func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) { return nil, nil }
func (r *stubProductRepo) Delete(_ context.Context, _ string) error             { return nil }
func (r *stubProductRepo) Count(_ context.Context) (int64, error)               { return r.count, nil }

func newTestOrderService(orders *stubOrderRepo) *OrderService {
	return NewOrderService(orders, newStubUserRepo(), &stubProductRepo{count: 3}, zerolog.Nop())
}

func userPrincipal() domain.Principal {
	return domain.Principal{ID: "u1", Name: "Alice", Email: "alice@x.com", Role: domain.RoleUser}
}

func adminPrincipal() domain.Principal {
	return domain.Principal{ID: "a1", Name: "Root", Email: "admin@x.com", Role: domain.RoleAdmin}
}

func TestOrderService_PlaceOrder_ForcesTokenEmail(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrderService(repo)

	// The client-supplied email never reaches the input; only name and
	// phone survive the schema mapping.
	id, err := svc.PlaceOrder(context.Background(), userPrincipal(), ports.PlaceOrderInput{
		CustomerName:  "Someone Else",
		CustomerPhone: "555-0001",
		Items:         []domain.OrderItem{{ProductID: "p1", Qty: 1, Price: 10}},
		Total:         10,
		Address:       "1 Main St",
	})
	if err != nil {
		t.Fatalf("place order: %v", err)
	}
	if id == "" {
		t.Fatalf("expected order id")
	}

	stored := repo.orders[0]
	if stored.Customer.Email != "alice@x.com" {
		t.Fatalf("customer email must come from the token, got %s", stored.Customer.Email)
	}
	if stored.Status != domain.StatusPending {
		t.Fatalf("expected Pending, got %s", stored.Status)
	}
	if stored.UserID != "u1" {
		t.Fatalf("expected owner u1, got %s", stored.UserID)
	}
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	svc := newTestOrderService(&stubOrderRepo{})

	if _, err := svc.PlaceOrder(context.Background(), userPrincipal(), ports.PlaceOrderInput{Total: 10}); err != domain.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderService_ListForCustomer_EmailMismatch(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrderService(repo)

	// The mismatch is rejected even when matching orders exist.
	_, _ = svc.PlaceOrder(context.Background(), domain.Principal{ID: "u2", Email: "bob@x.com", Role: domain.RoleUser},
		ports.PlaceOrderInput{Items: []domain.OrderItem{{ProductID: "p1", Qty: 1}}})

	if _, err := svc.ListForCustomer(context.Background(), userPrincipal(), "bob@x.com"); err != domain.ErrEmailMismatch {
		t.Fatalf("expected ErrEmailMismatch, got %v", err)
	}
}

func TestOrderService_ListForCustomer_OwnOrders(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrderService(repo)

	_, _ = svc.PlaceOrder(context.Background(), userPrincipal(),
		ports.PlaceOrderInput{Items: []domain.OrderItem{{ProductID: "p1", Qty: 1}}})

	orders, err := svc.ListForCustomer(context.Background(), userPrincipal(), "alice@x.com")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(orders) != 1 {
		t.Fatalf("expected 1 order, got %d", len(orders))
	}
}

func TestOrderService_ListAll_AdminOnly(t *testing.T) {
	svc := newTestOrderService(&stubOrderRepo{})

	if _, err := svc.ListAll(context.Background(), userPrincipal()); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.ListAll(context.Background(), adminPrincipal()); err != nil {
		t.Fatalf("admin list: %v", err)
	}
}

func TestOrderService_UpdateStatus(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrderService(repo)

	id, _ := svc.PlaceOrder(context.Background(), userPrincipal(),
		ports.PlaceOrderInput{Items: []domain.OrderItem{{ProductID: "p1", Qty: 1}}})

	if _, err := svc.UpdateStatus(context.Background(), userPrincipal(), id, "Shipped"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), adminPrincipal(), id, ""); err != domain.ErrEmptyStatus {
		t.Fatalf("expected ErrEmptyStatus, got %v", err)
	}

	order, err := svc.UpdateStatus(context.Background(), adminPrincipal(), id, "Shipped")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if order.Status != "Shipped" {
		t.Fatalf("expected Shipped, got %s", order.Status)
	}
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrderService(repo)

	if _, err := svc.UpdateStatus(context.Background(), adminPrincipal(), "missing", "Shipped"); err != domain.ErrOrderNotFound {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("store must not change on missing order")
	}
}

func TestOrderService_Summarize(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := newTestOrderService(repo)

	for i := 0; i < 8; i++ {
		_, _ = svc.PlaceOrder(context.Background(), userPrincipal(),
			ports.PlaceOrderInput{Items: []domain.OrderItem{{ProductID: "p1", Qty: 1}}})
	}
	_, _ = svc.UpdateStatus(context.Background(), adminPrincipal(), "order-1", "Shipped")

	if _, err := svc.Summarize(context.Background(), userPrincipal()); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for non-admin, got %v", err)
	}

	summary, err := svc.Summarize(context.Background(), adminPrincipal())
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Orders != 8 {
		t.Fatalf("expected 8 orders, got %d", summary.Orders)
	}
	if summary.Pending != 7 {
		t.Fatalf("expected 7 pending, got %d", summary.Pending)
	}
	if summary.Products != 3 {
		t.Fatalf("expected 3 products, got %d", summary.Products)
	}
	if len(summary.RecentOrders) != 6 {
		t.Fatalf("expected 6 recent orders, got %d", len(summary.RecentOrders))
	}
}
