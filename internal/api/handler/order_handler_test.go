package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/primekart/storefront-api/internal/api/middleware"
	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

type stubOrderService struct {
	placeFn        func(ctx context.Context, principal domain.Principal, input ports.PlaceOrderInput) (string, error)
	listCustomerFn func(ctx context.Context, principal domain.Principal, email string) ([]*domain.Order, error)
	listAllFn      func(ctx context.Context, principal domain.Principal) ([]*domain.Order, error)
	updateStatusFn func(ctx context.Context, principal domain.Principal, orderID, status string) (*domain.Order, error)
	summarizeFn    func(ctx context.Context, principal domain.Principal) (*ports.Summary, error)
}

func (s *stubOrderService) PlaceOrder(ctx context.Context, principal domain.Principal, input ports.PlaceOrderInput) (string, error) {
	return s.placeFn(ctx, principal, input)
}

func (s *stubOrderService) ListForCustomer(ctx context.Context, principal domain.Principal, email string) ([]*domain.Order, error) {
	return s.listCustomerFn(ctx, principal, email)
}

func (s *stubOrderService) ListAll(ctx context.Context, principal domain.Principal) ([]*domain.Order, error) {
	return s.listAllFn(ctx, principal)
}

func (s *stubOrderService) UpdateStatus(ctx context.Context, principal domain.Principal, orderID, status string) (*domain.Order, error) {
	return s.updateStatusFn(ctx, principal, orderID, status)
}

func (s *stubOrderService) Summarize(ctx context.Context, principal domain.Principal) (*ports.Summary, error) {
	return s.summarizeFn(ctx, principal)
}

func alicePrincipal() domain.Principal {
	return domain.Principal{ID: "u1", Name: "Alice", Email: "alice@x.com", Role: domain.RoleUser}
}

func TestOrderHandler_Place_Success(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, principal domain.Principal, input ports.PlaceOrderInput) (string, error) {
			if principal.Email != "alice@x.com" {
				t.Fatalf("unexpected principal email: %s", principal.Email)
			}
			if len(input.Items) != 1 || input.Items[0].ProductID != "p1" {
				t.Fatalf("unexpected items: %+v", input.Items)
			}
			if input.Total != 10 {
				t.Fatalf("unexpected total: %v", input.Total)
			}
			return "order-1", nil
		},
	}
	h := NewOrderHandler(stub)

	// The body's customer email differs from the token's; it never reaches
	// the service input.
	c, rec := newJSONContext(e, http.MethodPost, "/api/orders",
		`{"customer":{"name":"Alice","email":"spoofed@x.com","phone":"555"},"items":[{"productId":"p1","qty":1,"price":10}],"total":10,"address":"1 Main St"}`)
	c.Set(middleware.CtxPrincipal, alicePrincipal())

	if err := h.Place(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Order placed" || resp["orderId"] != "order-1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestOrderHandler_Place_EmptyCart(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		placeFn: func(ctx context.Context, principal domain.Principal, input ports.PlaceOrderInput) (string, error) {
			return "", domain.ErrEmptyCart
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/orders", `{"items":[],"total":0}`)
	c.Set(middleware.CtxPrincipal, alicePrincipal())

	if err := h.Place(c); err != domain.ErrEmptyCart {
		t.Fatalf("expected ErrEmptyCart passthrough, got %v", err)
	}
}

func TestOrderHandler_Place_Unauthenticated(t *testing.T) {
	e := echo.New()
	h := NewOrderHandler(&stubOrderService{})

	c, _ := newJSONContext(e, http.MethodPost, "/api/orders", `{"items":[{"productId":"p1","qty":1}]}`)

	err := h.Place(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestOrderHandler_ListForCustomer_EmailMismatch(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		listCustomerFn: func(ctx context.Context, principal domain.Principal, email string) ([]*domain.Order, error) {
			return nil, domain.ErrEmailMismatch
		},
	}
	h := NewOrderHandler(stub)

	c, _ := newJSONContext(e, http.MethodGet, "/api/orders/bob@x.com", "")
	c.SetParamNames("email")
	c.SetParamValues("bob@x.com")
	c.Set(middleware.CtxPrincipal, alicePrincipal())

	if err := h.ListForCustomer(c); err != domain.ErrEmailMismatch {
		t.Fatalf("expected ErrEmailMismatch passthrough, got %v", err)
	}
}

func TestOrderHandler_UpdateStatus_ReturnsOrder(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		updateStatusFn: func(ctx context.Context, principal domain.Principal, orderID, status string) (*domain.Order, error) {
			if orderID != "order-1" || status != "Shipped" {
				t.Fatalf("unexpected args: %s %s", orderID, status)
			}
			return &domain.Order{ID: orderID, Status: status}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodPut, "/api/admin/orders/order-1", `{"status":"Shipped"}`)
	c.SetParamNames("id")
	c.SetParamValues("order-1")
	c.Set(middleware.CtxPrincipal, domain.Principal{ID: "a1", Email: "admin@x.com", Role: domain.RoleAdmin})

	if err := h.UpdateStatus(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "Shipped" {
		t.Fatalf("expected updated order document, got %+v", resp)
	}
}

func TestOrderHandler_Summary(t *testing.T) {
	e := echo.New()
	stub := &stubOrderService{
		summarizeFn: func(ctx context.Context, principal domain.Principal) (*ports.Summary, error) {
			return &ports.Summary{Products: 3, Users: 2, Orders: 5, Pending: 4, RecentOrders: []*domain.Order{}}, nil
		},
	}
	h := NewOrderHandler(stub)

	c, rec := newJSONContext(e, http.MethodGet, "/api/admin/summary", "")
	c.Set(middleware.CtxPrincipal, domain.Principal{ID: "a1", Email: "admin@x.com", Role: domain.RoleAdmin})

	if err := h.Summary(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["orders"] != float64(5) || resp["pending"] != float64(4) {
		t.Fatalf("unexpected summary: %+v", resp)
	}
}
