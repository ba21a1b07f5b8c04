package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/primekart/storefront-api/internal/core/domain"
	"github.com/primekart/storefront-api/internal/core/ports"
)

type stubProductService struct {
	createFn func(ctx context.Context, input ports.CreateProductInput) (string, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	listFn   func(ctx context.Context) ([]*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubProductService) List(ctx context.Context) ([]*domain.Product, error) {
	return s.listFn(ctx)
}

func (s *stubProductService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_Create_Success(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			if input.Title != "Widget" || input.Price != 9.99 {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Attributes["brand"] != "Acme" {
				t.Fatalf("extra fields must land in attributes: %+v", input.Attributes)
			}
			return "p1", nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodPost, "/api/admin/products",
		`{"title":"Widget","price":9.99,"brand":"Acme"}`)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Product added" || resp["id"] != "p1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_MissingFields(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newJSONContext(e, http.MethodPost, "/api/admin/products", `{"brand":"Acme"}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}
	h := NewProductHandler(stub)

	c, _ := newJSONContext(e, http.MethodGet, "/api/products/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound passthrough, got %v", err)
	}
}

func TestProductHandler_Delete_Success(t *testing.T) {
	e := echo.New()
	stub := &stubProductService{
		deleteFn: func(ctx context.Context, id string) error {
			if id != "p1" {
				t.Fatalf("unexpected id: %s", id)
			}
			return nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newJSONContext(e, http.MethodDelete, "/api/admin/products/p1", "")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
