package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/primekart/storefront-api/internal/core/ports"
)

// OrderHandler handles order placement, listing, and admin status updates.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Place handles POST /api/orders.
//
// @Summary      Place a new order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      placeOrderRequest  true  "Order details"
// @Success      201   {object}  placeOrderResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Place(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	orderID, err := h.service.PlaceOrder(c.Request().Context(), principal, ports.PlaceOrderInput{
		CustomerName:  req.Customer.Name,
		CustomerPhone: req.Customer.Phone,
		Items:         toOrderItems(req.Items),
		Total:         req.Total,
		Address:       req.Address,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, placeOrderResponse{
		Message: "Order placed",
		OrderID: orderID,
	})
}

// ListForCustomer handles GET /api/orders/:email. The path email must match
// the token email even though it is client-visible in the URL.
//
// @Summary      List the caller's orders by email
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Customer email"
// @Success      200    {array}   domain.Order
// @Failure      403    {object}  messageResponse
// @Router       /api/orders/{email} [get]
func (h *OrderHandler) ListForCustomer(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListForCustomer(c.Request().Context(), principal, c.Param("email"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles GET /api/admin/orders, sorted newest first.
//
// @Summary      List all orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/orders [get]
func (h *OrderHandler) ListAll(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListAll(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// UpdateStatus handles PUT /api/admin/orders/:id and returns the updated
// order document.
//
// @Summary      Update an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Order ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/admin/orders/{id} [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid payload")
	}

	order, err := h.service.UpdateStatus(c.Request().Context(), principal, c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Summary handles GET /api/admin/summary.
//
// @Summary      Admin dashboard summary
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Summary
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/summary [get]
func (h *OrderHandler) Summary(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Summarize(c.Request().Context(), principal)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
