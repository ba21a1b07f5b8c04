package handler

import "github.com/primekart/storefront-api/internal/core/domain"

// customerRequest carries the client's contact details. Any email supplied
// here is ignored; the stored email is always the token's.
type customerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

type placeOrderRequest struct {
	Customer customerRequest    `json:"customer"`
	Items    []orderItemRequest `json:"items"`
	Total    float64            `json:"total"`
	Address  string             `json:"address"`
}

type placeOrderResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func toOrderItems(items []orderItemRequest) []domain.OrderItem {
	out := make([]domain.OrderItem, len(items))
	for i, item := range items {
		out[i] = domain.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Qty:       item.Qty,
			Price:     item.Price,
		}
	}
	return out
}
