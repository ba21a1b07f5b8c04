package domain

import (
	"errors"
	"time"
)

// StatusPending is the initial status of every order. Later statuses are
// free-form strings set by an admin; the store imposes no transition graph.
const StatusPending = "Pending"

var ErrOrderNotFound = errors.New("order not found")
var ErrEmptyCart = errors.New("cart is empty")
var ErrEmptyStatus = errors.New("status is required")
var ErrEmailMismatch = errors.New("email mismatch")

// Customer is the contact snapshot embedded in an order. Email is always
// taken from the authenticated principal, never from client input.
type Customer struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

// OrderItem is a single cart line. Items are not validated against the
// catalog; the price is the one the client saw at add-to-cart time.
type OrderItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Title     string  `json:"title,omitempty" bson:"title,omitempty"`
	Qty       int     `json:"qty" bson:"qty"`
	Price     float64 `json:"price" bson:"price"`
}

// Order is owned by exactly one user. Status is the only field mutable
// after creation, and only by an admin.
type Order struct {
	ID        string      `json:"id" bson:"_id,omitempty"`
	UserID    string      `json:"user_id" bson:"user_id"`
	Customer  Customer    `json:"customer" bson:"customer"`
	Items     []OrderItem `json:"items" bson:"items"`
	Total     float64     `json:"total" bson:"total"`
	Address   string      `json:"address" bson:"address"`
	Status    string      `json:"status" bson:"status"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
}
