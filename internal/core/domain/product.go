package domain

import (
	"errors"
	"time"
)

var ErrProductNotFound = errors.New("product not found")
var ErrInvalidProductID = errors.New("invalid product id")

// Product is a catalog entry. Attributes carries whatever extra fields the
// admin supplied at creation time (brand, images, stock hints, ...).
type Product struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Price      float64        `json:"price"`
	Attributes map[string]any `json:"attributes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
