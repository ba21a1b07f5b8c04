package handler

// createProductRequest is the fixed part of a catalog entry; any other
// fields ride along in Attributes.
type createProductRequest struct {
	Title      string         `json:"title" validate:"required"`
	Price      float64        `json:"price" validate:"required,gt=0"`
	Attributes map[string]any `json:"-"`
}

type createProductResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
