// Package domain contains the core business entities and interfaces.
package domain

import "context"

// Product is a catalog item sold by the café.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// ProductFields holds the mutable fields of a product. Updates replace all
// of them at once.
type ProductFields struct {
	Name        string
	Price       float64
	Image       string
	Description string
}

// ProductRepository defines the port for product persistence operations.
type ProductRepository interface {
	// ListProducts returns all products ordered by id ascending.
	ListProducts(ctx context.Context) ([]Product, error)
	// InsertProduct stores a new product and returns it with its assigned id.
	InsertProduct(ctx context.Context, fields ProductFields) (*Product, error)
	// UpdateProduct replaces the mutable fields of an existing product.
	// Returns ErrNotFound if no product has the given id.
	UpdateProduct(ctx context.Context, id int64, fields ProductFields) (*Product, error)
	// DeleteProduct removes a product, reporting whether one existed.
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}
