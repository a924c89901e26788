package domain

import (
	"context"
	"time"
)

// OrderItem is one line of a customer order. Name and price are denormalized
// from the catalog so the record stays readable if a product changes later.
type OrderItem struct {
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Order is a customer order submitted from the public site.
type Order struct {
	ID           int64       `json:"id"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total"`
	CustomerName string      `json:"customer_name"`
	Requests     string      `json:"requests"`
	Location     string      `json:"location"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderRepository defines the port for order persistence operations.
type OrderRepository interface {
	// ListOrders returns all orders ordered by creation time descending.
	ListOrders(ctx context.Context) ([]Order, error)
	// InsertOrder stores a new order and returns it with its assigned id
	// and creation timestamp.
	InsertOrder(ctx context.Context, order Order) (*Order, error)
}
