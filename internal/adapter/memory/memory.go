// Package memory implements an in-memory store for development and testing.
package memory

import (
	"context"
	"sync"
	"time"

	"mcafe/internal/domain"
)

// DB implements the product and order repositories without persistence.
// Product ids start at 1 and increase monotonically; orders are kept in
// insertion order. A single mutex guards both collections.
type DB struct {
	mu            sync.Mutex
	products      []domain.Product
	orders        []domain.Order
	nextProductID int64
	nextOrderID   int64
}

// New creates an empty in-memory store.
func New() *DB {
	return &DB{nextProductID: 1, nextOrderID: 1}
}

// Ensure interfaces are met.
var _ domain.ProductRepository = (*DB)(nil)
var _ domain.OrderRepository = (*DB)(nil)

// ListProducts returns all products ordered by id ascending.
func (db *DB) ListProducts(ctx context.Context) ([]domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	// ids are assigned in increasing order and the slice is append-only, so
	// it is already sorted.
	out := make([]domain.Product, len(db.products))
	copy(out, db.products)
	return out, nil
}

// InsertProduct stores a new product under the next counter id.
func (db *DB) InsertProduct(ctx context.Context, f domain.ProductFields) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p := domain.Product{
		ID:          db.nextProductID,
		Name:        f.Name,
		Price:       f.Price,
		Image:       f.Image,
		Description: f.Description,
	}
	db.nextProductID++
	db.products = append(db.products, p)
	return &p, nil
}

// UpdateProduct replaces all mutable fields of an existing product.
func (db *DB) UpdateProduct(ctx context.Context, id int64, f domain.ProductFields) (*domain.Product, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.products {
		if db.products[i].ID == id {
			db.products[i].Name = f.Name
			db.products[i].Price = f.Price
			db.products[i].Image = f.Image
			db.products[i].Description = f.Description
			p := db.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

// DeleteProduct removes a product, reporting whether one existed.
func (db *DB) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.products {
		if db.products[i].ID == id {
			db.products = append(db.products[:i], db.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// ListOrders returns all orders, newest first.
func (db *DB) ListOrders(ctx context.Context) ([]domain.Order, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Order, 0, len(db.orders))
	for i := len(db.orders) - 1; i >= 0; i-- {
		out = append(out, db.orders[i])
	}
	return out, nil
}

// InsertOrder appends a new order, assigning its id and creation time.
func (db *DB) InsertOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	o.ID = db.nextOrderID
	db.nextOrderID++
	o.CreatedAt = time.Now().UTC()
	db.orders = append(db.orders, o)
	return &o, nil
}
