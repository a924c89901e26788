package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mcafe/internal/domain"
)

// ListOrders returns all orders, newest first.
func (d *DB) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := d.read.QueryContext(ctx,
		"SELECT id, items, total, customer_name, requests, location, created_at FROM orders ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		var items []byte
		if err := rows.Scan(&o.ID, &items, &o.Total, &o.CustomerName, &o.Requests, &o.Location, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, fmt.Errorf("order %d: decode items: %w", o.ID, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// InsertOrder stores a new order. Orders come from the public site, so the
// write goes through the restricted connection like the site's own inserts.
func (d *DB) InsertOrder(ctx context.Context, o domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}

	err = d.read.QueryRowContext(ctx,
		"INSERT INTO orders (items, total, customer_name, requests, location, created_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at",
		items, o.Total, o.CustomerName, o.Requests, o.Location, time.Now().UTC(),
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
