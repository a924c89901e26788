package postgres

import (
	"context"
	"database/sql"
	"errors"

	"mcafe/internal/domain"
)

// Compile-time interface checks.
var _ domain.ProductRepository = (*DB)(nil)
var _ domain.OrderRepository = (*DB)(nil)

// ListProducts returns all products ordered by id ascending. Reads go
// through the restricted connection.
func (d *DB) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := d.read.QueryContext(ctx,
		"SELECT id, name, price, image, description FROM products ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Description); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// InsertProduct stores a new product. The id is server-assigned.
func (d *DB) InsertProduct(ctx context.Context, f domain.ProductFields) (*domain.Product, error) {
	var p domain.Product
	err := d.write.QueryRowContext(ctx,
		"INSERT INTO products (name, price, image, description) VALUES ($1, $2, $3, $4) RETURNING id, name, price, image, description",
		f.Name, f.Price, f.Image, f.Description,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Description)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct replaces all mutable fields of a product. An update that
// matches no row reports domain.ErrNotFound instead of an empty success.
func (d *DB) UpdateProduct(ctx context.Context, id int64, f domain.ProductFields) (*domain.Product, error) {
	var p domain.Product
	err := d.write.QueryRowContext(ctx,
		"UPDATE products SET name = $2, price = $3, image = $4, description = $5 WHERE id = $1 RETURNING id, name, price, image, description",
		id, f.Name, f.Price, f.Image, f.Description,
	).Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteProduct removes a product, reporting whether a row was deleted.
func (d *DB) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	res, err := d.write.ExecContext(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
