// Package postgres implements the domain repositories against PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// DB holds the database connections and implements the domain repository
// interfaces. read uses the restricted credential and is subject to
// row-level security; write uses the elevated credential when one is
// configured, otherwise it aliases read and writes may be rejected by
// server-side policy.
type DB struct {
	read  *sql.DB
	write *sql.DB
}

// Open connects with the restricted connection string and, when
// adminConnStr is non-empty, an elevated connection for admin writes. Both
// connections are pinged and migrations run before the DB is returned.
func Open(connStr, adminConnStr string) (*DB, error) {
	read, err := open(connStr)
	if err != nil {
		return nil, err
	}

	write := read
	if adminConnStr != "" {
		write, err = open(adminConnStr)
		if err != nil {
			_ = read.Close()
			return nil, err
		}
	}

	d := &DB{read: read, write: write}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.migrate(ctx); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

func open(connStr string) (*sql.DB, error) {
	s, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}
	s.SetMaxOpenConns(10)
	s.SetMaxIdleConns(5)
	s.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connections.
func (d *DB) Close() error {
	err := d.read.Close()
	if d.write != d.read {
		if werr := d.write.Close(); err == nil {
			err = werr
		}
	}
	return err
}

func (d *DB) migrate(ctx context.Context) error {
	stmts := []string{
		"CREATE TABLE IF NOT EXISTS products (id BIGSERIAL PRIMARY KEY, name TEXT NOT NULL, price NUMERIC(10,2) NOT NULL CHECK(price > 0), image TEXT NOT NULL DEFAULT '', description TEXT NOT NULL DEFAULT '');",
		"CREATE TABLE IF NOT EXISTS orders (id BIGSERIAL PRIMARY KEY, items JSONB NOT NULL, total NUMERIC(10,2) NOT NULL, customer_name TEXT NOT NULL, requests TEXT NOT NULL DEFAULT '', location TEXT NOT NULL DEFAULT '', created_at TIMESTAMPTZ NOT NULL DEFAULT now());",
		"CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);",
	}

	for _, stmt := range stmts {
		if _, err := d.write.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
