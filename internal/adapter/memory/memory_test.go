package memory_test

import (
	"context"
	"errors"
	"testing"

	"mcafe/internal/adapter/memory"
	"mcafe/internal/domain"
)

func TestInsertAndListProducts(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	first, err := db.InsertProduct(ctx, domain.ProductFields{Name: "Vanilla Cake", Price: 18.99})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if first.ID != 1 {
		t.Fatalf("expected first id 1, got %d", first.ID)
	}

	second, err := db.InsertProduct(ctx, domain.ProductFields{Name: "Latte", Price: 4.50, Image: "latte.png"})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if second.ID != 2 {
		t.Fatalf("expected second id 2, got %d", second.ID)
	}

	items, err := db.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 products, got %d", len(items))
	}
	if items[0].ID >= items[1].ID {
		t.Fatal("expected products ordered by id ascending")
	}
	if items[0].Name != "Vanilla Cake" || items[0].Price != 18.99 {
		t.Fatalf("unexpected first product: %+v", items[0])
	}
}

func TestUpdateProduct(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	p, err := db.InsertProduct(ctx, domain.ProductFields{Name: "Latte", Price: 4.50})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	updated, err := db.UpdateProduct(ctx, p.ID, domain.ProductFields{Name: "Oat Latte", Price: 5.00, Description: "with oat milk"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Oat Latte" || updated.Price != 5.00 || updated.Description != "with oat milk" {
		t.Fatalf("unexpected product after update: %+v", updated)
	}
	// Full replace: image was not supplied, so it is now empty.
	if updated.Image != "" {
		t.Fatalf("expected image cleared, got %q", updated.Image)
	}
}

func TestUpdateProduct_NotFoundLeavesStoreUnchanged(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	if _, err := db.InsertProduct(ctx, domain.ProductFields{Name: "Latte", Price: 4.50}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := db.UpdateProduct(ctx, 99, domain.ProductFields{Name: "Ghost", Price: 1}); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	items, err := db.ListProducts(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Latte" {
		t.Fatalf("store changed by failed update: %+v", items)
	}
}

func TestDeleteProductTwice(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	p, err := db.InsertProduct(ctx, domain.ProductFields{Name: "Latte", Price: 4.50})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	removed, err := db.DeleteProduct(ctx, p.ID)
	if err != nil || !removed {
		t.Fatalf("first delete: removed=%v err=%v", removed, err)
	}
	removed, err = db.DeleteProduct(ctx, p.ID)
	if err != nil || removed {
		t.Fatalf("second delete: removed=%v err=%v", removed, err)
	}
}

func TestDeletedIDIsNotReused(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	p, _ := db.InsertProduct(ctx, domain.ProductFields{Name: "Latte", Price: 4.50})
	if _, err := db.DeleteProduct(ctx, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	next, _ := db.InsertProduct(ctx, domain.ProductFields{Name: "Mocha", Price: 5.50})
	if next.ID != p.ID+1 {
		t.Fatalf("ids must be monotonic, got %d after deleting %d", next.ID, p.ID)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	db := memory.New()
	ctx := context.Background()

	names := []string{"first", "second", "third"}
	for _, n := range names {
		_, err := db.InsertOrder(ctx, domain.Order{
			Items:        []domain.OrderItem{{ProductID: 1, Name: "Test Cake", Price: 10, Qty: 1}},
			Total:        10,
			CustomerName: n,
		})
		if err != nil {
			t.Fatalf("insert order: %v", err)
		}
	}

	orders, err := db.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i, want := range []string{"third", "second", "first"} {
		if orders[i].CustomerName != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, orders[i].CustomerName)
		}
	}
	if orders[0].CreatedAt.Before(orders[2].CreatedAt) {
		t.Fatal("expected newest order first")
	}
}
