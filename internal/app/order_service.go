package app

import (
	"context"
	"errors"
	"math"
	"strings"

	"mcafe/internal/domain"
)

// ErrInvalidOrder indicates that order fields failed validation.
var ErrInvalidOrder = errors.New("invalid order data")

// OrderService encapsulates order use cases. Orders are created by the
// public site and read back by the admin.
type OrderService struct {
	repo domain.OrderRepository
}

// NewOrderService creates an OrderService backed by the given repository.
func NewOrderService(repo domain.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// List returns all orders, newest first.
func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListOrders(ctx)
}

// Submit validates and stores a new order.
func (s *OrderService) Submit(ctx context.Context, order domain.Order) (*domain.Order, error) {
	if len(order.Items) == 0 || strings.TrimSpace(order.CustomerName) == "" {
		return nil, ErrInvalidOrder
	}
	if order.Total <= 0 || math.IsNaN(order.Total) || math.IsInf(order.Total, 0) {
		return nil, ErrInvalidOrder
	}
	return s.repo.InsertOrder(ctx, order)
}
