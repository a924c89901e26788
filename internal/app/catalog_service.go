package app

import (
	"context"
	"errors"
	"math"
	"strings"

	"mcafe/internal/domain"
)

// ErrInvalidProduct indicates that product fields failed validation.
var ErrInvalidProduct = errors.New("invalid product data")

// CatalogService encapsulates product catalog use cases. Validation happens
// here, before any store mutation.
type CatalogService struct {
	repo domain.ProductRepository
}

// NewCatalogService creates a CatalogService backed by the given repository.
func NewCatalogService(repo domain.ProductRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

// List returns all products ordered by id ascending.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

// Create validates and stores a new product.
func (s *CatalogService) Create(ctx context.Context, fields domain.ProductFields) (*domain.Product, error) {
	if err := validateProduct(fields); err != nil {
		return nil, err
	}
	return s.repo.InsertProduct(ctx, fields)
}

// Update validates the fields and replaces all of them on an existing
// product. Returns domain.ErrNotFound when the id is unknown.
func (s *CatalogService) Update(ctx context.Context, id int64, fields domain.ProductFields) (*domain.Product, error) {
	if err := validateProduct(fields); err != nil {
		return nil, err
	}
	return s.repo.UpdateProduct(ctx, id, fields)
}

// Delete removes a product, reporting whether one existed.
func (s *CatalogService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.repo.DeleteProduct(ctx, id)
}

func validateProduct(f domain.ProductFields) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrInvalidProduct
	}
	if f.Price <= 0 || math.IsNaN(f.Price) || math.IsInf(f.Price, 0) {
		return ErrInvalidProduct
	}
	return nil
}
