package repository

import (
	"context"

	"toolstore/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when no product matches the given ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Product, error)

	// List returns products matching the given query specification.
	List(ctx context.Context, query ProductQuery) ([]*entity.Product, error)

	// UpdateFields applies a partial update to the product with the given ID.
	// Returns ErrProductNotFound when no record matched.
	UpdateFields(ctx context.Context, id string, fields Fields) error

	// Delete removes the product with the given ID.
	// Returns ErrProductNotFound when no record matched.
	Delete(ctx context.Context, id string) error
}
