package usecase

import (
	"context"

	"toolstore/internal/domain/entity"
)

// CreateProductInput defines the data required to create a product.
// Stock defaults to zero when omitted; ID and creation timestamp are assigned
// server-side and any client-supplied values are ignored.
type CreateProductInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	ImageURL    string   `json:"imageUrl" validate:"required"`
	Stock       int      `json:"stock" validate:"gte=0"`
}

// UpdateProductInput carries a partial update; only non-nil fields are applied.
type UpdateProductInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"imageUrl"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
}

// ListProductsInput holds the raw listing query parameters as received on the
// wire. The product service translates them into a store-agnostic query spec.
type ListProductsInput struct {
	Search      string   `query:"search"`
	Category    string   `query:"category"`
	MinPrice    *float64 `query:"min_price"`
	MaxPrice    *float64 `query:"max_price"`
	StockStatus string   `query:"stock_status"`
	SortBy      string   `query:"sort_by"`
}

// ProductUsecase defines product catalog operations.
type ProductUsecase interface {
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	List(ctx context.Context, input *ListProductsInput) ([]*entity.Product, error)
	Get(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, id string, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
