package usecase

import (
	"context"

	"toolstore/internal/domain/entity"
)

// CreateCategoryInput defines the data required to create a category.
// ID and creation timestamp are assigned server-side.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

// UpdateCategoryInput carries a partial update; only non-nil fields are applied.
type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CategoryUsecase defines category catalog operations.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, id string, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
