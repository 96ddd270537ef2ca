package repository

import (
	"context"

	"toolstore/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCategoryNotFound is returned when no category matches the given ID.
var ErrCategoryNotFound = errors.New("category not found")

// Fields is a store-agnostic set of field updates for a partial update,
// keyed by wire field name. Only keys present in the map are written.
type Fields map[string]any

// CategoryRepository defines category persistence operations.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Category, error)

	// FindAll returns every category, newest first.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// UpdateFields applies a partial update to the category with the given ID.
	// Returns ErrCategoryNotFound when no record matched.
	UpdateFields(ctx context.Context, id string, fields Fields) error

	// Delete removes the category with the given ID.
	// Returns ErrCategoryNotFound when no record matched.
	Delete(ctx context.Context, id string) error
}
