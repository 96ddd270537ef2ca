package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "toolstore/internal/delivery/context"
	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"
	"toolstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categories repository.CategoryRepository
	logger     *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categories repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categories: categories,
		logger:     logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new category with a server-assigned id and timestamp.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.categories.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.String("category_id", category.ID))

	return category, nil
}

// List returns every category, newest first.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categories.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Get retrieves one category by id.
func (srv *categoryService) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := srv.categories.FindByID(ctx, id)
	if errors.Is(err, repository.ErrCategoryNotFound) {
		return nil, domainerrors.ErrCategoryNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

// Update applies the non-nil fields of the input to the category and returns
// the re-fetched record.
func (srv *categoryService) Update(ctx context.Context, id string, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	fields := repository.Fields{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if len(fields) == 0 {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	if err := srv.categories.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return srv.Get(ctx, id)
}

// Delete removes one category by id.
func (srv *categoryService) Delete(ctx context.Context, id string) error {
	if err := srv.categories.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	srv.log(ctx).Info("Category deleted", slog.String("category_id", id))

	return nil
}
