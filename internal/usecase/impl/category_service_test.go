package impl

import (
	"context"
	"testing"

	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryFixture(t *testing.T) usecase.CategoryUsecase {
	t.Helper()

	return NewCategoryService(newTestStore().Categories(), newTestLogger())
}

func TestCategoryService_CreateAndGet(t *testing.T) {
	categoryService := newCategoryFixture(t)
	ctx := context.Background()

	created, err := categoryService.Create(ctx, &usecase.CreateCategoryInput{
		Name:        "Power Tools",
		Description: "Drills, saws and sanders",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	fetched, err := categoryService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Power Tools", fetched.Name)
}

func TestCategoryService_Get_NotFound(t *testing.T) {
	categoryService := newCategoryFixture(t)

	_, err := categoryService.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Update_Partial(t *testing.T) {
	categoryService := newCategoryFixture(t)
	ctx := context.Background()

	created, err := categoryService.Create(ctx, &usecase.CreateCategoryInput{
		Name:        "Hand Tools",
		Description: "Original description",
	})
	require.NoError(t, err)

	name := "Hand Tools & Accessories"
	updated, err := categoryService.Update(ctx, created.ID, &usecase.UpdateCategoryInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, name, updated.Name)
	// The untouched field survives a partial update.
	assert.Equal(t, "Original description", updated.Description)
}

func TestCategoryService_Update_NoFields(t *testing.T) {
	categoryService := newCategoryFixture(t)
	ctx := context.Background()

	created, err := categoryService.Create(ctx, &usecase.CreateCategoryInput{Name: "Fasteners"})
	require.NoError(t, err)

	_, err = categoryService.Update(ctx, created.ID, &usecase.UpdateCategoryInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestCategoryService_Update_NotFound(t *testing.T) {
	categoryService := newCategoryFixture(t)

	name := "whatever"
	_, err := categoryService.Update(context.Background(), "missing", &usecase.UpdateCategoryInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryService_Delete(t *testing.T) {
	categoryService := newCategoryFixture(t)
	ctx := context.Background()

	created, err := categoryService.Create(ctx, &usecase.CreateCategoryInput{Name: "Abrasives"})
	require.NoError(t, err)

	require.NoError(t, categoryService.Delete(ctx, created.ID))

	_, err = categoryService.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)

	// Deleting again reports not found.
	assert.ErrorIs(t, categoryService.Delete(ctx, created.ID), domainerrors.ErrCategoryNotFound)
}
