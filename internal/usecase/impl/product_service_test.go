package impl

import (
	"context"
	"testing"

	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(t *testing.T) usecase.ProductUsecase {
	t.Helper()

	return NewProductService(newTestStore().Products(), newTestLogger())
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func createProduct(t *testing.T, productService usecase.ProductUsecase, name, description, category string, price float64, stock int) string {
	t.Helper()

	created, err := productService.Create(context.Background(), &usecase.CreateProductInput{
		Name:        name,
		Description: description,
		Price:       floatPtr(price),
		Category:    category,
		ImageURL:    "https://img.example.com/" + name,
		Stock:       stock,
	})
	require.NoError(t, err)

	return created.ID
}

func TestProductService_Create_StockDefaultsToZero(t *testing.T) {
	productService := newProductFixture(t)

	created, err := productService.Create(context.Background(), &usecase.CreateProductInput{
		Name:        "Claw Hammer",
		Description: "16oz claw hammer",
		Price:       floatPtr(12.5),
		Category:    "Hand Tools",
		ImageURL:    "https://img.example.com/hammer",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Zero(t, created.Stock)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestProductService_List_WildcardSearch(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	createProduct(t, productService, "Power Drill Tool Set", "Cordless drill with bits", "Power Tools", 99, 5)
	createProduct(t, productService, "Powerless Widget", "Manual widget", "Hand Tools", 9, 5)
	createProduct(t, productService, "Screwdriver", "Magnetic power tool companion", "Hand Tools", 5, 5)

	// A space matches any run of characters, so "power tool" spans words.
	products, err := productService.List(ctx, &usecase.ListProductsInput{Search: "power tool"})
	require.NoError(t, err)

	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}
	assert.ElementsMatch(t, []string{"Power Drill Tool Set", "Screwdriver"}, names)
}

func TestProductService_List_StockBuckets(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	createProduct(t, productService, "Plenty", "well stocked", "A", 10, 10)
	createProduct(t, productService, "Scarce", "running low", "A", 10, 9)
	createProduct(t, productService, "LastOne", "almost gone", "A", 10, 1)
	createProduct(t, productService, "Gone", "sold out", "A", 10, 0)

	cases := []struct {
		status string
		want   []string
	}{
		{"in_stock", []string{"Plenty"}},
		{"low_stock", []string{"Scarce", "LastOne"}},
		{"out_of_stock", []string{"Gone"}},
		// Unknown values fall back to no stock filter.
		{"backordered", []string{"Plenty", "Scarce", "LastOne", "Gone"}},
	}

	for _, tc := range cases {
		products, err := productService.List(ctx, &usecase.ListProductsInput{StockStatus: tc.status})
		require.NoError(t, err, tc.status)

		names := make([]string, 0, len(products))
		for _, product := range products {
			names = append(names, product.Name)
		}
		assert.ElementsMatch(t, tc.want, names, tc.status)
	}
}

func TestProductService_List_PriceBoundsAndCategory(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	createProduct(t, productService, "Cheap", "d", "A", 5, 1)
	createProduct(t, productService, "Mid", "d", "A", 50, 1)
	createProduct(t, productService, "Steep", "d", "B", 500, 1)

	products, err := productService.List(ctx, &usecase.ListProductsInput{
		Category: "A",
		MinPrice: floatPtr(10),
		MaxPrice: floatPtr(100),
	})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mid", products[0].Name)
}

func TestProductService_List_SortByPrice(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	createProduct(t, productService, "Mid", "d", "A", 50, 1)
	createProduct(t, productService, "Cheap", "d", "A", 5, 1)
	createProduct(t, productService, "Steep", "d", "A", 500, 1)

	ascending, err := productService.List(ctx, &usecase.ListProductsInput{SortBy: "price_asc"})
	require.NoError(t, err)
	require.Len(t, ascending, 3)
	assert.Equal(t, "Cheap", ascending[0].Name)
	assert.Equal(t, "Steep", ascending[2].Name)

	descending, err := productService.List(ctx, &usecase.ListProductsInput{SortBy: "price_desc"})
	require.NoError(t, err)
	assert.Equal(t, "Steep", descending[0].Name)
	assert.Equal(t, "Cheap", descending[2].Name)
}

func TestProductService_Update_Partial(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	id := createProduct(t, productService, "Drill", "Cordless drill", "Power Tools", 99, 5)

	updated, err := productService.Update(ctx, id, &usecase.UpdateProductInput{
		Price: floatPtr(89.99),
		Stock: intPtr(12),
	})
	require.NoError(t, err)

	assert.InDelta(t, 89.99, updated.Price, 0.001)
	assert.Equal(t, 12, updated.Stock)
	assert.Equal(t, "Drill", updated.Name)
	assert.Equal(t, "Cordless drill", updated.Description)
}

func TestProductService_Update_NoFields(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	id := createProduct(t, productService, "Drill", "d", "A", 99, 5)

	_, err := productService.Update(ctx, id, &usecase.UpdateProductInput{})
	assert.ErrorIs(t, err, domainerrors.ErrNoFieldsToUpdate)
}

func TestProductService_Update_NotFound(t *testing.T) {
	productService := newProductFixture(t)

	_, err := productService.Update(context.Background(), "missing", &usecase.UpdateProductInput{
		Name: strPtr("anything"),
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_Delete(t *testing.T) {
	productService := newProductFixture(t)
	ctx := context.Background()

	id := createProduct(t, productService, "Drill", "d", "A", 99, 5)

	require.NoError(t, productService.Delete(ctx, id))

	_, err := productService.Get(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)

	assert.ErrorIs(t, productService.Delete(ctx, id), domainerrors.ErrProductNotFound)
}
