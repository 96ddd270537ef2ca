package mongodb

import (
	"testing"

	"toolstore/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestBuildProductFilter_Empty(t *testing.T) {
	filter := buildProductFilter(repository.ProductQuery{})

	assert.Empty(t, filter)
}

func TestBuildProductFilter_SearchSpacesBecomeWildcards(t *testing.T) {
	filter := buildProductFilter(repository.ProductQuery{Search: "power tool"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok, "search must produce an $or clause")
	require.Len(t, or, 3)

	expected := bson.M{"$regex": "power.*tool", "$options": "i"}
	assert.Equal(t, bson.M{"name": expected}, or[0])
	assert.Equal(t, bson.M{"description": expected}, or[1])
	assert.Equal(t, bson.M{"category": expected}, or[2])
}

func TestBuildProductFilter_CategoryExactMatch(t *testing.T) {
	filter := buildProductFilter(repository.ProductQuery{Category: "Hand Tools"})

	assert.Equal(t, bson.M{"category": "Hand Tools"}, filter)
}

func TestBuildProductFilter_PriceBounds(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		filter := buildProductFilter(repository.ProductQuery{
			MinPrice: floatPtr(10),
			MaxPrice: floatPtr(99.5),
		})

		assert.Equal(t, bson.M{"$gte": 10.0, "$lte": 99.5}, filter["price"])
	})

	t.Run("min only", func(t *testing.T) {
		filter := buildProductFilter(repository.ProductQuery{MinPrice: floatPtr(5)})

		assert.Equal(t, bson.M{"$gte": 5.0}, filter["price"])
	})

	t.Run("max only", func(t *testing.T) {
		filter := buildProductFilter(repository.ProductQuery{MaxPrice: floatPtr(20)})

		assert.Equal(t, bson.M{"$lte": 20.0}, filter["price"])
	})
}

func TestBuildProductFilter_StockBuckets(t *testing.T) {
	tests := []struct {
		name   string
		status repository.StockStatus
		want   any
	}{
		{name: "in stock", status: repository.StockStatusInStock, want: bson.M{"$gte": 10}},
		{name: "low stock", status: repository.StockStatusLowStock, want: bson.M{"$gt": 0, "$lt": 10}},
		{name: "out of stock", status: repository.StockStatusOutOfStock, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := buildProductFilter(repository.ProductQuery{StockStatus: tt.status})

			assert.Equal(t, tt.want, filter["stock"])
		})
	}
}

func TestBuildProductFilter_ClausesCombine(t *testing.T) {
	filter := buildProductFilter(repository.ProductQuery{
		Search:      "drill",
		Category:    "Power Tools",
		MinPrice:    floatPtr(50),
		StockStatus: repository.StockStatusInStock,
	})

	assert.Contains(t, filter, "$or")
	assert.Equal(t, "Power Tools", filter["category"])
	assert.Equal(t, bson.M{"$gte": 50.0}, filter["price"])
	assert.Equal(t, bson.M{"$gte": 10}, filter["stock"])
}

func TestBuildProductSort(t *testing.T) {
	tests := []struct {
		name   string
		sortBy repository.SortOption
		want   bson.D
	}{
		{name: "price ascending", sortBy: repository.SortPriceAsc, want: bson.D{{Key: "price", Value: 1}}},
		{name: "price descending", sortBy: repository.SortPriceDesc, want: bson.D{{Key: "price", Value: -1}}},
		{name: "newest", sortBy: repository.SortNewest, want: bson.D{{Key: "createdAt", Value: -1}}},
		{name: "default", sortBy: repository.SortDefault, want: bson.D{{Key: "createdAt", Value: -1}}},
		{name: "unrecognized", sortBy: repository.SortOption("price_sideways"), want: bson.D{{Key: "createdAt", Value: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, buildProductSort(repository.ProductQuery{SortBy: tt.sortBy}))
		})
	}
}
