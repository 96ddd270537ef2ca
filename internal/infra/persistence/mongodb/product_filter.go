package mongodb

import (
	"toolstore/internal/domain/entity"
	"toolstore/internal/domain/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// buildProductFilter translates the store-agnostic query spec into a MongoDB
// filter document. All clauses are ANDed; the search clause ORs its three
// field matches.
func buildProductFilter(query repository.ProductQuery) bson.M {
	filter := bson.M{}

	if pattern := query.SearchPattern(); pattern != "" {
		regex := bson.M{"$regex": pattern, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"name": regex},
			bson.M{"description": regex},
			bson.M{"category": regex},
		}
	}

	if query.Category != "" {
		filter["category"] = query.Category
	}

	if query.MinPrice != nil || query.MaxPrice != nil {
		price := bson.M{}
		if query.MinPrice != nil {
			price["$gte"] = *query.MinPrice
		}
		if query.MaxPrice != nil {
			price["$lte"] = *query.MaxPrice
		}
		filter["price"] = price
	}

	switch query.StockStatus {
	case repository.StockStatusInStock:
		filter["stock"] = bson.M{"$gte": entity.InStockThreshold}
	case repository.StockStatusLowStock:
		filter["stock"] = bson.M{"$gt": 0, "$lt": entity.InStockThreshold}
	case repository.StockStatusOutOfStock:
		filter["stock"] = 0
	}

	return filter
}

// buildProductSort maps the sort option onto a MongoDB sort document.
// Anything other than the price sorts falls back to newest first.
func buildProductSort(query repository.ProductQuery) bson.D {
	switch query.SortBy {
	case repository.SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case repository.SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}
