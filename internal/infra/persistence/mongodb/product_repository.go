package mongodb

import (
	"context"
	"time"

	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// productDocument is the stored shape of entity.Product. Field names keep
// the original camelCase wire format.
type productDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Price       float64   `bson:"price"`
	Category    string    `bson:"category"`
	ImageURL    string    `bson:"imageUrl"`
	Stock       int       `bson:"stock"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func fromProductDomain(product *entity.Product) *productDocument {
	return &productDocument{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		ImageURL:    product.ImageURL,
		Stock:       product.Stock,
		CreatedAt:   product.CreatedAt,
	}
}

func toProductDomain(doc *productDocument) *entity.Product {
	return &entity.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		Price:       doc.Price,
		Category:    doc.Category,
		ImageURL:    doc.ImageURL,
		Stock:       doc.Stock,
		CreatedAt:   doc.CreatedAt,
	}
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	coll *mongo.Collection
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *mongo.Database) repository.ProductRepository {
	return &productRepository{coll: db.Collection(productsCollection)}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if _, err := repo.coll.InsertOne(ctx, fromProductDomain(product)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create product")
	}

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var doc productDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find product")
	}

	return toProductDomain(&doc), nil
}

// List returns products matching the query specification, capped at the
// listing limit.
func (repo *productRepository) List(ctx context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	opts := options.Find().
		SetSort(buildProductSort(query)).
		SetLimit(repository.MaxListResults)

	cursor, err := repo.coll.Find(ctx, buildProductFilter(query), opts)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list products")
	}

	var docs []productDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode products")
	}

	products := make([]*entity.Product, 0, len(docs))
	for i := range docs {
		products = append(products, toProductDomain(&docs[i]))
	}

	return products, nil
}

// UpdateFields applies a partial update to the product with the given ID.
func (repo *productRepository) UpdateFields(ctx context.Context, id string, fields repository.Fields) error {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update product")
	}
	if result.MatchedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// Delete removes the product with the given ID.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete product")
	}
	if result.DeletedCount == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}
