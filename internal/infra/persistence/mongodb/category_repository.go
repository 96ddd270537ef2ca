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

// categoryDocument is the stored shape of entity.Category. Field names keep
// the original camelCase wire format.
type categoryDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func fromCategoryDomain(category *entity.Category) *categoryDocument {
	return &categoryDocument{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
	}
}

func toCategoryDomain(doc *categoryDocument) *entity.Category {
	return &entity.Category{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		CreatedAt:   doc.CreatedAt,
	}
}

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	coll *mongo.Collection
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *mongo.Database) repository.CategoryRepository {
	return &categoryRepository{coll: db.Collection(categoriesCollection)}
}

// Create persists a new category.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if _, err := repo.coll.InsertOne(ctx, fromCategoryDomain(category)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create category")
	}

	return nil
}

// FindByID retrieves a single category by its unique ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var doc categoryDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find category")
	}

	return toCategoryDomain(&doc), nil
}

// FindAll returns every category, newest first, capped at the listing limit.
func (repo *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(repository.MaxListResults)

	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list categories")
	}

	var docs []categoryDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode categories")
	}

	categories := make([]*entity.Category, 0, len(docs))
	for i := range docs {
		categories = append(categories, toCategoryDomain(&docs[i]))
	}

	return categories, nil
}

// UpdateFields applies a partial update to the category with the given ID.
func (repo *categoryRepository) UpdateFields(ctx context.Context, id string, fields repository.Fields) error {
	result, err := repo.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update category")
	}
	if result.MatchedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}

// Delete removes the category with the given ID.
func (repo *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := repo.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete category")
	}
	if result.DeletedCount == 0 {
		return repository.ErrCategoryNotFound
	}

	return nil
}
