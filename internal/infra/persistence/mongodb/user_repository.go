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

// userDocument is the stored shape of entity.User.
type userDocument struct {
	ID        string    `bson:"_id"`
	Email     string    `bson:"email"`
	Name      string    `bson:"name"`
	Picture   string    `bson:"picture"`
	IsAdmin   bool      `bson:"is_admin"`
	IsOwner   bool      `bson:"is_owner"`
	CreatedAt time.Time `bson:"created_at"`
}

func fromUserDomain(user *entity.User) *userDocument {
	return &userDocument{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Picture:   user.Picture,
		IsAdmin:   user.IsAdmin,
		IsOwner:   user.IsOwner,
		CreatedAt: user.CreatedAt,
	}
}

func toUserDomain(doc *userDocument) *entity.User {
	return &entity.User{
		ID:        doc.ID,
		Email:     doc.Email,
		Name:      doc.Name,
		Picture:   doc.Picture,
		IsAdmin:   doc.IsAdmin,
		IsOwner:   doc.IsOwner,
		CreatedAt: doc.CreatedAt,
	}
}

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find user by id")
	}

	return toUserDomain(&doc), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find user by email")
	}

	return toUserDomain(&doc), nil
}

// FindAll returns every user, newest first.
func (repo *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(repository.MaxListResults)

	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to list users")
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStoreExecuteError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(docs))
	for i := range docs {
		users = append(users, toUserDomain(&docs[i]))
	}

	return users, nil
}

// Count returns the total number of users in the store.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, domainerrors.NewStoreExecuteError(err, "failed to count users")
	}

	return count, nil
}

// Create persists a new user entity to the storage.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create user")
	}

	return nil
}

// SetAdmin updates the is_admin flag of the user with the given email.
func (repo *userRepository) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	result, err := repo.coll.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"is_admin": isAdmin}},
	)
	if err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to update admin flag")
	}
	if result.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
