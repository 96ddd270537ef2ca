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
)

// sessionDocument is the stored shape of entity.Session.
type sessionDocument struct {
	ID        string    `bson:"_id"`
	Token     string    `bson:"token"`
	UserID    string    `bson:"user_id"`
	ExpiresAt time.Time `bson:"expires_at"`
	CreatedAt time.Time `bson:"created_at"`
}

func fromSessionDomain(session *entity.Session) *sessionDocument {
	return &sessionDocument{
		ID:        session.ID,
		Token:     session.Token,
		UserID:    session.UserID,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}
}

func toSessionDomain(doc *sessionDocument) *entity.Session {
	return &entity.Session{
		ID:        doc.ID,
		Token:     doc.Token,
		UserID:    doc.UserID,
		ExpiresAt: doc.ExpiresAt,
		CreatedAt: doc.CreatedAt,
	}
}

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	coll *mongo.Collection
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *mongo.Database) repository.SessionRepository {
	return &sessionRepository{coll: db.Collection(sessionsCollection)}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	if _, err := repo.coll.InsertOne(ctx, fromSessionDomain(session)); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to create session")
	}

	return nil
}

// FindByToken retrieves a session by its opaque token. Expiry is not checked
// here; lazy expiry is the caller's concern.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	var doc sessionDocument
	if err := repo.coll.FindOne(ctx, bson.M{"token": token}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewStoreExecuteError(err, "failed to find session by token")
	}

	return toSessionDomain(&doc), nil
}

// DeleteByToken removes the session with the given token. Zero deletions is
// not an error; logout is idempotent.
func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if _, err := repo.coll.DeleteOne(ctx, bson.M{"token": token}); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete session by token")
	}

	return nil
}

// DeleteByUserID removes all sessions belonging to a user.
func (repo *sessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if _, err := repo.coll.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return domainerrors.NewStoreExecuteError(err, "failed to delete sessions by user")
	}

	return nil
}
