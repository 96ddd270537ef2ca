package repository

import (
	"context"

	"toolstore/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSessionNotFound is returned when no session matches the given token.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository defines session persistence operations.
type SessionRepository interface {
	// Create persists a new session record.
	Create(ctx context.Context, session *entity.Session) error

	// FindByToken retrieves a session by its opaque token.
	// Expiry is not checked here; lazy expiry is the caller's concern.
	FindByToken(ctx context.Context, token string) (*entity.Session, error)

	// DeleteByToken removes the session with the given token.
	// Deleting a token that does not exist is not an error.
	DeleteByToken(ctx context.Context, token string) error

	// DeleteByUserID removes all sessions belonging to a user.
	DeleteByUserID(ctx context.Context, userID string) error
}
