// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"toolstore/internal/domain/entity"
)

// CreateSessionOutput returns the authenticated user and the issued session.
type CreateSessionOutput struct {
	User      *entity.User
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase defines session authentication operations.
// This is the contract that the delivery layer (handlers and middleware) depends on.
type AuthUsecase interface {
	// CreateSession exchanges an external session identifier for an identity,
	// creates the user on first sight of the email, invalidates all prior
	// sessions for that user and persists a new one.
	CreateSession(ctx context.Context, externalSessionID string) (*CreateSessionOutput, error)

	// Authenticate resolves a session token to its user. A missing session, an
	// expired session (deleted lazily) or a dangling user reference all yield
	// ErrUnauthenticated.
	Authenticate(ctx context.Context, token string) (*entity.User, error)

	// Logout deletes the session matching the token, if any. Idempotent.
	Logout(ctx context.Context, token string) error
}
