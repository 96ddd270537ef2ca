// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"toolstore/config"
	deliverycontext "toolstore/internal/delivery/context"
	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"
	"toolstore/internal/domain/service"
	"toolstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	cfg       *config.Config
	exchanger service.IdentityExchanger
	users     repository.UserRepository
	sessions  repository.SessionRepository
	logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	cfg *config.Config,
	exchanger service.IdentityExchanger,
	users repository.UserRepository,
	sessions repository.SessionRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		cfg:       cfg,
		exchanger: exchanger,
		users:     users,
		sessions:  sessions,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateSession exchanges the external session identifier, creates the user on
// first sight of the email and rotates the user's session.
func (srv *authService) CreateSession(ctx context.Context, externalSessionID string) (*usecase.CreateSessionOutput, error) {
	identity, err := srv.exchanger.Exchange(ctx, externalSessionID)
	if err != nil {
		srv.log(ctx).Warn("Identity exchange failed", slog.Any("error", err))

		return nil, domainerrors.ErrAuthExchangeFailed.WithDetails(err.Error())
	}

	user, err := srv.users.FindByEmail(ctx, identity.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user, err = srv.registerUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	// Invalidate-then-insert is two store calls with no atomicity guarantee; a
	// crash in between leaves the user with zero sessions, recovered by re-login.
	if err := srv.sessions.DeleteByUserID(ctx, user.ID); err != nil {
		return nil, errors.Wrap(err, "failed to invalidate prior sessions")
	}

	now := time.Now().UTC()
	session := &entity.Session{
		ID:        uuid.NewString(),
		Token:     identity.SessionToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(srv.cfg.Auth.SessionTTL),
		CreatedAt: now,
	}
	if err := srv.sessions.Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Session created",
		slog.String("user_id", user.ID),
		slog.Time("expires_at", session.ExpiresAt),
	)

	return &usecase.CreateSessionOutput{
		User:      user,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// registerUser persists a new user for the given identity. The first user ever
// created becomes the owner and an admin; everyone after starts with neither.
func (srv *authService) registerUser(ctx context.Context, identity *service.Identity) (*entity.User, error) {
	count, err := srv.users.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	first := count == 0

	user := &entity.User{
		ID:        uuid.NewString(),
		Email:     identity.Email,
		Name:      identity.Name,
		Picture:   identity.Picture,
		IsAdmin:   first,
		IsOwner:   first,
		CreatedAt: time.Now().UTC(),
	}
	if err := srv.users.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered",
		slog.String("user_id", user.ID),
		slog.Bool("is_owner", user.IsOwner),
	)

	return user, nil
}

// Authenticate resolves a session token to its user record.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	session, err := srv.sessions.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, domainerrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session")
	}

	if session.Expired(time.Now().UTC()) {
		// Lazy expiry: delete on detection, no background sweep. The request
		// resolves to unauthenticated either way.
		if err := srv.sessions.DeleteByToken(ctx, session.Token); err != nil {
			srv.log(ctx).Warn("Failed to delete expired session", slog.Any("error", err))
		}

		return nil, domainerrors.ErrUnauthenticated
	}

	user, err := srv.users.FindByID(ctx, session.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		// User deleted out of band; the session no longer authenticates anyone.
		return nil, domainerrors.ErrUnauthenticated
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find session user")
	}

	return user, nil
}

// Logout deletes the session matching the token. Absence of a matching session
// is not an error.
func (srv *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := srv.sessions.DeleteByToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
