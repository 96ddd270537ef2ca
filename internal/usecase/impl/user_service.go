package impl

import (
	"context"
	"log/slog"

	deliverycontext "toolstore/internal/delivery/context"
	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"
	"toolstore/internal/usecase"

	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(users repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		users:  users,
		logger: logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns every user, newest first.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.users.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// UpdateAdminStatus grants or revokes admin rights for the user with the given
// email. The owner's admin status is immutable.
func (srv *userService) UpdateAdminStatus(ctx context.Context, email string, isAdmin bool) (*entity.User, error) {
	user, err := srv.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if user.IsOwner {
		return nil, domainerrors.ErrOwnerImmutable
	}

	if err := srv.users.SetAdmin(ctx, email, isAdmin); err != nil {
		return nil, errors.Wrap(err, "failed to update admin status")
	}
	user.IsAdmin = isAdmin

	srv.log(ctx).Info("Admin status updated",
		slog.String("email", email),
		slog.Bool("is_admin", isAdmin),
	)

	return user, nil
}
