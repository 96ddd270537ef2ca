package impl

import (
	"context"
	"testing"
	"time"

	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"
	"toolstore/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (usecase.UserUsecase, repository.UserRepository) {
	t.Helper()

	store := newTestStore()

	return NewUserService(store.Users(), newTestLogger()), store.Users()
}

func seedUser(t *testing.T, users repository.UserRepository, email string, isAdmin, isOwner bool) *entity.User {
	t.Helper()

	user := &entity.User{
		ID:        "user-" + email,
		Email:     email,
		Name:      email,
		IsAdmin:   isAdmin,
		IsOwner:   isOwner,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, users.Create(context.Background(), user))

	return user
}

func TestUserService_UpdateAdminStatus_Promote(t *testing.T) {
	userService, users := newUserFixture(t)
	ctx := context.Background()

	seedUser(t, users, "member@example.com", false, false)

	updated, err := userService.UpdateAdminStatus(ctx, "member@example.com", true)
	require.NoError(t, err)
	assert.True(t, updated.IsAdmin)

	stored, err := users.FindByEmail(ctx, "member@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
}

func TestUserService_UpdateAdminStatus_Demote(t *testing.T) {
	userService, users := newUserFixture(t)
	ctx := context.Background()

	seedUser(t, users, "admin@example.com", true, false)

	updated, err := userService.UpdateAdminStatus(ctx, "admin@example.com", false)
	require.NoError(t, err)
	assert.False(t, updated.IsAdmin)
}

func TestUserService_UpdateAdminStatus_OwnerImmutable(t *testing.T) {
	userService, users := newUserFixture(t)
	ctx := context.Background()

	seedUser(t, users, "owner@example.com", true, true)

	_, err := userService.UpdateAdminStatus(ctx, "owner@example.com", false)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerImmutable)

	// Even a no-op grant is rejected for the owner.
	_, err = userService.UpdateAdminStatus(ctx, "owner@example.com", true)
	assert.ErrorIs(t, err, domainerrors.ErrOwnerImmutable)

	stored, err := users.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin)
}

func TestUserService_UpdateAdminStatus_NotFound(t *testing.T) {
	userService, _ := newUserFixture(t)

	_, err := userService.UpdateAdminStatus(context.Background(), "ghost@example.com", true)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	userService, users := newUserFixture(t)
	ctx := context.Background()

	seedUser(t, users, "a@example.com", false, false)
	seedUser(t, users, "b@example.com", true, true)

	listed, err := userService.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}
