package usecase

import (
	"context"

	"toolstore/internal/domain/entity"
)

// UpdateAdminStatusInput carries the admin promotion/demotion request body.
// The target email always comes from the URL path; an email field in the body
// is accepted and ignored.
type UpdateAdminStatusInput struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// UserUsecase defines user administration operations.
type UserUsecase interface {
	// ListUsers returns every user, newest first.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// UpdateAdminStatus sets the is_admin flag of the user with the given
	// email. The owner's admin status is immutable.
	UpdateAdminStatus(ctx context.Context, email string, isAdmin bool) (*entity.User, error)
}
