// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"strings"

	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "session_token"

// keyCurrentUser is the echo.Context key holding the authenticated user.
const keyCurrentUser = "currentUser"

// AuthMiddleware provides middleware for session authentication and the
// admin/owner authorization gates.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// ExtractToken reads the request credential: the session cookie first, then a
// bearer Authorization header. Empty when neither is present.
func ExtractToken(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := c.Request().Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token != authHeader {
		return token
	}

	return ""
}

// Authenticate resolves the request credential to a user and stores it on the
// context. Absence of a credential or an unresolvable token yields 401.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := ExtractToken(c)
		if token == "" {
			return domainerrors.ErrUnauthenticated
		}

		user, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		c.Set(keyCurrentUser, user)

		return next(c)
	}
}

// RequireAdmin passes only admins and the owner. It must be used AFTER the
// Authenticate middleware; it performs no store access of its own.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return domainerrors.ErrUnauthenticated
		}
		if !user.CanManageCatalog() {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// RequireOwner passes only the owner. It must be used AFTER the Authenticate
// middleware.
func (m *AuthMiddleware) RequireOwner(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := CurrentUser(c)
		if user == nil {
			return domainerrors.ErrUnauthenticated
		}
		if !user.IsOwner {
			return domainerrors.ErrForbidden
		}

		return next(c)
	}
}

// CurrentUser returns the authenticated user stored by Authenticate, or nil.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(keyCurrentUser).(*entity.User)

	return user
}
