// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"toolstore/internal/delivery/http/middleware"
	"toolstore/internal/delivery/http/response"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HeaderXSessionID carries the external session identifier presented by the
// frontend after the identity provider redirect.
const HeaderXSessionID = "X-Session-ID"

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateSession exchanges the X-Session-ID header for an identity, issues a
// session and sets the session cookie. The response body is the user record.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	externalSessionID := c.Request().Header.Get(HeaderXSessionID)
	if externalSessionID == "" {
		return domainerrors.ErrMissingSessionID
	}

	output, err := h.uc.CreateSession(c.Request().Context(), externalSessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(sessionCookie(output.Token, output.ExpiresAt))

	return response.Success(c, http.StatusOK, output.User, "Session created successfully")
}

// Me returns the user record of the authenticated caller.
func (h *AuthHandler) Me(c echo.Context) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// Logout deletes the caller's session, if any, and clears the cookie. It
// succeeds even when no credential was presented.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := middleware.ExtractToken(c); token != "" {
		if err := h.uc.Logout(c.Request().Context(), token); err != nil {
			return errors.WithStack(err)
		}
	}

	c.SetCookie(expiredSessionCookie())

	return response.Success(c, http.StatusOK, map[string]string{"message": "Logged out"}, "Logout successful")
}

// sessionCookie builds the session cookie. SameSite=None with Secure is
// required for the cross-site frontend to send it back.
func sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
