package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase resolves a single known token to a fixed user.
type stubAuthUsecase struct {
	token string
	user  *entity.User
}

func (s *stubAuthUsecase) CreateSession(ctx context.Context, externalSessionID string) (*usecase.CreateSessionOutput, error) {
	return nil, domainerrors.ErrInternalError
}

func (s *stubAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == s.token {
		return s.user, nil
	}

	return nil, domainerrors.ErrUnauthenticated
}

func (s *stubAuthUsecase) Logout(ctx context.Context, token string) error {
	return nil
}

func newAuthTestContext(t *testing.T, configure func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestExtractToken_CookieWinsOverBearer(t *testing.T) {
	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "cookie-token"})
		req.Header.Set("Authorization", "Bearer header-token")
	})

	assert.Equal(t, "cookie-token", ExtractToken(c))
}

func TestExtractToken_BearerFallback(t *testing.T) {
	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer header-token")
	})

	assert.Equal(t, "header-token", ExtractToken(c))
}

func TestExtractToken_NonBearerHeaderIgnored(t *testing.T) {
	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	})

	assert.Empty(t, ExtractToken(c))
}

func TestAuthenticate_ValidCookie(t *testing.T) {
	user := &entity.User{ID: "user-1", Email: "alice@example.com"}
	m := NewAuthMiddleware(&stubAuthUsecase{token: "good-token", user: user})

	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
	})

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, user, CurrentUser(c))
}

func TestAuthenticate_MissingCredential(t *testing.T) {
	m := NewAuthMiddleware(&stubAuthUsecase{token: "good-token"})

	c, _ := newAuthTestContext(t, nil)

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestAuthenticate_UnknownToken(t *testing.T) {
	m := NewAuthMiddleware(&stubAuthUsecase{token: "good-token"})

	c, _ := newAuthTestContext(t, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer bad-token")
	})

	err := m.Authenticate(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRequireAdmin(t *testing.T) {
	m := NewAuthMiddleware(&stubAuthUsecase{})

	cases := []struct {
		name    string
		user    *entity.User
		wantErr error
	}{
		{"admin passes", &entity.User{IsAdmin: true}, nil},
		{"owner passes", &entity.User{IsOwner: true}, nil},
		{"plain user forbidden", &entity.User{}, domainerrors.ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newAuthTestContext(t, nil)
			c.Set(keyCurrentUser, tc.user)

			err := m.RequireAdmin(okHandler)(c)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequireAdmin_NoUser(t *testing.T) {
	m := NewAuthMiddleware(&stubAuthUsecase{})

	c, _ := newAuthTestContext(t, nil)

	err := m.RequireAdmin(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRequireOwner(t *testing.T) {
	m := NewAuthMiddleware(&stubAuthUsecase{})

	admin := &entity.User{IsAdmin: true}
	owner := &entity.User{IsOwner: true}

	c, _ := newAuthTestContext(t, nil)
	c.Set(keyCurrentUser, admin)
	assert.ErrorIs(t, m.RequireOwner(okHandler)(c), domainerrors.ErrForbidden)

	c, _ = newAuthTestContext(t, nil)
	c.Set(keyCurrentUser, owner)
	assert.NoError(t, m.RequireOwner(okHandler)(c))
}
