package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolstore/internal/delivery/http/middleware"
	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthUsecase records logout calls and answers CreateSession with a fixed
// session.
type stubAuthUsecase struct {
	output       *usecase.CreateSessionOutput
	loggedOut    []string
	exchangeErrs map[string]error
}

func (s *stubAuthUsecase) CreateSession(ctx context.Context, externalSessionID string) (*usecase.CreateSessionOutput, error) {
	if err, ok := s.exchangeErrs[externalSessionID]; ok {
		return nil, err
	}

	return s.output, nil
}

func (s *stubAuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	return nil, domainerrors.ErrUnauthenticated
}

func (s *stubAuthUsecase) Logout(ctx context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)

	return nil
}

func newHandlerTestContext(t *testing.T, configure func(*http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestAuthHandler_CreateSession_SetsCookie(t *testing.T) {
	expiresAt := time.Now().UTC().Add(7 * 24 * time.Hour)
	stub := &stubAuthUsecase{
		output: &usecase.CreateSessionOutput{
			User:      &entity.User{ID: "user-1", Email: "alice@example.com"},
			Token:     "token-abc",
			ExpiresAt: expiresAt,
		},
	}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, func(req *http.Request) {
		req.Header.Set(HeaderXSessionID, "ext-123")
	})

	require.NoError(t, h.CreateSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookie := findCookie(t, rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "token-abc", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.InDelta(t, 7*24*60*60, cookie.MaxAge, 60)
}

func TestAuthHandler_CreateSession_MissingHeader(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newHandlerTestContext(t, nil)

	err := h.CreateSession(c)
	assert.ErrorIs(t, err, domainerrors.ErrMissingSessionID)
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "token-abc"})
	})

	require.NoError(t, h.Logout(c))
	assert.Equal(t, []string{"token-abc"}, stub.loggedOut)

	cookie := findCookie(t, rec, middleware.SessionCookieName)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestAuthHandler_Logout_WithoutCredential(t *testing.T) {
	stub := &stubAuthUsecase{}
	h := NewAuthHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newHandlerTestContext(t, nil)

	require.NoError(t, h.Logout(c))
	assert.Empty(t, stub.loggedOut)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	user := &entity.User{ID: "user-1", Email: "alice@example.com"}
	c, rec := newHandlerTestContext(t, nil)
	c.Set("currentUser", user)

	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@example.com")
}
