// Package identity contains the HTTP client for the third-party identity
// exchange consumed by the session-creation flow.
package identity

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"toolstore/config"
	"toolstore/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultExchangeTimeout = 10 * time.Second

// httpExchanger implements service.IdentityExchanger against an HTTP endpoint.
// The external session identifier travels in the X-Session-ID header; the
// endpoint answers with {email, name, picture, session_token}.
type httpExchanger struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPExchanger creates the identity exchange client from configuration.
func NewHTTPExchanger(cfg *config.Config, logger *slog.Logger) (service.IdentityExchanger, error) {
	exchange := cfg.Auth.IdentityExchange
	if exchange == nil || exchange.URL == "" {
		return nil, errors.New("auth.identityExchange.url is required")
	}

	timeout := exchange.Timeout
	if timeout <= 0 {
		timeout = defaultExchangeTimeout
	}

	return &httpExchanger{
		endpoint: exchange.URL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Exchange resolves the external session identifier. Transport errors, the
// client timeout and non-2xx answers all surface as exchange failures; there
// are no retries.
func (e *httpExchanger) Exchange(ctx context.Context, externalSessionID string) (*service.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("X-Session-ID", externalSessionID)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "identity exchange request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		e.logger.Warn("Identity exchange rejected session",
			slog.Int("status", resp.StatusCode),
		)

		return nil, errors.Errorf("identity exchange returned status %d: %s", resp.StatusCode, string(body))
	}

	var identity service.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, errors.Wrap(err, "failed to decode identity exchange response")
	}
	if identity.Email == "" || identity.SessionToken == "" {
		return nil, errors.New("identity exchange response missing email or session_token")
	}

	return &identity, nil
}
