package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"toolstore/config"
	"toolstore/internal/domain/service"
	"toolstore/internal/infra/persistence/memory"

	"github.com/stretchr/testify/mock"
)

// newTestLogger returns a logger that discards all output.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestConfig returns a config with the defaults the auth service needs.
func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{SessionTTL: 7 * 24 * time.Hour}

	return cfg
}

// newTestStore returns a fresh in-memory backend for service tests.
func newTestStore() *memory.Store {
	return memory.NewStore()
}

// mockExchanger is a testify mock for the identity exchange collaborator.
type mockExchanger struct {
	mock.Mock
}

func (m *mockExchanger) Exchange(ctx context.Context, externalSessionID string) (*service.Identity, error) {
	args := m.Called(ctx, externalSessionID)
	if identity, ok := args.Get(0).(*service.Identity); ok {
		return identity, args.Error(1)
	}

	return nil, args.Error(1)
}
