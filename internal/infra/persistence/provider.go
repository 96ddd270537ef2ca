// Package persistence selects the document-store backend from configuration.
package persistence

import (
	"log/slog"

	"toolstore/config"
	"toolstore/internal/domain/repository"
	"toolstore/internal/infra/persistence/memory"
	"toolstore/internal/infra/persistence/mongodb"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in store.provider.
const (
	ProviderMongo  = "mongo"
	ProviderMemory = "memory"
)

// Backend bundles the repository implementations of the selected store.
type Backend struct {
	Users      repository.UserRepository
	Sessions   repository.SessionRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
}

// Params holds dependencies for the backend, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the persistence backend based on configuration.
func New(params Params) (*Backend, error) {
	cfg := params.Config.Store
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("Store not configured, using in-memory backend")

		return newMemoryBackend(), nil
	}

	switch cfg.Provider {
	case ProviderMemory:
		return newMemoryBackend(), nil
	case ProviderMongo:
		db, err := mongodb.New(params.Lifecycle, cfg.Mongo, params.Logger)
		if err != nil {
			return nil, err
		}

		return &Backend{
			Users:      mongodb.NewUserRepository(db),
			Sessions:   mongodb.NewSessionRepository(db),
			Categories: mongodb.NewCategoryRepository(db),
			Products:   mongodb.NewProductRepository(db),
		}, nil
	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}
}

func newMemoryBackend() *Backend {
	store := memory.NewStore()

	return &Backend{
		Users:      store.Users(),
		Sessions:   store.Sessions(),
		Categories: store.Categories(),
		Products:   store.Products(),
	}
}

// UserRepo exposes the backend's user repository for injection.
func UserRepo(backend *Backend) repository.UserRepository {
	return backend.Users
}

// SessionRepo exposes the backend's session repository for injection.
func SessionRepo(backend *Backend) repository.SessionRepository {
	return backend.Sessions
}

// CategoryRepo exposes the backend's category repository for injection.
func CategoryRepo(backend *Backend) repository.CategoryRepository {
	return backend.Categories
}

// ProductRepo exposes the backend's product repository for injection.
func ProductRepo(backend *Backend) repository.ProductRepository {
	return backend.Products
}
