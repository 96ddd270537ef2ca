// Package memory contains an in-memory implementation of the persistence
// layer. It backs local development without a MongoDB instance and serves as
// the fixture for service-level tests.
package memory

import (
	"context"
	"regexp"
	"sort"
	"sync"

	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"

	"github.com/pkg/errors"
)

// Store holds all collections behind a single lock. Each operation is its own
// critical section; there are no cross-operation transactions, matching the
// document-store model.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	sessions   map[string]entity.Session // keyed by token
	categories map[string]entity.Category
	products   map[string]entity.Product
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		sessions:   make(map[string]entity.Session),
		categories: make(map[string]entity.Category),
		products:   make(map[string]entity.Product),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() repository.UserRepository {
	return &userRepository{store: s}
}

// Sessions returns the session repository view of the store.
func (s *Store) Sessions() repository.SessionRepository {
	return &sessionRepository{store: s}
}

// Categories returns the category repository view of the store.
func (s *Store) Categories() repository.CategoryRepository {
	return &categoryRepository{store: s}
}

// Products returns the product repository view of the store.
func (s *Store) Products() repository.ProductRepository {
	return &productRepository{store: s}
}

// --- users ---

type userRepository struct {
	store *Store
}

func (repo *userRepository) FindByID(_ context.Context, id string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	user, ok := repo.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return &user, nil
}

func (repo *userRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	for _, user := range repo.store.users {
		if user.Email == email {
			u := user

			return &u, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (repo *userRepository) FindAll(_ context.Context) ([]*entity.User, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	users := make([]*entity.User, 0, len(repo.store.users))
	for _, user := range repo.store.users {
		u := user
		users = append(users, &u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	if len(users) > repository.MaxListResults {
		users = users[:repository.MaxListResults]
	}

	return users, nil
}

func (repo *userRepository) Count(_ context.Context) (int64, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return int64(len(repo.store.users)), nil
}

func (repo *userRepository) Create(_ context.Context, user *entity.User) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.users[user.ID] = *user

	return nil
}

func (repo *userRepository) SetAdmin(_ context.Context, email string, isAdmin bool) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for id, user := range repo.store.users {
		if user.Email == email {
			user.IsAdmin = isAdmin
			repo.store.users[id] = user

			return nil
		}
	}

	return repository.ErrUserNotFound
}

// --- sessions ---

type sessionRepository struct {
	store *Store
}

func (repo *sessionRepository) Create(_ context.Context, session *entity.Session) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.sessions[session.Token] = *session

	return nil
}

func (repo *sessionRepository) FindByToken(_ context.Context, token string) (*entity.Session, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	session, ok := repo.store.sessions[token]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return &session, nil
}

func (repo *sessionRepository) DeleteByToken(_ context.Context, token string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	delete(repo.store.sessions, token)

	return nil
}

func (repo *sessionRepository) DeleteByUserID(_ context.Context, userID string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	for token, session := range repo.store.sessions {
		if session.UserID == userID {
			delete(repo.store.sessions, token)
		}
	}

	return nil
}

// --- categories ---

type categoryRepository struct {
	store *Store
}

func (repo *categoryRepository) Create(_ context.Context, category *entity.Category) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.categories[category.ID] = *category

	return nil
}

func (repo *categoryRepository) FindByID(_ context.Context, id string) (*entity.Category, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	category, ok := repo.store.categories[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return &category, nil
}

func (repo *categoryRepository) FindAll(_ context.Context) ([]*entity.Category, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	categories := make([]*entity.Category, 0, len(repo.store.categories))
	for _, category := range repo.store.categories {
		c := category
		categories = append(categories, &c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
	if len(categories) > repository.MaxListResults {
		categories = categories[:repository.MaxListResults]
	}

	return categories, nil
}

func (repo *categoryRepository) UpdateFields(_ context.Context, id string, fields repository.Fields) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	category, ok := repo.store.categories[id]
	if !ok {
		return repository.ErrCategoryNotFound
	}

	for key, value := range fields {
		switch key {
		case "name":
			category.Name = value.(string)
		case "description":
			category.Description = value.(string)
		}
	}
	repo.store.categories[id] = category

	return nil
}

func (repo *categoryRepository) Delete(_ context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.categories[id]; !ok {
		return repository.ErrCategoryNotFound
	}
	delete(repo.store.categories, id)

	return nil
}

// --- products ---

type productRepository struct {
	store *Store
}

func (repo *productRepository) Create(_ context.Context, product *entity.Product) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.products[product.ID] = *product

	return nil
}

func (repo *productRepository) FindByID(_ context.Context, id string) (*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	product, ok := repo.store.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}

	return &product, nil
}

func (repo *productRepository) List(_ context.Context, query repository.ProductQuery) ([]*entity.Product, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	match, err := buildMatcher(query)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(repo.store.products))
	for _, product := range repo.store.products {
		if !match(&product) {
			continue
		}
		p := product
		products = append(products, &p)
	}

	sortProducts(products, query.SortBy)
	if len(products) > repository.MaxListResults {
		products = products[:repository.MaxListResults]
	}

	return products, nil
}

// buildMatcher compiles the query spec into a predicate with the same
// semantics as the MongoDB filter: AND across clauses, OR across the three
// search fields.
func buildMatcher(query repository.ProductQuery) (func(*entity.Product) bool, error) {
	var searchRe *regexp.Regexp
	if pattern := query.SearchPattern(); pattern != "" {
		re, err := regexp.Compile("(?i)" + pattern)
		if err != nil {
			return nil, domainerrors.NewStoreExecuteError(errors.WithStack(err), "invalid search pattern")
		}
		searchRe = re
	}

	return func(p *entity.Product) bool {
		if searchRe != nil {
			if !searchRe.MatchString(p.Name) &&
				!searchRe.MatchString(p.Description) &&
				!searchRe.MatchString(p.Category) {
				return false
			}
		}
		if query.Category != "" && p.Category != query.Category {
			return false
		}
		if query.MinPrice != nil && p.Price < *query.MinPrice {
			return false
		}
		if query.MaxPrice != nil && p.Price > *query.MaxPrice {
			return false
		}

		switch query.StockStatus {
		case repository.StockStatusInStock:
			return p.Stock >= entity.InStockThreshold
		case repository.StockStatusLowStock:
			return p.Stock > 0 && p.Stock < entity.InStockThreshold
		case repository.StockStatusOutOfStock:
			return p.Stock == 0
		}

		return true
	}, nil
}

func sortProducts(products []*entity.Product, sortBy repository.SortOption) {
	switch sortBy {
	case repository.SortPriceAsc:
		sort.Slice(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case repository.SortPriceDesc:
		sort.Slice(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	default:
		sort.Slice(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

func (repo *productRepository) UpdateFields(_ context.Context, id string, fields repository.Fields) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	product, ok := repo.store.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}

	for key, value := range fields {
		switch key {
		case "name":
			product.Name = value.(string)
		case "description":
			product.Description = value.(string)
		case "price":
			product.Price = value.(float64)
		case "category":
			product.Category = value.(string)
		case "imageUrl":
			product.ImageURL = value.(string)
		case "stock":
			product.Stock = value.(int)
		}
	}
	repo.store.products[id] = product

	return nil
}

func (repo *productRepository) Delete(_ context.Context, id string) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(repo.store.products, id)

	return nil
}
