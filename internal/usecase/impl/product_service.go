package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "toolstore/internal/delivery/context"
	"toolstore/internal/domain/entity"
	domainerrors "toolstore/internal/domain/errors"
	"toolstore/internal/domain/repository"
	"toolstore/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// productService implements the ProductUsecase interface.
type productService struct {
	products repository.ProductRepository
	logger   *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(products repository.ProductRepository, logger *slog.Logger) usecase.ProductUsecase {
	return &productService{
		products: products,
		logger:   logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create persists a new product with a server-assigned id and timestamp.
// Stock defaults to zero when omitted from the request.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	product := &entity.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       *input.Price,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Stock:       input.Stock,
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.products.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("product_id", product.ID))

	return product, nil
}

// List translates the raw listing parameters into the store-agnostic query
// specification and runs it.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) ([]*entity.Product, error) {
	products, err := srv.products.List(ctx, buildProductQuery(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// buildProductQuery maps wire parameters onto the query spec. Unrecognized
// stock_status and sort_by values fall back to no stock clause and the default
// sort respectively.
func buildProductQuery(input *usecase.ListProductsInput) repository.ProductQuery {
	query := repository.ProductQuery{
		Search:   input.Search,
		Category: input.Category,
		MinPrice: input.MinPrice,
		MaxPrice: input.MaxPrice,
	}

	switch repository.StockStatus(input.StockStatus) {
	case repository.StockStatusInStock:
		query.StockStatus = repository.StockStatusInStock
	case repository.StockStatusLowStock:
		query.StockStatus = repository.StockStatusLowStock
	case repository.StockStatusOutOfStock:
		query.StockStatus = repository.StockStatusOutOfStock
	}

	switch repository.SortOption(input.SortBy) {
	case repository.SortPriceAsc:
		query.SortBy = repository.SortPriceAsc
	case repository.SortPriceDesc:
		query.SortBy = repository.SortPriceDesc
	default:
		query.SortBy = repository.SortNewest
	}

	return query
}

// Get retrieves one product by id.
func (srv *productService) Get(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.products.FindByID(ctx, id)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// Update applies the non-nil fields of the input to the product and returns
// the re-fetched record.
func (srv *productService) Update(ctx context.Context, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	fields := repository.Fields{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.ImageURL != nil {
		fields["imageUrl"] = *input.ImageURL
	}
	if input.Stock != nil {
		fields["stock"] = *input.Stock
	}
	if len(fields) == 0 {
		return nil, domainerrors.ErrNoFieldsToUpdate
	}

	if err := srv.products.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return srv.Get(ctx, id)
}

// Delete removes one product by id.
func (srv *productService) Delete(ctx context.Context, id string) error {
	if err := srv.products.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("product_id", id))

	return nil
}
