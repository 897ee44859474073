package repositories

import (
	"context"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

// ProductReader defines read operations for product data
type ProductReader interface {
	// FindProductByID retrieves a product by its unique identifier.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// FindProductsByIDs retrieves products for the given IDs, keyed by product ID.
	// IDs with no matching product are simply absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)

	// ListProducts retrieves a paginated list of products, optionally filtered
	// by a case-insensitive name prefix.
	ListProducts(ctx context.Context, limit, offset int, name *string) ([]domain.Product, error)
}

// ProductWriter defines write operations for product data
type ProductWriter interface {
	// SaveProduct persists a new product.
	SaveProduct(ctx context.Context, product domain.Product) error

	// UpdateProduct updates an existing product's catalog fields.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
