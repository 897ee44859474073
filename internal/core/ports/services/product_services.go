package services

import (
	"context"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/dto"
)

// ProductSvcFacade defines operations for managing the product catalog
type ProductSvcFacade interface {
	// CreateProduct creates a new product.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// GetProductByID retrieves a product by ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated list of products.
	ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error)

	// UpdateProduct updates a product's catalog fields.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID string) error
}
