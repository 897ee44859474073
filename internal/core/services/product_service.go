package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
	"github.com/gestcom/gestcom_backend/internal/middleware"
)

// productService provides product catalog operations.
type productService struct {
	productRepo portsrepo.ProductRepositoryFacade
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepositoryFacade) portssvc.ProductSvcFacade {
	return &productService{productRepo: productRepo}
}

var _ portssvc.ProductSvcFacade = (*productService)(nil)

// normalizeProductName canonicalizes a product name for storage and lookups.
func normalizeProductName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// CreateProduct creates a new product.
func (s *productService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Group.IsValid() {
		return nil, fmt.Errorf("%w: invalid product group %s", apperrors.ErrValidation, req.Group)
	}
	if req.SalePrice.LessThanOrEqual(decimal.Zero) || req.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: prices must be positive", apperrors.ErrValidation)
	}
	if req.Stock < 0 {
		return nil, fmt.Errorf("%w: initial stock cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		Name:          normalizeProductName(req.Name),
		Description:   req.Description,
		SalePrice:     req.SalePrice,
		PurchasePrice: req.PurchasePrice,
		Stock:         req.Stock,
		Group:         req.Group,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		logger.Error("Failed to save product", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save product: %w", err)
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID), slog.String("name", product.Name))
	return &product, nil
}

// GetProductByID retrieves a product by ID.
func (s *productService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}
	return product, nil
}

// ListProducts retrieves a paginated list of products.
func (s *productService) ListProducts(ctx context.Context, params dto.ListProductsParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, params.Limit, params.Offset, params.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// UpdateProduct updates a product's catalog fields. Stock is never updated
// here; it only moves through sales, purchases and their reversals.
func (s *productService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, requestingUserID string) (*domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", productID, err)
	}

	if req.Name != nil {
		product.Name = normalizeProductName(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.SalePrice != nil {
		if req.SalePrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: sale price must be positive", apperrors.ErrValidation)
		}
		product.SalePrice = *req.SalePrice
	}
	if req.PurchasePrice != nil {
		if req.PurchasePrice.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: purchase price must be positive", apperrors.ErrValidation)
		}
		product.PurchasePrice = *req.PurchasePrice
	}
	if req.Group != nil {
		if !req.Group.IsValid() {
			return nil, fmt.Errorf("%w: invalid product group %s", apperrors.ErrValidation, *req.Group)
		}
		product.Group = *req.Group
	}

	product.LastUpdatedAt = time.Now().UTC()
	product.LastUpdatedBy = requestingUserID

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		logger.Error("Failed to update product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}

// DeleteProduct removes a product from the catalog. Existing transaction
// lines keep their name snapshot, so history survives the delete.
func (s *productService) DeleteProduct(ctx context.Context, productID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete product", slog.String("error", err.Error()), slog.String("product_id", productID))
		return fmt.Errorf("failed to delete product %s: %w", productID, err)
	}

	logger.Info("Product deleted", slog.String("product_id", productID))
	return nil
}
