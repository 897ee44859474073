package dto

import (
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProductRequest defines the data needed to create a new product.
type CreateProductRequest struct {
	Name          string              `json:"name" binding:"required"`
	Description   string              `json:"description"`
	SalePrice     decimal.Decimal     `json:"salePrice" binding:"required"`
	PurchasePrice decimal.Decimal     `json:"purchasePrice" binding:"required"`
	Stock         int64               `json:"stock" binding:"gte=0"`
	Group         domain.ProductGroup `json:"group" binding:"required,oneof=GENERAL FOOD BEVERAGE CLEANING STATIONERY OTHER"`
}

// UpdateProductRequest defines the data allowed for updating a product.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateProductRequest struct {
	Name          *string              `json:"name"`
	Description   *string              `json:"description"`
	SalePrice     *decimal.Decimal     `json:"salePrice"`
	PurchasePrice *decimal.Decimal     `json:"purchasePrice"`
	Group         *domain.ProductGroup `json:"group"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string              `json:"productID"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	SalePrice     decimal.Decimal     `json:"salePrice"`
	PurchasePrice decimal.Decimal     `json:"purchasePrice"`
	Stock         int64               `json:"stock"`
	Group         domain.ProductGroup `json:"group"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ListProductsParams defines query parameters for listing products.
type ListProductsParams struct {
	Limit  int     `form:"limit,default=50"`
	Offset int     `form:"offset,default=0"`
	Name   *string `form:"name"`
}

// ListProductsResponse wraps the list of products.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		Name:          p.Name,
		Description:   p.Description,
		SalePrice:     p.SalePrice,
		PurchasePrice: p.PurchasePrice,
		Stock:         p.Stock,
		Group:         p.Group,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductsResponse converts a slice of domain.Product to ListProductsResponse DTO
func ToListProductsResponse(products []domain.Product) ListProductsResponse {
	res := make([]ProductResponse, len(products))
	for i, p := range products {
		res[i] = ToProductResponse(&p)
	}
	return ListProductsResponse{Products: res}
}
