package models

import "github.com/shopspring/decimal"

// ProductGroup mirrors domain.ProductGroup for storage.
type ProductGroup string

// Product represents a row of the products table.
type Product struct {
	ProductID     string          `json:"productID" db:"product_id"`
	Name          string          `json:"name" db:"name"`
	Description   string          `json:"description" db:"description"`
	SalePrice     decimal.Decimal `json:"salePrice" db:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchasePrice" db:"purchase_price"`
	Stock         int64           `json:"stock" db:"stock"`
	Group         ProductGroup    `json:"group" db:"product_group"`
	AuditFields
}
