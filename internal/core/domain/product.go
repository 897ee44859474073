package domain

import "github.com/shopspring/decimal"

// ProductGroup categorizes products for the inventory views.
type ProductGroup string

const (
	GroupGeneral    ProductGroup = "GENERAL"
	GroupFood       ProductGroup = "FOOD"
	GroupBeverage   ProductGroup = "BEVERAGE"
	GroupCleaning   ProductGroup = "CLEANING"
	GroupStationery ProductGroup = "STATIONERY"
	GroupOther      ProductGroup = "OTHER"
)

// IsValid reports whether the group is one of the known categories.
func (g ProductGroup) IsValid() bool {
	switch g {
	case GroupGeneral, GroupFood, GroupBeverage, GroupCleaning, GroupStationery, GroupOther:
		return true
	}
	return false
}

// UnknownProductName is the line-item snapshot used when the referenced
// product no longer exists at transaction time.
const UnknownProductName = "Unknown Product"

// Product is an inventory item. Stock is mutated only by the transaction
// repository as part of creating or cancelling sales and purchases.
type Product struct {
	ProductID     string          `json:"productID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SalePrice     decimal.Decimal `json:"salePrice"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	Stock         int64           `json:"stock"`
	Group         ProductGroup    `json:"group"`
	AuditFields
}
