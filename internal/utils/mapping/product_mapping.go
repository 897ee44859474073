package mapping

import (
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/models"
)

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		Name:          d.Name,
		Description:   d.Description,
		SalePrice:     d.SalePrice,
		PurchasePrice: d.PurchasePrice,
		Stock:         d.Stock,
		Group:         models.ProductGroup(d.Group),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		Name:          m.Name,
		Description:   m.Description,
		SalePrice:     m.SalePrice,
		PurchasePrice: m.PurchasePrice,
		Stock:         m.Stock,
		Group:         domain.ProductGroup(m.Group),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
