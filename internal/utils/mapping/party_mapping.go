package mapping

import (
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:     d.ClientID,
		Name:         d.Name,
		TaxID:        d.TaxID,
		Phone:        d.Phone,
		Email:        d.Email,
		Address:      d.Address,
		Observations: d.Observations,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:     m.ClientID,
		Name:         m.Name,
		TaxID:        m.TaxID,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		Observations: m.Observations,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainClientSlice converts a slice of model Clients to domain Clients
func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:   d.SupplierID,
		Name:         d.Name,
		TaxID:        d.TaxID,
		Phone:        d.Phone,
		Email:        d.Email,
		Address:      d.Address,
		Observations: d.Observations,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:   m.SupplierID,
		Name:         m.Name,
		TaxID:        m.TaxID,
		Phone:        m.Phone,
		Email:        m.Email,
		Address:      m.Address,
		Observations: m.Observations,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}
