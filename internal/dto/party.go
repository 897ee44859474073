package dto

import (
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

// CreateClientRequest defines the data needed to register a new client.
type CreateClientRequest struct {
	Name         string `json:"name" binding:"required"`
	TaxID        string `json:"taxID"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name         *string `json:"name"`
	TaxID        *string `json:"taxID"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Observations *string `json:"observations"`
}

// ClientResponse defines the data returned for a client.
type ClientResponse struct {
	ClientID      string    `json:"clientID"`
	Name          string    `json:"name"`
	TaxID         string    `json:"taxID"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Observations  string    `json:"observations"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListPartiesParams defines query parameters for listing clients or suppliers.
type ListPartiesParams struct {
	Limit  int     `form:"limit,default=50"`
	Offset int     `form:"offset,default=0"`
	Name   *string `form:"name"`
}

// ListClientsResponse wraps the list of clients.
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:      c.ClientID,
		Name:          c.Name,
		TaxID:         c.TaxID,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		Observations:  c.Observations,
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListClientsResponse converts a slice of domain.Client to ListClientsResponse DTO
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	res := make([]ClientResponse, len(clients))
	for i, c := range clients {
		res[i] = ToClientResponse(&c)
	}
	return ListClientsResponse{Clients: res}
}

// CreateSupplierRequest defines the data needed to register a new supplier.
type CreateSupplierRequest struct {
	Name         string `json:"name" binding:"required"`
	TaxID        string `json:"taxID"`
	Phone        string `json:"phone"`
	Email        string `json:"email" binding:"omitempty,email"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name         *string `json:"name"`
	TaxID        *string `json:"taxID"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	Address      *string `json:"address"`
	Observations *string `json:"observations"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID    string    `json:"supplierID"`
	Name          string    `json:"name"`
	TaxID         string    `json:"taxID"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Observations  string    `json:"observations"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListSuppliersResponse wraps the list of suppliers.
type ListSuppliersResponse struct {
	Suppliers []SupplierResponse `json:"suppliers"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:    s.SupplierID,
		Name:          s.Name,
		TaxID:         s.TaxID,
		Phone:         s.Phone,
		Email:         s.Email,
		Address:       s.Address,
		Observations:  s.Observations,
		CreatedAt:     s.CreatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// ToListSuppliersResponse converts a slice of domain.Supplier to ListSuppliersResponse DTO
func ToListSuppliersResponse(suppliers []domain.Supplier) ListSuppliersResponse {
	res := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		res[i] = ToSupplierResponse(&s)
	}
	return ListSuppliersResponse{Suppliers: res}
}
