package services

import (
	"context"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/dto"
)

// ClientSvcFacade defines operations for managing the client registry
type ClientSvcFacade interface {
	// CreateClient registers a new client.
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUserID string) (*domain.Client, error)

	// GetClientByID retrieves a client by ID.
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients.
	ListClients(ctx context.Context, params dto.ListPartiesParams) ([]domain.Client, error)

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, requestingUserID string) (*domain.Client, error)

	// DeleteClient removes a client from the registry.
	DeleteClient(ctx context.Context, clientID string) error
}

// SupplierSvcFacade defines operations for managing the supplier registry
type SupplierSvcFacade interface {
	// CreateSupplier registers a new supplier.
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error)

	// GetSupplierByID retrieves a supplier by ID.
	GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers.
	ListSuppliers(ctx context.Context, params dto.ListPartiesParams) ([]domain.Supplier, error)

	// UpdateSupplier updates an existing supplier.
	UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, requestingUserID string) (*domain.Supplier, error)

	// DeleteSupplier removes a supplier from the registry.
	DeleteSupplier(ctx context.Context, supplierID string) error
}
