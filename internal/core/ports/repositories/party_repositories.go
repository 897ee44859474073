package repositories

import (
	"context"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

// ClientRepositoryFacade defines persistence operations for the client registry
type ClientRepositoryFacade interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// FindClientByID retrieves a client by its unique identifier.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients retrieves a paginated list of clients, optionally filtered
	// by a case-insensitive name prefix.
	ListClients(ctx context.Context, limit, offset int, name *string) ([]domain.Client, error)

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client from the registry.
	DeleteClient(ctx context.Context, clientID string) error
}

// SupplierRepositoryFacade defines persistence operations for the supplier registry
type SupplierRepositoryFacade interface {
	// SaveSupplier persists a new supplier.
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error

	// FindSupplierByID retrieves a supplier by its unique identifier.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves a paginated list of suppliers, optionally filtered
	// by a case-insensitive name prefix.
	ListSuppliers(ctx context.Context, limit, offset int, name *string) ([]domain.Supplier, error)

	// UpdateSupplier updates an existing supplier.
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error

	// DeleteSupplier removes a supplier from the registry.
	DeleteSupplier(ctx context.Context, supplierID string) error
}
