package services

import (
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Supplier = NewSupplierService(repos.SupplierRepo)
	container.Expense = NewExpenseService(repos.ExpenseRepo)
	container.User = NewUserService(repos.UserRepo)

	// The transaction service spans the counterparty registries and the
	// product catalog for snapshots and stock reconciliation.
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.ProductRepo,
		repos.ClientRepo,
		repos.SupplierRepo,
	)

	container.Token = NewTokenService(cfg)

	return container
}
