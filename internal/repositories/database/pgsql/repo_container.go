package pgsql

import (
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		ProductRepo:     newPgxProductRepository(dbPool),
		ClientRepo:      newPgxClientRepository(dbPool),
		SupplierRepo:    newPgxSupplierRepository(dbPool),
		ExpenseRepo:     newPgxExpenseRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
