package repositories

import (
	"context"
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

// TransactionFilter narrows transaction listings.
type TransactionFilter struct {
	Status *domain.PaymentStatus
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// TransactionReader defines read operations for sale and purchase documents
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction with its line items and payments.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions of one type, newest sequence first.
	ListTransactions(ctx context.Context, txnType domain.TransactionType, filter TransactionFilter) ([]domain.Transaction, error)

	// MaxSequenceNumber returns the highest sequence number recorded for a type,
	// or 0 when no document of that type exists.
	MaxSequenceNumber(ctx context.Context, txnType domain.TransactionType) (int64, error)
}

// TransactionWriter defines write operations for sale and purchase documents
type TransactionWriter interface {
	// SaveTransaction persists a transaction with its items and payments and
	// applies the given per-product stock deltas, all within a single database
	// transaction. A conditional decrement that matches no row surfaces
	// apperrors.ErrInsufficientStock; a sequence collision surfaces
	// apperrors.ErrDuplicateSequence. Nothing is persisted on failure.
	SaveTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]int64) error

	// AddPayment locks the transaction row, applies the payment through the
	// domain transition and persists the outcome in one database transaction.
	// Returns the updated transaction.
	AddPayment(ctx context.Context, transactionID string, payment domain.PaymentRecord, bank string, updatedBy string, updatedAt time.Time) (*domain.Transaction, error)

	// DeleteTransaction removes the transaction with its items and payments and
	// applies the reversal stock deltas within a single database transaction.
	DeleteTransaction(ctx context.Context, transactionID string, reversalDeltas map[string]int64) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
