package services

import (
	"context"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for sale and purchase documents
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction of the given type with its
	// items and payments.
	GetTransactionByID(ctx context.Context, txnType domain.TransactionType, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions of one type matching the params.
	ListTransactions(ctx context.Context, txnType domain.TransactionType, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// NextSequenceNumber returns the number the next document of a type would take.
	NextSequenceNumber(ctx context.Context, txnType domain.TransactionType) (int64, error)
}

// TransactionWriterSvc defines write operations for sale and purchase documents
type TransactionWriterSvc interface {
	// CreateTransaction validates, prices and persists a new sale or purchase,
	// applying its stock effect atomically. Returns the created transaction and
	// post-update snapshots of every affected product.
	CreateTransaction(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, []domain.Product, error)

	// RegisterPayment applies a payment to a transaction and returns the
	// updated document.
	RegisterPayment(ctx context.Context, txnType domain.TransactionType, transactionID string, req dto.RegisterPaymentRequest, userID string) (*domain.Transaction, error)

	// CancelTransaction deletes a transaction, reversing its stock effect
	// atomically. Returns post-reversal snapshots of every affected product.
	CancelTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string, userID string) ([]domain.Product, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
