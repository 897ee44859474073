package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
	"github.com/gestcom/gestcom_backend/internal/middleware"
)

// transactionService provides the sale and purchase document operations:
// numbering, stock reconciliation, payment tracking and cancellation.
type transactionService struct {
	txnRepo      portsrepo.TransactionRepositoryFacade
	productRepo  portsrepo.ProductRepositoryFacade
	clientRepo   portsrepo.ClientRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	clientRepo portsrepo.ClientRepositoryFacade,
	supplierRepo portsrepo.SupplierRepositoryFacade,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		supplierRepo: supplierRepo,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveCounterpartyName looks up the counterparty registry matching the
// transaction type and returns the name to snapshot on the document.
func (s *transactionService) resolveCounterpartyName(ctx context.Context, txnType domain.TransactionType, counterpartyID string) (string, error) {
	switch txnType {
	case domain.Sale:
		client, err := s.clientRepo.FindClientByID(ctx, counterpartyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: unknown client %s", apperrors.ErrValidation, counterpartyID)
			}
			return "", fmt.Errorf("failed to resolve client %s: %w", counterpartyID, err)
		}
		return client.Name, nil
	case domain.Purchase:
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, counterpartyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return "", fmt.Errorf("%w: unknown supplier %s", apperrors.ErrValidation, counterpartyID)
			}
			return "", fmt.Errorf("failed to resolve supplier %s: %w", counterpartyID, err)
		}
		return supplier.Name, nil
	default:
		return "", fmt.Errorf("%w: invalid transaction type %s", apperrors.ErrValidation, txnType)
	}
}

// CreateTransaction validates, prices and persists a new sale or purchase.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) CreateTransaction(ctx context.Context, txnType domain.TransactionType, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, []domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !txnType.IsValid() {
		return nil, nil, fmt.Errorf("%w: invalid transaction type %s", apperrors.ErrValidation, txnType)
	}
	if len(req.Items) == 0 {
		return nil, nil, fmt.Errorf("%w: transaction requires at least one item", apperrors.ErrValidation)
	}

	counterpartyName, err := s.resolveCounterpartyName(ctx, txnType, req.CounterpartyID)
	if err != nil {
		return nil, nil, err
	}

	// Batch-resolve the referenced products. IDs that resolve keep their
	// catalog name and participate in the stock ledger; IDs that don't get
	// the placeholder snapshot and no stock effect.
	productIDs := make([]string, 0, len(req.Items))
	for _, item := range req.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	productsMap, err := s.productRepo.FindProductsByIDs(ctx, uniqueStrings(productIDs))
	if err != nil {
		logger.Error("Failed to fetch products for transaction creation", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to fetch products: %w", err)
	}

	now := time.Now().UTC()
	transactionID := uuid.NewString()

	items := make([]domain.LineItem, len(req.Items))
	for i, itemReq := range req.Items {
		if itemReq.Quantity <= 0 {
			return nil, nil, fmt.Errorf("%w: quantity must be positive for product %s", apperrors.ErrValidation, itemReq.ProductID)
		}
		if itemReq.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return nil, nil, fmt.Errorf("%w: unit price must be positive for product %s", apperrors.ErrValidation, itemReq.ProductID)
		}

		productName := domain.UnknownProductName
		if product, found := productsMap[itemReq.ProductID]; found {
			productName = product.Name
		}

		items[i] = domain.LineItem{
			ItemID:      uuid.NewString(),
			ProductID:   itemReq.ProductID,
			ProductName: productName,
			Quantity:    itemReq.Quantity,
			UnitPrice:   itemReq.UnitPrice,
		}
	}

	txn := domain.Transaction{
		TransactionID:    transactionID,
		Type:             txnType,
		CounterpartyID:   req.CounterpartyID,
		CounterpartyName: counterpartyName,
		Date:             req.Date,
		Items:            items,
		TotalPaid:        decimal.Zero,
		Observations:     req.Observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// Totals are always recomputed server-side. A client-supplied total is a
	// cross-check only.
	txn.Total = txn.ComputeTotal()
	txn.RemainingAmount = txn.Total
	txn.Status = domain.DeriveStatus(txn.TotalPaid, txn.Total)
	if req.Total != nil && !req.Total.Equal(txn.Total) {
		return nil, nil, fmt.Errorf("%w: submitted total %s does not match computed total %s", apperrors.ErrValidation, req.Total.String(), txn.Total.String())
	}

	// Stock deltas cover only products that still exist in the catalog.
	stockDeltas := make(map[string]int64)
	for productID, delta := range txn.StockDeltas() {
		if _, found := productsMap[productID]; found {
			stockDeltas[productID] = delta
		}
	}

	// Pre-check sale stock so an obvious oversell fails before touching the
	// database. The conditional decrement inside SaveTransaction remains the
	// authoritative guard under concurrency.
	if txnType == domain.Sale {
		for productID, delta := range stockDeltas {
			if product := productsMap[productID]; product.Stock < -delta {
				return nil, nil, fmt.Errorf("%w: product %s has stock %d, requested %d", apperrors.ErrInsufficientStock, productID, product.Stock, -delta)
			}
		}
	}

	maxSeq, err := s.txnRepo.MaxSequenceNumber(ctx, txnType)
	if err != nil {
		logger.Error("Failed to determine next sequence number", slog.String("error", err.Error()), slog.String("type", string(txnType)))
		return nil, nil, fmt.Errorf("failed to determine sequence number: %w", err)
	}
	txn.SequenceNumber = maxSeq + 1

	if err := txn.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn, stockDeltas); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateSequence) {
			logger.Warn("Sequence number collision on save", slog.String("type", string(txnType)), slog.Int64("sequence", txn.SequenceNumber))
		} else {
			logger.Error("Failed to save transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, nil, err
	}

	affected, err := s.affectedProducts(ctx, stockDeltas)
	if err != nil {
		logger.Error("Failed to fetch product snapshots after save", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, nil, fmt.Errorf("failed to fetch product snapshots: %w", err)
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", transactionID),
		slog.String("type", string(txnType)),
		slog.Int64("sequence", txn.SequenceNumber),
	)
	return &txn, affected, nil
}

// RegisterPayment applies a payment to a transaction.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) RegisterPayment(ctx context.Context, txnType domain.TransactionType, transactionID string, req dto.RegisterPaymentRequest, userID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.getTyped(ctx, txnType, transactionID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		TransactionID: transactionID,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		CreatedAt:     now,
	}

	updated, err := s.txnRepo.AddPayment(ctx, transactionID, payment, req.Bank, userID, now)
	if err != nil {
		err = mapPaymentError(err)
		if errors.Is(err, apperrors.ErrExcessPayment) || errors.Is(err, apperrors.ErrAlreadySettled) || errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Payment rejected", slog.String("transaction_id", transactionID), slog.String("reason", err.Error()))
		} else {
			logger.Error("Failed to register payment", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	logger.Info("Payment registered",
		slog.String("transaction_id", transactionID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// CancelTransaction deletes a transaction and reverses its stock effect.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) CancelTransaction(ctx context.Context, txnType domain.TransactionType, transactionID string, userID string) ([]domain.Product, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.getTyped(ctx, txnType, transactionID)
	if err != nil {
		return nil, err
	}

	// Reversal is unconditional in both directions: a purchase reversal may
	// drive stock negative, and lines whose product no longer exists are
	// simply no-ops. Lines snapshotted with the placeholder name never
	// touched the stock ledger at creation, so they are excluded here even
	// when a product with the same ID exists by now.
	applied := make(map[string]bool, len(txn.Items))
	for _, item := range txn.Items {
		if item.ProductName != domain.UnknownProductName {
			applied[item.ProductID] = true
		}
	}
	reversalDeltas := make(map[string]int64)
	for productID, delta := range txn.ReversalDeltas() {
		if applied[productID] {
			reversalDeltas[productID] = delta
		}
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID, reversalDeltas); err != nil {
		logger.Error("Failed to cancel transaction", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}

	affected, err := s.affectedProducts(ctx, reversalDeltas)
	if err != nil {
		logger.Error("Failed to fetch product snapshots after cancel", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to fetch product snapshots: %w", err)
	}

	logger.Info("Transaction cancelled",
		slog.String("transaction_id", transactionID),
		slog.String("type", string(txnType)),
		slog.String("cancelled_by", userID),
	)
	return affected, nil
}

// GetTransactionByID retrieves a transaction scoped to a type.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) GetTransactionByID(ctx context.Context, txnType domain.TransactionType, transactionID string) (*domain.Transaction, error) {
	return s.getTyped(ctx, txnType, transactionID)
}

// ListTransactions retrieves transactions of one type matching the params.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) ListTransactions(ctx context.Context, txnType domain.TransactionType, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	filter := portsrepo.TransactionFilter{
		From:   params.From,
		To:     params.To,
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if params.Status != nil {
		status := domain.PaymentStatus(*params.Status)
		filter.Status = &status
	}

	txns, err := s.txnRepo.ListTransactions(ctx, txnType, filter)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()), slog.String("type", string(txnType)))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	res := dto.ToListTransactionsResponse(txns)
	return &res, nil
}

// NextSequenceNumber returns the number the next document of a type would take.
// Implements portssvc.TransactionSvcFacade
func (s *transactionService) NextSequenceNumber(ctx context.Context, txnType domain.TransactionType) (int64, error) {
	if !txnType.IsValid() {
		return 0, fmt.Errorf("%w: invalid transaction type %s", apperrors.ErrValidation, txnType)
	}
	maxSeq, err := s.txnRepo.MaxSequenceNumber(ctx, txnType)
	if err != nil {
		return 0, fmt.Errorf("failed to determine sequence number: %w", err)
	}
	return maxSeq + 1, nil
}

// mapPaymentError translates the domain payment rejections into the sentinel
// taxonomy handlers map onto HTTP statuses. Other errors pass through.
func mapPaymentError(err error) error {
	switch {
	case errors.Is(err, domain.ErrExcessPayment):
		return fmt.Errorf("%w: %v", apperrors.ErrExcessPayment, err)
	case errors.Is(err, domain.ErrAlreadySettled):
		return fmt.Errorf("%w: %v", apperrors.ErrAlreadySettled, err)
	case errors.Is(err, domain.ErrNonPositiveValue):
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	default:
		return err
	}
}

// getTyped fetches a transaction and hides it when the type doesn't match the
// route it was requested through.
func (s *transactionService) getTyped(ctx context.Context, txnType domain.TransactionType, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	if txn.Type != txnType {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

// affectedProducts returns current snapshots of the products named in a delta
// map, skipping any that no longer exist.
func (s *transactionService) affectedProducts(ctx context.Context, deltas map[string]int64) ([]domain.Product, error) {
	if len(deltas) == 0 {
		return []domain.Product{}, nil
	}
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	productsMap, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	products := make([]domain.Product, 0, len(productsMap))
	for _, id := range ids {
		if product, found := productsMap[id]; found {
			products = append(products, product)
		}
	}
	return products, nil
}
