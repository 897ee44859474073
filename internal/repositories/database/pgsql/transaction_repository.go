package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	"github.com/gestcom/gestcom_backend/internal/models"
	"github.com/gestcom/gestcom_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for sale and purchase documents.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, transaction_type, sequence_number, counterparty_id, counterparty_name,
	transaction_date, total, total_paid, remaining_amount, status,
	first_payment_date, final_payment_date, bank, observations,
	created_at, created_by, last_updated_at, last_updated_by`

// SaveTransaction persists the document header, its items and payments, and
// applies the stock deltas, all within one database transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, stockDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelTxn := mapping.ToModelTransaction(txn)
	headerQuery := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelTxn.TransactionID,
		modelTxn.Type,
		modelTxn.SequenceNumber,
		modelTxn.CounterpartyID,
		modelTxn.CounterpartyName,
		modelTxn.Date,
		modelTxn.Total,
		modelTxn.TotalPaid,
		modelTxn.RemainingAmount,
		modelTxn.Status,
		modelTxn.FirstPaymentDate,
		modelTxn.FinalPaymentDate,
		modelTxn.Bank,
		modelTxn.Observations,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: %s number %d", apperrors.ErrDuplicateSequence, modelTxn.Type, modelTxn.SequenceNumber)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+modelTxn.TransactionID, err)
	}

	if err := applyStockDeltas(ctx, tx, stockDeltas, true, txn.CreatedBy, txn.CreatedAt); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	itemQuery := `
		INSERT INTO transaction_items (item_id, transaction_id, product_id, product_name, quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	for _, item := range txn.Items {
		modelItem := mapping.ToModelLineItem(txn.TransactionID, item)
		batch.Queue(itemQuery,
			modelItem.ItemID,
			modelItem.TransactionID,
			modelItem.ProductID,
			modelItem.ProductName,
			modelItem.Quantity,
			modelItem.UnitPrice,
		)
	}
	paymentQuery := `
		INSERT INTO transaction_payments (payment_id, transaction_id, amount, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, payment := range txn.Payments {
		modelPayment := mapping.ToModelPaymentRecord(payment)
		batch.Queue(paymentQuery,
			modelPayment.PaymentID,
			modelPayment.TransactionID,
			modelPayment.Amount,
			modelPayment.PaymentDate,
			modelPayment.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert lines for transaction "+modelTxn.TransactionID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction with its items and payments.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(*modelTxn)

	items, err := r.findItems(ctx, r.Pool, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Items = items

	payments, err := r.findPayments(ctx, r.Pool, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Payments = payments

	return &txn, nil
}

// MaxSequenceNumber returns the highest sequence number recorded for a type.
func (r *PgxTransactionRepository) MaxSequenceNumber(ctx context.Context, txnType domain.TransactionType) (int64, error) {
	query := `SELECT COALESCE(MAX(sequence_number), 0) FROM transactions WHERE transaction_type = $1;`

	var maxSeq int64
	if err := r.Pool.QueryRow(ctx, query, string(txnType)).Scan(&maxSeq); err != nil {
		return 0, apperrors.NewAppError(500, "failed to query max sequence number for "+string(txnType), err)
	}
	return maxSeq, nil
}

// ListTransactions retrieves transactions of one type, newest sequence first.
// Items and payments are loaded in bulk for the returned page.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, txnType domain.TransactionType, filter portsrepo.TransactionFilter) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_type = $1`
	args := []any{string(txnType)}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY sequence_number DESC`
	args = append(args, filter.Limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, filter.Offset)
	query += ` OFFSET $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		modelTxn, err := scanTransaction(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelTxns = append(modelTxns, *modelTxn)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating transaction rows", err)
	}

	txns := make([]domain.Transaction, len(modelTxns))
	ids := make([]string, len(modelTxns))
	for i, m := range modelTxns {
		txns[i] = mapping.ToDomainTransaction(m)
		txns[i].Items = []domain.LineItem{}
		txns[i].Payments = []domain.PaymentRecord{}
		ids[i] = m.TransactionID
	}
	if len(ids) == 0 {
		return txns, nil
	}

	index := make(map[string]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	itemRows, err := r.Pool.Query(ctx, `
		SELECT item_id, transaction_id, product_id, product_name, quantity, unit_price
		FROM transaction_items
		WHERE transaction_id = ANY($1)
		ORDER BY item_id;
	`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction items", err)
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var m models.LineItem
		if err := itemRows.Scan(&m.ItemID, &m.TransactionID, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction item row", err)
		}
		if i, ok := index[m.TransactionID]; ok {
			txns[i].Items = append(txns[i].Items, mapping.ToDomainLineItem(m))
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating transaction item rows", err)
	}

	paymentRows, err := r.Pool.Query(ctx, `
		SELECT payment_id, transaction_id, amount, payment_date, created_at
		FROM transaction_payments
		WHERE transaction_id = ANY($1)
		ORDER BY created_at;
	`, ids)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction payments", err)
	}
	defer paymentRows.Close()
	for paymentRows.Next() {
		var m models.PaymentRecord
		if err := paymentRows.Scan(&m.PaymentID, &m.TransactionID, &m.Amount, &m.PaymentDate, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction payment row", err)
		}
		if i, ok := index[m.TransactionID]; ok {
			txns[i].Payments = append(txns[i].Payments, mapping.ToDomainPaymentRecord(m))
		}
	}
	if err := paymentRows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating transaction payment rows", err)
	}

	return txns, nil
}

// AddPayment locks the document row, applies the payment through the domain
// transition and persists the outcome in one database transaction.
func (r *PgxTransactionRepository) AddPayment(ctx context.Context, transactionID string, payment domain.PaymentRecord, bank string, updatedBy string, updatedAt time.Time) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	lockQuery := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1 FOR UPDATE;`
	modelTxn, err := scanTransaction(tx.QueryRow(ctx, lockQuery, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}

	txn := mapping.ToDomainTransaction(*modelTxn)
	payments, err := r.findPayments(ctx, tx, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Payments = payments

	if err := txn.ApplyPayment(payment, bank); err != nil {
		return nil, err
	}
	txn.LastUpdatedAt = updatedAt
	txn.LastUpdatedBy = updatedBy

	insertQuery := `
		INSERT INTO transaction_payments (payment_id, transaction_id, amount, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	if _, err := tx.Exec(ctx, insertQuery, payment.PaymentID, transactionID, payment.Amount, payment.PaymentDate, payment.CreatedAt); err != nil {
		return nil, apperrors.NewAppError(500, "failed to insert payment for transaction "+transactionID, err)
	}

	updated := mapping.ToModelTransaction(txn)
	updateQuery := `
		UPDATE transactions
		SET total_paid = $2, remaining_amount = $3, status = $4,
		    first_payment_date = $5, final_payment_date = $6, bank = $7,
		    last_updated_at = $8, last_updated_by = $9
		WHERE transaction_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery,
		updated.TransactionID,
		updated.TotalPaid,
		updated.RemainingAmount,
		updated.Status,
		updated.FirstPaymentDate,
		updated.FinalPaymentDate,
		updated.Bank,
		updated.LastUpdatedAt,
		updated.LastUpdatedBy,
	); err != nil {
		return nil, apperrors.NewAppError(500, "failed to update transaction "+transactionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	items, err := r.findItems(ctx, r.Pool, transactionID)
	if err != nil {
		return nil, err
	}
	txn.Items = items

	return &txn, nil
}

// DeleteTransaction removes the document and its lines and applies the
// reversal stock deltas within a single database transaction. Reversal
// updates are unconditional in both directions.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, reversalDeltas map[string]int64) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	var txnType string
	var createdBy string
	err = tx.QueryRow(ctx, `SELECT transaction_type, created_by FROM transactions WHERE transaction_id = $1 FOR UPDATE;`, transactionID).Scan(&txnType, &createdBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return apperrors.NewAppError(500, "failed to lock transaction "+transactionID, err)
	}

	if err := applyStockDeltas(ctx, tx, reversalDeltas, false, createdBy, time.Now().UTC()); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_payments WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete payments for transaction "+transactionID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transaction_items WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete items for transaction "+transactionID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID); err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}

	return r.Commit(ctx, tx)
}

// applyStockDeltas applies per-product stock changes on the given transaction.
// When guarded is true, decrements use the conditional form and a miss maps to
// ErrInsufficientStock; otherwise all updates are unconditional and rows that
// no longer exist are skipped.
func applyStockDeltas(ctx context.Context, tx pgx.Tx, deltas map[string]int64, guarded bool, userID string, now time.Time) error {
	guardedDecrement := `
		UPDATE products
		SET stock = stock - $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1 AND stock >= $2;
	`
	unconditional := `
		UPDATE products
		SET stock = stock + $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1;
	`
	for productID, delta := range deltas {
		if delta == 0 {
			continue
		}
		if guarded && delta < 0 {
			tag, err := tx.Exec(ctx, guardedDecrement, productID, -delta, now, userID)
			if err != nil {
				return apperrors.NewAppError(500, "failed to decrement stock for product "+productID, err)
			}
			if tag.RowsAffected() == 0 {
				return fmt.Errorf("%w: product %s", apperrors.ErrInsufficientStock, productID)
			}
			continue
		}
		if _, err := tx.Exec(ctx, unconditional, productID, delta, now, userID); err != nil {
			return apperrors.NewAppError(500, "failed to adjust stock for product "+productID, err)
		}
	}
	return nil
}

// findItems loads the line items of one transaction.
func (r *PgxTransactionRepository) findItems(ctx context.Context, q querier, transactionID string) ([]domain.LineItem, error) {
	rows, err := q.Query(ctx, `
		SELECT item_id, transaction_id, product_id, product_name, quantity, unit_price
		FROM transaction_items
		WHERE transaction_id = $1
		ORDER BY item_id;
	`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items for transaction "+transactionID, err)
	}
	defer rows.Close()

	items := []models.LineItem{}
	for rows.Next() {
		var m models.LineItem
		if err := rows.Scan(&m.ItemID, &m.TransactionID, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan item row", err)
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating item rows", err)
	}
	return mapping.ToDomainLineItemSlice(items), nil
}

// findPayments loads the payments of one transaction, oldest first.
func (r *PgxTransactionRepository) findPayments(ctx context.Context, q querier, transactionID string) ([]domain.PaymentRecord, error) {
	rows, err := q.Query(ctx, `
		SELECT payment_id, transaction_id, amount, payment_date, created_at
		FROM transaction_payments
		WHERE transaction_id = $1
		ORDER BY created_at;
	`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments for transaction "+transactionID, err)
	}
	defer rows.Close()

	payments := []models.PaymentRecord{}
	for rows.Next() {
		var m models.PaymentRecord
		if err := rows.Scan(&m.PaymentID, &m.TransactionID, &m.Amount, &m.PaymentDate, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed iterating payment rows", err)
	}
	return mapping.ToDomainPaymentRecordSlice(payments), nil
}

// scanTransaction scans one transaction header row.
func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Type,
		&m.SequenceNumber,
		&m.CounterpartyID,
		&m.CounterpartyName,
		&m.Date,
		&m.Total,
		&m.TotalPaid,
		&m.RemainingAmount,
		&m.Status,
		&m.FirstPaymentDate,
		&m.FinalPaymentDate,
		&m.Bank,
		&m.Observations,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
