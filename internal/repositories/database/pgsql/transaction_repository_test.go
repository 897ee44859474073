package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/models"
)

func newMockedTransactionRepo(t *testing.T) (*PgxTransactionRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockPool.Close)

	repo := &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: mockPool}}
	return repo, mockPool
}

// anyArgs builds a matcher list for statements whose exact values are not
// under test, such as the 18-column header insert.
func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func saleFixture() domain.Transaction {
	now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	return domain.Transaction{
		TransactionID:    "txn-1",
		Type:             domain.Sale,
		SequenceNumber:   42,
		CounterpartyID:   "client-1",
		CounterpartyName: "ACME",
		Date:             now,
		Items: []domain.LineItem{
			{ItemID: "item-1", ProductID: "p1", ProductName: "WIDGET", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		},
		Total:           decimal.NewFromInt(30),
		TotalPaid:       decimal.Zero,
		RemainingAmount: decimal.NewFromInt(30),
		Status:          domain.Pending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "user-1",
			LastUpdatedAt: now,
			LastUpdatedBy: "user-1",
		},
	}
}

func TestMaxSequenceNumber(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)

	mockPool.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_number\), 0\) FROM transactions`).
		WithArgs("SALE").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(int64(42)))

	maxSeq, err := repo.MaxSequenceNumber(ctx, domain.Sale)
	require.NoError(t, err)
	assert.Equal(t, int64(42), maxSeq)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestFindTransactionByID_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)

	mockPool.ExpectQuery(`FROM transactions WHERE transaction_id = \$1;`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	txn, err := repo.FindTransactionByID(ctx, "missing")
	assert.Nil(t, txn)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSaveTransaction_DuplicateSequenceRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)
	txn := saleFixture()

	mockPool.ExpectBegin()
	mockPool.ExpectExec(`INSERT INTO transactions`).
		WithArgs(anyArgs(18)...).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mockPool.ExpectRollback()

	err := repo.SaveTransaction(ctx, txn, map[string]int64{"p1": -3})
	assert.ErrorIs(t, err, apperrors.ErrDuplicateSequence)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestSaveTransaction_InsufficientStockRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)
	txn := saleFixture()

	mockPool.ExpectBegin()
	mockPool.ExpectExec(`INSERT INTO transactions`).
		WithArgs(anyArgs(18)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	// Guarded decrement matches no row when stock is too low.
	mockPool.ExpectExec(`UPDATE products`).
		WithArgs("p1", int64(3), txn.CreatedAt, "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mockPool.ExpectRollback()

	err := repo.SaveTransaction(ctx, txn, map[string]int64{"p1": -3})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

// transactionHeaderRows builds a header row set. Values added to it must carry
// the exact scan destination types (models.TransactionType, decimal.Decimal,
// *time.Time) or the mock leaves the destinations zero-valued.
func transactionHeaderRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"transaction_id", "transaction_type", "sequence_number", "counterparty_id", "counterparty_name",
		"transaction_date", "total", "total_paid", "remaining_amount", "status",
		"first_payment_date", "final_payment_date", "bank", "observations",
		"created_at", "created_by", "last_updated_at", "last_updated_by",
	})
}

func emptyPaymentRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"payment_id", "transaction_id", "amount", "payment_date", "created_at"})
}

func TestAddPayment_PartialPayment(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)

	now := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	created := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	headerRows := transactionHeaderRows().AddRow(
		"txn-1", models.TransactionType("SALE"), int64(42), "client-1", "ACME",
		created, decimal.NewFromInt(100), decimal.Zero, decimal.NewFromInt(100), models.PaymentStatus("PENDING"),
		nil, nil, "", "",
		created, "user-1", created, "user-1",
	)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`FROM transactions WHERE transaction_id = \$1 FOR UPDATE`).
		WithArgs("txn-1").
		WillReturnRows(headerRows)
	mockPool.ExpectQuery(`FROM transaction_payments`).
		WithArgs("txn-1").
		WillReturnRows(emptyPaymentRows())
	mockPool.ExpectExec(`INSERT INTO transaction_payments`).
		WithArgs("pay-1", "txn-1", decimal.NewFromInt(40), now, now).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectExec(`UPDATE transactions`).
		WithArgs("txn-1", decimal.NewFromInt(40), decimal.NewFromInt(60), models.PaymentStatus("PARTIALLY_PAID"),
			&now, (*time.Time)(nil), "", now, "user-2").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()
	mockPool.ExpectQuery(`FROM transaction_items`).
		WithArgs("txn-1").
		WillReturnRows(pgxmock.NewRows([]string{"item_id", "transaction_id", "product_id", "product_name", "quantity", "unit_price"}))

	payment := domain.PaymentRecord{
		PaymentID:     "pay-1",
		TransactionID: "txn-1",
		Amount:        decimal.NewFromInt(40),
		PaymentDate:   now,
		CreatedAt:     now,
	}
	updated, err := repo.AddPayment(ctx, "txn-1", payment, "", "user-2", now)

	require.NoError(t, err)
	assert.Equal(t, domain.PartiallyPaid, updated.Status)
	assert.True(t, updated.TotalPaid.Equal(decimal.NewFromInt(40)))
	assert.True(t, updated.RemainingAmount.Equal(decimal.NewFromInt(60)))
	require.NotNil(t, updated.FirstPaymentDate)
	assert.Equal(t, now, *updated.FirstPaymentDate)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAddPayment_AlreadySettledRollsBack(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)

	created := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	headerRows := transactionHeaderRows().AddRow(
		"txn-1", models.TransactionType("SALE"), int64(42), "client-1", "ACME",
		created, decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.Zero, models.PaymentStatus("PAID"),
		&created, &created, "BANK-A", "",
		created, "user-1", created, "user-1",
	)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`FROM transactions WHERE transaction_id = \$1 FOR UPDATE`).
		WithArgs("txn-1").
		WillReturnRows(headerRows)
	mockPool.ExpectQuery(`FROM transaction_payments`).
		WithArgs("txn-1").
		WillReturnRows(emptyPaymentRows())
	mockPool.ExpectRollback()

	payment := domain.PaymentRecord{
		PaymentID:   "pay-2",
		Amount:      decimal.NewFromInt(1),
		PaymentDate: time.Now(),
	}
	updated, err := repo.AddPayment(ctx, "txn-1", payment, "", "user-2", time.Now())

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domain.ErrAlreadySettled)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDeleteTransaction_ReversalAndDelete(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`SELECT transaction_type, created_by FROM transactions`).
		WithArgs("txn-1").
		WillReturnRows(pgxmock.NewRows([]string{"transaction_type", "created_by"}).AddRow("SALE", "user-1"))
	mockPool.ExpectExec(`UPDATE products`).
		WithArgs("p1", int64(3), pgxmock.AnyArg(), "user-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectExec(`DELETE FROM transaction_payments`).
		WithArgs("txn-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mockPool.ExpectExec(`DELETE FROM transaction_items`).
		WithArgs("txn-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mockPool.ExpectExec(`DELETE FROM transactions`).
		WithArgs("txn-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mockPool.ExpectCommit()

	err := repo.DeleteTransaction(ctx, "txn-1", map[string]int64{"p1": 3})
	require.NoError(t, err)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	ctx := context.Background()
	repo, mockPool := newMockedTransactionRepo(t)

	mockPool.ExpectBegin()
	mockPool.ExpectQuery(`SELECT transaction_type, created_by FROM transactions`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)
	mockPool.ExpectRollback()

	err := repo.DeleteTransaction(ctx, "missing", map[string]int64{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
