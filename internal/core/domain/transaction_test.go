package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		totalPaid decimal.Decimal
		total     decimal.Decimal
		want      domain.PaymentStatus
	}{
		{
			name:      "nothing paid",
			totalPaid: decimal.Zero,
			total:     decimal.NewFromInt(100),
			want:      domain.Pending,
		},
		{
			name:      "partially paid",
			totalPaid: decimal.NewFromInt(40),
			total:     decimal.NewFromInt(100),
			want:      domain.PartiallyPaid,
		},
		{
			name:      "exactly paid",
			totalPaid: decimal.NewFromInt(100),
			total:     decimal.NewFromInt(100),
			want:      domain.Paid,
		},
		{
			name:      "overpaid still reads as paid",
			totalPaid: decimal.NewFromInt(120),
			total:     decimal.NewFromInt(100),
			want:      domain.Paid,
		},
		{
			name:      "zero total is immediately paid",
			totalPaid: decimal.Zero,
			total:     decimal.Zero,
			want:      domain.Paid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeriveStatus(tt.totalPaid, tt.total)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransaction_ComputeTotal(t *testing.T) {
	txn := domain.Transaction{
		Items: []domain.LineItem{
			{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromFloat(10.50)},
			{ProductID: "p2", Quantity: 2, UnitPrice: decimal.NewFromFloat(4.25)},
		},
	}

	assert.True(t, txn.ComputeTotal().Equal(decimal.NewFromFloat(40.00)))
}

func TestTransaction_StockDeltas(t *testing.T) {
	items := []domain.LineItem{
		{ProductID: "p1", Quantity: 3, UnitPrice: decimal.NewFromInt(10)},
		{ProductID: "p2", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
		{ProductID: "p1", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
	}

	t.Run("sale releases stock", func(t *testing.T) {
		txn := domain.Transaction{Type: domain.Sale, Items: items}
		deltas := txn.StockDeltas()
		assert.Equal(t, map[string]int64{"p1": -4, "p2": -2}, deltas)
	})

	t.Run("purchase receives stock", func(t *testing.T) {
		txn := domain.Transaction{Type: domain.Purchase, Items: items}
		deltas := txn.StockDeltas()
		assert.Equal(t, map[string]int64{"p1": 4, "p2": 2}, deltas)
	})

	t.Run("reversal nets to zero", func(t *testing.T) {
		txn := domain.Transaction{Type: domain.Sale, Items: items}
		forward := txn.StockDeltas()
		reversal := txn.ReversalDeltas()
		for id, qty := range forward {
			assert.Equal(t, int64(0), qty+reversal[id], "product %s", id)
		}
	})
}

func TestTransaction_ApplyPayment(t *testing.T) {
	newTxn := func() *domain.Transaction {
		return &domain.Transaction{
			TransactionID:   "txn-1",
			Type:            domain.Sale,
			Total:           decimal.NewFromInt(100),
			TotalPaid:       decimal.Zero,
			RemainingAmount: decimal.NewFromInt(100),
			Status:          domain.Pending,
		}
	}
	payment := func(amount int64, date time.Time) domain.PaymentRecord {
		return domain.PaymentRecord{
			PaymentID:     "pay-" + date.Format("0102"),
			TransactionID: "txn-1",
			Amount:        decimal.NewFromInt(amount),
			PaymentDate:   date,
		}
	}
	day1 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("partial payment", func(t *testing.T) {
		txn := newTxn()
		require.NoError(t, txn.ApplyPayment(payment(40, day1), ""))

		assert.Equal(t, domain.PartiallyPaid, txn.Status)
		assert.True(t, txn.TotalPaid.Equal(decimal.NewFromInt(40)))
		assert.True(t, txn.RemainingAmount.Equal(decimal.NewFromInt(60)))
		require.NotNil(t, txn.FirstPaymentDate)
		assert.Equal(t, day1, *txn.FirstPaymentDate)
		assert.Nil(t, txn.FinalPaymentDate)
	})

	t.Run("settling payment records final date and bank", func(t *testing.T) {
		txn := newTxn()
		require.NoError(t, txn.ApplyPayment(payment(40, day1), ""))
		require.NoError(t, txn.ApplyPayment(payment(60, day2), "BANK-A"))

		assert.Equal(t, domain.Paid, txn.Status)
		assert.True(t, txn.RemainingAmount.IsZero())
		require.NotNil(t, txn.FinalPaymentDate)
		assert.Equal(t, day2, *txn.FinalPaymentDate)
		assert.Equal(t, "BANK-A", txn.Bank)
	})

	t.Run("first payment date written exactly once", func(t *testing.T) {
		txn := newTxn()
		require.NoError(t, txn.ApplyPayment(payment(40, day1), ""))
		require.NoError(t, txn.ApplyPayment(payment(20, day2), ""))

		require.NotNil(t, txn.FirstPaymentDate)
		assert.Equal(t, day1, *txn.FirstPaymentDate)
	})

	t.Run("paid plus remaining always equals total", func(t *testing.T) {
		txn := newTxn()
		require.NoError(t, txn.ApplyPayment(payment(33, day1), ""))
		assert.True(t, txn.TotalPaid.Add(txn.RemainingAmount).Equal(txn.Total))

		require.NoError(t, txn.ApplyPayment(payment(67, day2), ""))
		assert.True(t, txn.TotalPaid.Add(txn.RemainingAmount).Equal(txn.Total))
	})

	t.Run("rejects excess payment", func(t *testing.T) {
		txn := newTxn()
		err := txn.ApplyPayment(payment(150, day1), "")
		assert.ErrorIs(t, err, domain.ErrExcessPayment)
		assert.Equal(t, domain.Pending, txn.Status)
		assert.Empty(t, txn.Payments)
	})

	t.Run("rejects payment on settled transaction", func(t *testing.T) {
		txn := newTxn()
		require.NoError(t, txn.ApplyPayment(payment(100, day1), ""))

		err := txn.ApplyPayment(payment(1, day2), "")
		assert.ErrorIs(t, err, domain.ErrAlreadySettled)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		txn := newTxn()
		err := txn.ApplyPayment(payment(0, day1), "")
		assert.ErrorIs(t, err, domain.ErrNonPositiveValue)

		err = txn.ApplyPayment(payment(-5, day1), "")
		assert.ErrorIs(t, err, domain.ErrNonPositiveValue)
	})

	t.Run("bank ignored before settlement", func(t *testing.T) {
		txn := newTxn()
		require.NoError(t, txn.ApplyPayment(payment(10, day1), "BANK-B"))
		assert.Empty(t, txn.Bank)
	})
}

func TestTransaction_Validate(t *testing.T) {
	valid := func() domain.Transaction {
		return domain.Transaction{
			Type: domain.Sale,
			Items: []domain.LineItem{
				{ProductID: "p1", Quantity: 2, UnitPrice: decimal.NewFromInt(10)},
			},
			Total:           decimal.NewFromInt(20),
			TotalPaid:       decimal.Zero,
			RemainingAmount: decimal.NewFromInt(20),
		}
	}

	t.Run("valid transaction", func(t *testing.T) {
		txn := valid()
		assert.NoError(t, txn.Validate())
	})

	t.Run("unknown type", func(t *testing.T) {
		txn := valid()
		txn.Type = "REFUND"
		assert.Error(t, txn.Validate())
	})

	t.Run("no line items", func(t *testing.T) {
		txn := valid()
		txn.Items = nil
		assert.Error(t, txn.Validate())
	})

	t.Run("zero quantity", func(t *testing.T) {
		txn := valid()
		txn.Items[0].Quantity = 0
		assert.ErrorIs(t, txn.Validate(), domain.ErrNonPositiveValue)
	})

	t.Run("negative unit price", func(t *testing.T) {
		txn := valid()
		txn.Items[0].UnitPrice = decimal.NewFromInt(-1)
		assert.ErrorIs(t, txn.Validate(), domain.ErrNonPositiveValue)
	})

	t.Run("arithmetic mismatch", func(t *testing.T) {
		txn := valid()
		txn.RemainingAmount = decimal.NewFromInt(15)
		assert.Error(t, txn.Validate())
	})
}
