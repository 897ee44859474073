package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes sales (goods sold to a client) from
// purchases (goods received from a supplier).
type TransactionType string

const (
	Sale     TransactionType = "SALE"
	Purchase TransactionType = "PURCHASE"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == Sale || t == Purchase
}

// PaymentStatus is the settlement state of a transaction.
type PaymentStatus string

const (
	Pending       PaymentStatus = "PENDING"
	PartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	Paid          PaymentStatus = "PAID"
)

var (
	ErrExcessPayment    = errors.New("payment amount exceeds remaining amount")
	ErrAlreadySettled   = errors.New("transaction is already fully paid")
	ErrNonPositiveValue = errors.New("amount must be positive")
)

// LineItem is a single product line within a transaction. ProductName and
// UnitPrice are snapshots taken at creation time; renaming or repricing the
// product later does not touch historical transactions.
type LineItem struct {
	ItemID      string          `json:"itemID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Subtotal returns quantity x unit price for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))
}

// PaymentRecord is one installment applied against a transaction.
// Records are append-only and owned by their parent transaction.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID"`
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   time.Time       `json:"paymentDate"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// Transaction is a sale or purchase tracked through the payment lifecycle.
// Sales reference a client, purchases a supplier; the structure is otherwise
// identical. CounterpartyName is a snapshot, deliberately never re-synced.
type Transaction struct {
	TransactionID    string          `json:"transactionID"`
	Type             TransactionType `json:"type"`
	SequenceNumber   int64           `json:"sequenceNumber"`
	CounterpartyID   string          `json:"counterpartyID"`
	CounterpartyName string          `json:"counterpartyName"`
	Date             time.Time       `json:"date"`
	Items            []LineItem      `json:"items"`
	Total            decimal.Decimal `json:"total"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount"`
	Status           PaymentStatus   `json:"status"`
	FirstPaymentDate *time.Time      `json:"firstPaymentDate,omitempty"`
	FinalPaymentDate *time.Time      `json:"finalPaymentDate,omitempty"`
	Bank             string          `json:"bank,omitempty"`
	Observations     string          `json:"observations,omitempty"`
	Payments         []PaymentRecord `json:"payments"`
	AuditFields
}

// DeriveStatus computes the payment status from the paid and total amounts.
// Priority: fully covered -> Paid, anything paid -> PartiallyPaid, else Pending.
func DeriveStatus(totalPaid, total decimal.Decimal) PaymentStatus {
	switch {
	case totalPaid.GreaterThanOrEqual(total):
		return Paid
	case totalPaid.GreaterThan(decimal.Zero):
		return PartiallyPaid
	default:
		return Pending
	}
}

// ComputeTotal sums quantity x unit price across all line items.
func (t *Transaction) ComputeTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// StockDeltas returns the signed per-product stock change this transaction
// causes on creation: purchases receive goods (+quantity), sales release
// them (-quantity). Quantities for the same product accumulate.
func (t *Transaction) StockDeltas() map[string]int64 {
	deltas := make(map[string]int64, len(t.Items))
	for _, item := range t.Items {
		if t.Type == Purchase {
			deltas[item.ProductID] += item.Quantity
		} else {
			deltas[item.ProductID] -= item.Quantity
		}
	}
	return deltas
}

// ReversalDeltas returns the stock changes that undo this transaction's
// creation effect. The two must net to zero for every product.
func (t *Transaction) ReversalDeltas() map[string]int64 {
	deltas := t.StockDeltas()
	for id, qty := range deltas {
		deltas[id] = -qty
	}
	return deltas
}

// ApplyPayment applies one installment to the transaction: appends the
// record, recomputes totals and status, and sets the payment milestones.
// FirstPaymentDate is written exactly once; FinalPaymentDate (and the bank,
// when supplied) only when the transaction becomes fully paid.
// The caller is responsible for making this a single atomic read-modify-write
// against storage.
func (t *Transaction) ApplyPayment(payment PaymentRecord, bank string) error {
	if t.Status == Paid {
		return ErrAlreadySettled
	}
	if payment.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: payment amount is %s", ErrNonPositiveValue, payment.Amount.String())
	}
	if payment.Amount.GreaterThan(t.RemainingAmount) {
		return fmt.Errorf("%w: amount %s, remaining %s", ErrExcessPayment, payment.Amount.String(), t.RemainingAmount.String())
	}

	t.Payments = append(t.Payments, payment)
	t.TotalPaid = t.TotalPaid.Add(payment.Amount)
	t.RemainingAmount = t.Total.Sub(t.TotalPaid)

	if t.FirstPaymentDate == nil {
		firstDate := payment.PaymentDate
		t.FirstPaymentDate = &firstDate
	}

	t.Status = DeriveStatus(t.TotalPaid, t.Total)
	if t.Status == Paid {
		finalDate := payment.PaymentDate
		t.FinalPaymentDate = &finalDate
		if bank != "" {
			t.Bank = bank
		}
	}
	return nil
}

// Validate checks the structural invariants of a transaction before persistence.
func (t *Transaction) Validate() error {
	if !t.Type.IsValid() {
		return fmt.Errorf("unknown transaction type %q", t.Type)
	}
	if len(t.Items) == 0 {
		return errors.New("transaction must have at least one line item")
	}
	for _, item := range t.Items {
		if item.ProductID == "" {
			return errors.New("line item product ID is required")
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity for product %s", ErrNonPositiveValue, item.ProductID)
		}
		if item.UnitPrice.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: unit price for product %s", ErrNonPositiveValue, item.ProductID)
		}
	}
	if !t.TotalPaid.Add(t.RemainingAmount).Equal(t.Total) {
		return fmt.Errorf("paid %s plus remaining %s does not equal total %s",
			t.TotalPaid.String(), t.RemainingAmount.String(), t.Total.String())
	}
	return nil
}
