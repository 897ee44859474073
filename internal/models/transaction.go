package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType for storage.
type TransactionType string

// PaymentStatus mirrors domain.PaymentStatus for storage.
type PaymentStatus string

// Transaction represents a row of the transactions table. Line items and
// payments live in child tables and are loaded separately.
type Transaction struct {
	TransactionID    string          `json:"transactionID" db:"transaction_id"`
	Type             TransactionType `json:"type" db:"transaction_type"`
	SequenceNumber   int64           `json:"sequenceNumber" db:"sequence_number"`
	CounterpartyID   string          `json:"counterpartyID" db:"counterparty_id"`
	CounterpartyName string          `json:"counterpartyName" db:"counterparty_name"`
	Date             time.Time       `json:"date" db:"transaction_date"`
	Total            decimal.Decimal `json:"total" db:"total"`
	TotalPaid        decimal.Decimal `json:"totalPaid" db:"total_paid"`
	RemainingAmount  decimal.Decimal `json:"remainingAmount" db:"remaining_amount"`
	Status           PaymentStatus   `json:"status" db:"status"`
	FirstPaymentDate *time.Time      `json:"firstPaymentDate" db:"first_payment_date"`
	FinalPaymentDate *time.Time      `json:"finalPaymentDate" db:"final_payment_date"`
	Bank             string          `json:"bank" db:"bank"`
	Observations     string          `json:"observations" db:"observations"`
	AuditFields
}

// LineItem represents a row of the transaction_items table.
type LineItem struct {
	ItemID        string          `json:"itemID" db:"item_id"`
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	ProductID     string          `json:"productID" db:"product_id"`
	ProductName   string          `json:"productName" db:"product_name"`
	Quantity      int64           `json:"quantity" db:"quantity"`
	UnitPrice     decimal.Decimal `json:"unitPrice" db:"unit_price"`
}

// PaymentRecord represents a row of the transaction_payments table.
type PaymentRecord struct {
	PaymentID     string          `json:"paymentID" db:"payment_id"`
	TransactionID string          `json:"transactionID" db:"transaction_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	PaymentDate   time.Time       `json:"paymentDate" db:"payment_date"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`
}
