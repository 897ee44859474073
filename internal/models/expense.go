package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a row of the expenses table.
type Expense struct {
	ExpenseID    string          `json:"expenseID" db:"expense_id"`
	Description  string          `json:"description" db:"description"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Date         time.Time       `json:"date" db:"expense_date"`
	Category     string          `json:"category" db:"category"`
	Observations string          `json:"observations" db:"observations"`
	AuditFields
}
