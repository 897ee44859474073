package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies business expenses for reporting.
type ExpenseCategory string

const (
	ExpenseRent      ExpenseCategory = "RENT"
	ExpenseSalaries  ExpenseCategory = "SALARIES"
	ExpenseUtilities ExpenseCategory = "UTILITIES"
	ExpenseTaxes     ExpenseCategory = "TAXES"
	ExpenseSupplies  ExpenseCategory = "SUPPLIES"
	ExpenseMisc      ExpenseCategory = "MISC"
)

// IsValid reports whether the category is one of the known values.
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseRent, ExpenseSalaries, ExpenseUtilities, ExpenseTaxes, ExpenseSupplies, ExpenseMisc:
		return true
	}
	return false
}

// Expense is a flat outgoing-cost record, independent of the purchase ledger.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Date         time.Time       `json:"date"`
	Category     ExpenseCategory `json:"category"`
	Observations string          `json:"observations"`
	AuditFields
}
