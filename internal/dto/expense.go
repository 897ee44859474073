package dto

import (
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to register a new expense.
type CreateExpenseRequest struct {
	Description  string                 `json:"description" binding:"required"`
	Amount       decimal.Decimal        `json:"amount" binding:"required"`
	Date         time.Time              `json:"date" binding:"required"`
	Category     domain.ExpenseCategory `json:"category" binding:"required,oneof=RENT SALARIES UTILITIES TAXES SUPPLIES MISC"`
	Observations string                 `json:"observations"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	Description  *string                 `json:"description"`
	Amount       *decimal.Decimal        `json:"amount"`
	Date         *time.Time              `json:"date"`
	Category     *domain.ExpenseCategory `json:"category"`
	Observations *string                 `json:"observations"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID     string                 `json:"expenseID"`
	Description   string                 `json:"description"`
	Amount        decimal.Decimal        `json:"amount"`
	Date          time.Time              `json:"date"`
	Category      domain.ExpenseCategory `json:"category"`
	Observations  string                 `json:"observations"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit    int        `form:"limit,default=50"`
	Offset   int        `form:"offset,default=0"`
	Category *string    `form:"category"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

// ListExpensesResponse wraps the list of expenses.
type ListExpensesResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Description:   e.Description,
		Amount:        e.Amount,
		Date:          e.Date,
		Category:      e.Category,
		Observations:  e.Observations,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListExpensesResponse converts a slice of domain.Expense to ListExpensesResponse DTO
func ToListExpensesResponse(expenses []domain.Expense) ListExpensesResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return ListExpensesResponse{Expenses: res}
}
