package repositories

import (
	"context"
	"time"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
)

// ExpenseFilter narrows expense listings.
type ExpenseFilter struct {
	Category *string
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}

// ExpenseRepositoryFacade defines persistence operations for expenses
type ExpenseRepositoryFacade interface {
	// SaveExpense persists a new expense.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// FindExpenseByID retrieves an expense by its unique identifier.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the filter, newest date first.
	ListExpenses(ctx context.Context, filter ExpenseFilter) ([]domain.Expense, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}
