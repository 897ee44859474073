package services

import (
	"context"

	"github.com/gestcom/gestcom_backend/internal/core/domain"
	"github.com/gestcom/gestcom_backend/internal/dto"
)

// ExpenseSvcFacade defines operations for managing expenses
type ExpenseSvcFacade interface {
	// CreateExpense registers a new expense.
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error)

	// GetExpenseByID retrieves an expense by ID.
	GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)

	// ListExpenses retrieves expenses matching the params.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error)

	// UpdateExpense updates an existing expense.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error)

	// DeleteExpense removes an expense.
	DeleteExpense(ctx context.Context, expenseID string) error
}
