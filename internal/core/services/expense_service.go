package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gestcom/gestcom_backend/internal/apperrors"
	"github.com/gestcom/gestcom_backend/internal/core/domain"
	portsrepo "github.com/gestcom/gestcom_backend/internal/core/ports/repositories"
	portssvc "github.com/gestcom/gestcom_backend/internal/core/ports/services"
	"github.com/gestcom/gestcom_backend/internal/dto"
	"github.com/gestcom/gestcom_backend/internal/middleware"
)

// expenseService provides expense registry operations.
type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade) portssvc.ExpenseSvcFacade {
	return &expenseService{expenseRepo: expenseRepo}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

// CreateExpense registers a new expense.
func (s *expenseService) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest, creatorUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Category.IsValid() {
		return nil, fmt.Errorf("%w: invalid expense category %s", apperrors.ErrValidation, req.Category)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID:    uuid.NewString(),
		Description:  req.Description,
		Amount:       req.Amount,
		Date:         req.Date,
		Category:     req.Category,
		Observations: req.Observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense created", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

// GetExpenseByID retrieves an expense by ID.
func (s *expenseService) GetExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	return expense, nil
}

// ListExpenses retrieves expenses matching the params.
func (s *expenseService) ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.Expense, error) {
	filter := portsrepo.ExpenseFilter{
		Category: params.Category,
		From:     params.From,
		To:       params.To,
		Limit:    params.Limit,
		Offset:   params.Offset,
	}
	expenses, err := s.expenseRepo.ListExpenses(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// UpdateExpense updates an existing expense.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest, requestingUserID string) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}

	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: expense amount must be positive", apperrors.ErrValidation)
		}
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		expense.Date = *req.Date
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("%w: invalid expense category %s", apperrors.ErrValidation, *req.Category)
		}
		expense.Category = *req.Category
	}
	if req.Observations != nil {
		expense.Observations = *req.Observations
	}

	expense.LastUpdatedAt = time.Now().UTC()
	expense.LastUpdatedBy = requestingUserID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		logger.Error("Failed to update expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// DeleteExpense removes an expense.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	return nil
}
