package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// GetExpenseInput represents the input for fetching one expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
}

// GetExpenseOutput represents the output of fetching one expense.
type GetExpenseOutput struct {
	Expense *entity.ExpenseDetails
}

// GetExpenseUseCase handles single expense lookup.
type GetExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenseRepo adapter.ExpenseRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute performs the expense lookup.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	details, err := uc.expenseRepo.FindDetailsByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrExpenseNotFound, input.ExpenseID)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	return &GetExpenseOutput{Expense: details}, nil
}
