package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// GetBudgetInput represents the input for fetching one budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
}

// GetBudgetOutput represents the output of fetching one budget.
type GetBudgetOutput struct {
	Budget *entity.BudgetDetails
}

// GetBudgetUseCase handles single budget lookup.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{budgetRepo: budgetRepo}
}

// Execute performs the budget lookup.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	details, err := uc.budgetRepo.FindDetailsByID(ctx, input.BudgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrBudgetNotFound, input.BudgetID)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	return &GetBudgetOutput{Budget: details}, nil
}
