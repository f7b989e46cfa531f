package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update.
type UpdateBudgetInput struct {
	BudgetID      uuid.UUID
	Month         int
	Year          int
	MonthlyBudget decimal.Decimal
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.BudgetDetails
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	uow adapter.UnitOfWork
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(uow adapter.UnitOfWork) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{uow: uow}
}

// Execute performs the budget update. The uniqueness gate only runs when the
// period moves; the category of a budget never changes.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	if err := validateBudgetFields(input.Month, input.Year, input.MonthlyBudget); err != nil {
		return nil, err
	}

	var details *entity.BudgetDetails
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		budget, err := repos.Budgets.FindByID(ctx, input.BudgetID)
		if err != nil {
			if errors.Is(err, domainerror.ErrBudgetNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrBudgetNotFound, input.BudgetID)
			}
			return fmt.Errorf("failed to find budget: %w", err)
		}

		category, err := repos.Categories.FindByID(ctx, budget.CategoryID)
		if err != nil {
			return fmt.Errorf("failed to find budget category: %w", err)
		}

		if budget.Month != input.Month || budget.Year != input.Year {
			count, err := repos.Budgets.CountByCategoryMonthYear(ctx, budget.CategoryID, input.Month, input.Year)
			if err != nil {
				return fmt.Errorf("failed to check budget existence: %w", err)
			}
			if count > 0 {
				return domainerror.NewBudgetAlreadyExistsError(category.Name, input.Month, input.Year)
			}
		}

		budget.Update(input.Month, input.Year, input.MonthlyBudget)
		if err := repos.Budgets.Update(ctx, budget); err != nil {
			return fmt.Errorf("failed to update budget: %w", err)
		}

		details = &entity.BudgetDetails{Budget: budget, Category: category}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{Budget: details}, nil
}
