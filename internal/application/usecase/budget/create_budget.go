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

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	CategoryID    uuid.UUID
	Month         int
	Year          int
	MonthlyBudget decimal.Decimal
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.BudgetDetails
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	uow adapter.UnitOfWork
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(uow adapter.UnitOfWork) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{uow: uow}
}

// Execute performs the budget creation. At most one budget may exist per
// category, month and year.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateBudgetFields(input.Month, input.Year, input.MonthlyBudget); err != nil {
		return nil, err
	}

	var details *entity.BudgetDetails
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		category, err := repos.Categories.FindByID(ctx, input.CategoryID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrCategoryNotFound, input.CategoryID)
			}
			return fmt.Errorf("failed to find category: %w", err)
		}

		count, err := repos.Budgets.CountByCategoryMonthYear(ctx, category.ID, input.Month, input.Year)
		if err != nil {
			return fmt.Errorf("failed to check budget existence: %w", err)
		}
		if count > 0 {
			return domainerror.NewBudgetAlreadyExistsError(category.Name, input.Month, input.Year)
		}

		budget := entity.NewBudget(category.ID, input.Month, input.Year, input.MonthlyBudget)
		if err := repos.Budgets.Create(ctx, budget); err != nil {
			return fmt.Errorf("failed to create budget: %w", err)
		}

		details = &entity.BudgetDetails{Budget: budget, Category: category}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{Budget: details}, nil
}
