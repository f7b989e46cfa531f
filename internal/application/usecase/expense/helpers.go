// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/application/ledger"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// validateExpenseFields rejects negative amounts and impossible periods.
func validateExpenseFields(month, year int, amount decimal.Decimal) error {
	var violations []domainerror.Detail

	if month < 1 || month > 12 {
		violations = append(violations, domainerror.Detail{Key: "expense_month", Value: "must be between 1 and 12"})
	}
	if year <= 0 {
		violations = append(violations, domainerror.Detail{Key: "expense_year", Value: "must be greater than 0"})
	}
	if amount.IsNegative() {
		violations = append(violations, domainerror.Detail{Key: "amount", Value: "must be greater than or equal to 0"})
	}

	if len(violations) > 0 {
		return domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, violations)
	}
	return nil
}

// resolveCategory looks up an optional category. An absent id or an id that
// matches no category both yield nil, and the expense stays uncategorized.
func resolveCategory(ctx context.Context, repos adapter.Repositories, id *uuid.UUID) (*entity.Category, error) {
	if id == nil {
		return nil, nil
	}

	category, err := repos.Categories.FindByID(ctx, *id)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

// chargeBudget charges amount against the budget covering period, if any.
func chargeBudget(ctx context.Context, session *ledger.Session, period entity.Period, amount decimal.Decimal) error {
	budget, err := session.BudgetFor(ctx, period)
	if err != nil {
		return err
	}
	if budget != nil {
		budget.Subtract(amount)
	}
	return nil
}

// releaseBudget gives amount back to the budget covering period, if any.
func releaseBudget(ctx context.Context, session *ledger.Session, period entity.Period, amount decimal.Decimal) error {
	budget, err := session.BudgetFor(ctx, period)
	if err != nil {
		return err
	}
	if budget != nil {
		budget.Add(amount)
	}
	return nil
}

func categoryIDOf(category *entity.Category) *uuid.UUID {
	if category == nil {
		return nil
	}
	id := category.ID
	return &id
}
