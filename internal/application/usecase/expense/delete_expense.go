package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/application/ledger"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
}

// DeleteExpenseUseCase removes an expense and fully reverses its effects.
type DeleteExpenseUseCase struct {
	uow          adapter.UnitOfWork
	publisher    adapter.EventPublisher
	periodSource entity.PeriodSource
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
// periodSource selects which fields locate the budget to release.
func NewDeleteExpenseUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher, periodSource entity.PeriodSource) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		uow:          uow,
		publisher:    publisher,
		periodSource: periodSource,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	var event *entity.LedgerEvent
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		expense, err := repos.Expenses.FindByID(ctx, input.ExpenseID)
		if err != nil {
			if errors.Is(err, domainerror.ErrExpenseNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrExpenseNotFound, input.ExpenseID)
			}
			return fmt.Errorf("failed to find expense: %w", err)
		}

		session := ledger.NewSession(repos)

		if period, ok := expense.PeriodFrom(uc.periodSource); ok {
			if err := releaseBudget(ctx, session, period, expense.Amount); err != nil {
				return err
			}
		}

		account, err := session.Account(ctx, expense.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, expense.AccountID)
		}
		account.Deposit(expense.Amount)

		if err := repos.Expenses.Delete(ctx, expense.ID); err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		event = entity.NewLedgerEvent(entity.LedgerEventExpenseDeleted, expense.ID, expense.Amount, session.AccountIDs(), session.BudgetIDs())
		return nil
	})
	if err != nil {
		return err
	}

	ledger.Publish(ctx, uc.publisher, event)
	return nil
}
