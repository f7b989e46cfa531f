package expense

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/application/ledger"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	ExpenseID    uuid.UUID
	Description  string
	ExpenseMonth int
	ExpenseYear  int
	Amount       decimal.Decimal
	CategoryID   *uuid.UUID // Optional, nil leaves the expense uncategorized
	AccountID    uuid.UUID
	Date         time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.ExpenseDetails
}

// UpdateExpenseUseCase reverses an expense's old effects and applies the new ones.
type UpdateExpenseUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.ExpenseMonth, input.ExpenseYear, input.Amount); err != nil {
		return nil, err
	}

	var (
		details *entity.ExpenseDetails
		event   *entity.LedgerEvent
	)
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		expense, err := repos.Expenses.FindByID(ctx, input.ExpenseID)
		if err != nil {
			if errors.Is(err, domainerror.ErrExpenseNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrExpenseNotFound, input.ExpenseID)
			}
			return fmt.Errorf("failed to find expense: %w", err)
		}

		session := ledger.NewSession(repos)

		// Budget side: release the old attribution, charge the new one.
		if period, ok := expense.DatePeriod(); ok {
			if err := releaseBudget(ctx, session, period, expense.Amount); err != nil {
				return err
			}
		}

		category, err := resolveCategory(ctx, repos, input.CategoryID)
		if err != nil {
			return err
		}
		if category != nil {
			if err := chargeBudget(ctx, session, entity.PeriodOf(category.ID, input.Date), input.Amount); err != nil {
				return err
			}
		}
		expense.BindCategory(categoryIDOf(category))

		// Account side: refund the old account, withdraw from the new one.
		oldAccount, err := session.Account(ctx, expense.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, expense.AccountID)
		}
		oldAccount.Deposit(expense.Amount)

		account, err := session.Account(ctx, input.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, input.AccountID)
		}
		account.Withdraw(input.Amount)
		expense.BindAccount(account.ID)

		expense.Apply(input.Description, input.ExpenseMonth, input.ExpenseYear, input.Amount, input.Date)

		if err := repos.Expenses.Update(ctx, expense); err != nil {
			return fmt.Errorf("failed to update expense: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		details = &entity.ExpenseDetails{Expense: expense, Account: account, Category: category}
		event = entity.NewLedgerEvent(entity.LedgerEventExpenseUpdated, expense.ID, expense.Amount, session.AccountIDs(), session.BudgetIDs())
		return nil
	})
	if err != nil {
		return nil, err
	}

	ledger.Publish(ctx, uc.publisher, event)

	return &UpdateExpenseOutput{Expense: details}, nil
}
