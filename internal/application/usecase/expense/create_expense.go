package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/application/ledger"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Description  string
	ExpenseMonth int
	ExpenseYear  int
	Amount       decimal.Decimal
	CategoryID   *uuid.UUID // Optional
	AccountID    uuid.UUID
	Date         time.Time
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.ExpenseDetails
}

// CreateExpenseUseCase records an expense, withdrawing it from its account
// and charging the budget for its category and date.
type CreateExpenseUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.ExpenseMonth, input.ExpenseYear, input.Amount); err != nil {
		return nil, err
	}

	var (
		details *entity.ExpenseDetails
		event   *entity.LedgerEvent
	)
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		session := ledger.NewSession(repos)

		category, err := resolveCategory(ctx, repos, input.CategoryID)
		if err != nil {
			return err
		}

		account, err := session.Account(ctx, input.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, input.AccountID)
		}

		expense := entity.NewExpense(
			input.Description,
			input.ExpenseMonth,
			input.ExpenseYear,
			input.Amount,
			categoryIDOf(category),
			account.ID,
			input.Date,
		)

		// Budgets are keyed by the date, not by the stored month and year.
		if period, ok := expense.DatePeriod(); ok {
			if err := chargeBudget(ctx, session, period, expense.Amount); err != nil {
				return err
			}
		}
		account.Withdraw(expense.Amount)

		if err := repos.Expenses.Create(ctx, expense); err != nil {
			return fmt.Errorf("failed to create expense: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		details = &entity.ExpenseDetails{Expense: expense, Account: account, Category: category}
		event = entity.NewLedgerEvent(entity.LedgerEventExpenseCreated, expense.ID, expense.Amount, session.AccountIDs(), session.BudgetIDs())
		return nil
	})
	if err != nil {
		return nil, err
	}

	ledger.Publish(ctx, uc.publisher, event)

	return &CreateExpenseOutput{Expense: details}, nil
}
