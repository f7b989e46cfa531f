package income

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

// UpdateIncomeInput represents the input for income update.
type UpdateIncomeInput struct {
	IncomeID    uuid.UUID
	Description string
	Amount      decimal.Decimal
	AccountID   uuid.UUID
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.IncomeDetails
}

// UpdateIncomeUseCase reverses an income's old deposit and applies the new one.
type UpdateIncomeUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the income update. When the account is unchanged the
// session hands back the same account for both steps, so it nets to
// balance - old + new.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	var (
		details *entity.IncomeDetails
		event   *entity.LedgerEvent
	)
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		income, err := repos.Incomes.FindByID(ctx, input.IncomeID)
		if err != nil {
			if errors.Is(err, domainerror.ErrIncomeNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrIncomeNotFound, input.IncomeID)
			}
			return fmt.Errorf("failed to find income: %w", err)
		}

		session := ledger.NewSession(repos)

		oldAccount, err := session.Account(ctx, income.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, income.AccountID)
		}
		oldAccount.Withdraw(income.Amount)

		account, err := session.Account(ctx, input.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, input.AccountID)
		}
		account.Deposit(input.Amount)

		income.Apply(input.Description, input.Amount, account.ID)

		if err := repos.Incomes.Update(ctx, income); err != nil {
			return fmt.Errorf("failed to update income: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		details = &entity.IncomeDetails{Income: income, Account: account}
		event = entity.NewLedgerEvent(entity.LedgerEventIncomeUpdated, income.ID, income.Amount, session.AccountIDs(), nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ledger.Publish(ctx, uc.publisher, event)

	return &UpdateIncomeOutput{Income: details}, nil
}
