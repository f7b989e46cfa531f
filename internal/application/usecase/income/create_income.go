// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/application/ledger"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Description string
	Amount      decimal.Decimal
	AccountID   uuid.UUID
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.IncomeDetails
}

// CreateIncomeUseCase records an income and deposits it into its account.
type CreateIncomeUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	var (
		details *entity.IncomeDetails
		event   *entity.LedgerEvent
	)
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		session := ledger.NewSession(repos)

		account, err := session.Account(ctx, input.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, input.AccountID)
		}

		income := entity.NewIncome(input.Description, input.Amount, account.ID)
		account.Deposit(income.Amount)

		if err := repos.Incomes.Create(ctx, income); err != nil {
			return fmt.Errorf("failed to create income: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		details = &entity.IncomeDetails{Income: income, Account: account}
		event = entity.NewLedgerEvent(entity.LedgerEventIncomeCreated, income.ID, income.Amount, session.AccountIDs(), nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ledger.Publish(ctx, uc.publisher, event)

	return &CreateIncomeOutput{Income: details}, nil
}

// validateAmount requires a strictly positive income amount.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, []domainerror.Detail{
			{Key: "amount", Value: "must be greater than 0"},
		})
	}
	return nil
}
