// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	Name                 string
	FinancialInstitution string // Optional, defaults to NONE
	Type                 entity.AccountType
	InitialBalance       decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
	seed        entity.BalanceSeed
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository, seed entity.BalanceSeed) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
		seed:        seed,
	}
}

// Execute performs the account creation.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, []domainerror.Detail{
			{Key: "type", Value: "must be one of BANK_ACCOUNT, BENEFIT_ACCOUNT, CREDIT_CARD, INVESTMENT_ACCOUNT, CASH"},
		})
	}

	account := entity.NewAccount(
		input.Name,
		input.FinancialInstitution,
		input.Type,
		input.InitialBalance,
		uc.seed,
	)

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{
		Account: account,
	}, nil
}
