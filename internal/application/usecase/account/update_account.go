package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update.
// Balances are not editable here; they only move with movements.
type UpdateAccountInput struct {
	AccountID            uuid.UUID
	Name                 string
	FinancialInstitution string
	Type                 entity.AccountType
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account metadata updates.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, []domainerror.Detail{
			{Key: "type", Value: "must be one of BANK_ACCOUNT, BENEFIT_ACCOUNT, CREDIT_CARD, INVESTMENT_ACCOUNT, CASH"},
		})
	}

	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrAccountNotFound, input.AccountID)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	account.Rename(input.Name, input.FinancialInstitution, input.Type)

	if err := uc.accountRepo.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
