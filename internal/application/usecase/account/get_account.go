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

// GetAccountInput represents the input for fetching one account.
type GetAccountInput struct {
	AccountID uuid.UUID
}

// GetAccountOutput represents the output of fetching one account.
type GetAccountOutput struct {
	Account *entity.Account
}

// GetAccountUseCase handles single account lookup.
type GetAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(accountRepo adapter.AccountRepository) *GetAccountUseCase {
	return &GetAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account lookup.
func (uc *GetAccountUseCase) Execute(ctx context.Context, input GetAccountInput) (*GetAccountOutput, error) {
	account, err := uc.accountRepo.FindByID(ctx, input.AccountID)
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrAccountNotFound, input.AccountID)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	return &GetAccountOutput{Account: account}, nil
}
