package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID uuid.UUID
}

// DeleteAccountUseCase handles account deletion logic.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{accountRepo: accountRepo}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	if _, err := uc.accountRepo.FindByID(ctx, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return domainerror.NewEntityNotFoundError(domainerror.ErrAccountNotFound, input.AccountID)
		}
		return fmt.Errorf("failed to find account: %w", err)
	}

	if err := uc.accountRepo.Delete(ctx, input.AccountID); err != nil {
		if errors.Is(err, domainerror.ErrEntityInUse) {
			return domainerror.NewEntityInUseError(domainerror.ErrAccountNotFound, input.AccountID)
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
