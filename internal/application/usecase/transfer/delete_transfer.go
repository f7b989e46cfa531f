package transfer

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

// DeleteTransferInput represents the input for transfer deletion.
type DeleteTransferInput struct {
	TransferID uuid.UUID
}

// DeleteTransferUseCase removes a transfer and moves the money back.
type DeleteTransferUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewDeleteTransferUseCase creates a new DeleteTransferUseCase instance.
func NewDeleteTransferUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *DeleteTransferUseCase {
	return &DeleteTransferUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the transfer deletion.
func (uc *DeleteTransferUseCase) Execute(ctx context.Context, input DeleteTransferInput) error {
	var event *entity.LedgerEvent
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		transfer, err := repos.Transfers.FindByID(ctx, input.TransferID)
		if err != nil {
			if errors.Is(err, domainerror.ErrTransferNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrTransferNotFound, input.TransferID)
			}
			return fmt.Errorf("failed to find transfer: %w", err)
		}

		session := ledger.NewSession(repos)

		sender, err := session.Account(ctx, transfer.FromAccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, transfer.FromAccountID)
		}
		recipient, err := session.Account(ctx, transfer.ToAccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, transfer.ToAccountID)
		}

		recipient.Withdraw(transfer.Amount)
		sender.Deposit(transfer.Amount)

		if err := repos.Transfers.Delete(ctx, transfer.ID); err != nil {
			return fmt.Errorf("failed to delete transfer: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		event = entity.NewLedgerEvent(entity.LedgerEventTransferDeleted, transfer.ID, transfer.Amount, session.AccountIDs(), nil)
		return nil
	})
	if err != nil {
		return err
	}

	ledger.Publish(ctx, uc.publisher, event)
	return nil
}
