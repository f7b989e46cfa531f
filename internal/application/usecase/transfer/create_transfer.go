// Package transfer contains transfer-related use cases.
package transfer

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

// CreateTransferInput represents the input for transfer creation.
type CreateTransferInput struct {
	Description   string
	Amount        decimal.Decimal
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
}

// CreateTransferOutput represents the output of transfer creation.
type CreateTransferOutput struct {
	Transfer *entity.TransferDetails
}

// CreateTransferUseCase moves money between two accounts.
type CreateTransferUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewCreateTransferUseCase creates a new CreateTransferUseCase instance.
func NewCreateTransferUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *CreateTransferUseCase {
	return &CreateTransferUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the transfer. A transfer to the same account nets to zero.
func (uc *CreateTransferUseCase) Execute(ctx context.Context, input CreateTransferInput) (*CreateTransferOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, []domainerror.Detail{
			{Key: "amount", Value: "must be greater than or equal to 0"},
		})
	}

	var (
		details *entity.TransferDetails
		event   *entity.LedgerEvent
	)
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		session := ledger.NewSession(repos)

		sender, err := session.Account(ctx, input.FromAccountID)
		if err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return domainerror.NewSenderAccountNotFoundError(input.FromAccountID)
			}
			return fmt.Errorf("failed to find sender account: %w", err)
		}

		recipient, err := session.Account(ctx, input.ToAccountID)
		if err != nil {
			if errors.Is(err, domainerror.ErrAccountNotFound) {
				return domainerror.NewRecipientAccountNotFoundError(input.ToAccountID)
			}
			return fmt.Errorf("failed to find recipient account: %w", err)
		}

		transfer := entity.NewTransfer(input.Description, input.Amount, sender.ID, recipient.ID)
		sender.Withdraw(transfer.Amount)
		recipient.Deposit(transfer.Amount)

		if err := repos.Transfers.Create(ctx, transfer); err != nil {
			return fmt.Errorf("failed to create transfer: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		details = &entity.TransferDetails{Transfer: transfer, FromAccount: sender, ToAccount: recipient}
		event = entity.NewLedgerEvent(entity.LedgerEventTransferCreated, transfer.ID, transfer.Amount, session.AccountIDs(), nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	ledger.Publish(ctx, uc.publisher, event)

	return &CreateTransferOutput{Transfer: details}, nil
}
