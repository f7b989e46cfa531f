package income

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

// DeleteIncomeInput represents the input for income deletion.
type DeleteIncomeInput struct {
	IncomeID uuid.UUID
}

// DeleteIncomeUseCase removes an income and withdraws its amount back out.
type DeleteIncomeUseCase struct {
	uow       adapter.UnitOfWork
	publisher adapter.EventPublisher
}

// NewDeleteIncomeUseCase creates a new DeleteIncomeUseCase instance.
func NewDeleteIncomeUseCase(uow adapter.UnitOfWork, publisher adapter.EventPublisher) *DeleteIncomeUseCase {
	return &DeleteIncomeUseCase{
		uow:       uow,
		publisher: publisher,
	}
}

// Execute performs the income deletion.
func (uc *DeleteIncomeUseCase) Execute(ctx context.Context, input DeleteIncomeInput) error {
	var event *entity.LedgerEvent
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		income, err := repos.Incomes.FindByID(ctx, input.IncomeID)
		if err != nil {
			if errors.Is(err, domainerror.ErrIncomeNotFound) {
				return domainerror.NewEntityNotFoundError(domainerror.ErrIncomeNotFound, input.IncomeID)
			}
			return fmt.Errorf("failed to find income: %w", err)
		}

		session := ledger.NewSession(repos)

		account, err := session.Account(ctx, income.AccountID)
		if err != nil {
			return ledger.LookupError(err, domainerror.ErrAccountNotFound, income.AccountID)
		}
		account.Withdraw(income.Amount)

		if err := repos.Incomes.Delete(ctx, income.ID); err != nil {
			return fmt.Errorf("failed to delete income: %w", err)
		}
		if err := session.Flush(ctx); err != nil {
			return err
		}

		event = entity.NewLedgerEvent(entity.LedgerEventIncomeDeleted, income.ID, income.Amount, session.AccountIDs(), nil)
		return nil
	})
	if err != nil {
		return err
	}

	ledger.Publish(ctx, uc.publisher, event)
	return nil
}
