// Package ledger keeps ledger entities consistent while a movement is applied.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// Session is an identity map over the accounts and budgets loaded during one
// unit of work. Loading the same row twice yields the same pointer, so a
// withdraw and a deposit on one account both land before Flush writes it.
type Session struct {
	repos adapter.Repositories

	accounts     map[uuid.UUID]*entity.Account
	accountOrder []uuid.UUID

	budgets     map[uuid.UUID]*entity.Budget
	budgetOrder []uuid.UUID
}

// NewSession creates a session over repositories bound to a transaction.
func NewSession(repos adapter.Repositories) *Session {
	return &Session{
		repos:    repos,
		accounts: make(map[uuid.UUID]*entity.Account),
		budgets:  make(map[uuid.UUID]*entity.Budget),
	}
}

// Account returns the account with the given id, loading it on first use.
// A missing account yields domainerror.ErrAccountNotFound.
func (s *Session) Account(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	if account, ok := s.accounts[id]; ok {
		return account, nil
	}

	account, err := s.repos.Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.accounts[id] = account
	s.accountOrder = append(s.accountOrder, id)
	return account, nil
}

// BudgetFor returns the budget covering period, or nil when there is none.
func (s *Session) BudgetFor(ctx context.Context, period entity.Period) (*entity.Budget, error) {
	for _, id := range s.budgetOrder {
		if budget := s.budgets[id]; budget.Matches(period.CategoryID, period.Month, period.Year) {
			return budget, nil
		}
	}

	budget, err := s.repos.Budgets.FindByCategoryMonthYear(ctx, period.CategoryID, period.Month, period.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	if budget == nil {
		return nil, nil
	}

	s.budgets[budget.ID] = budget
	s.budgetOrder = append(s.budgetOrder, budget.ID)
	return budget, nil
}

// Flush writes every loaded account and budget back, once each, in load order.
func (s *Session) Flush(ctx context.Context) error {
	for _, id := range s.accountOrder {
		if err := s.repos.Accounts.Update(ctx, s.accounts[id]); err != nil {
			return fmt.Errorf("failed to update account %s: %w", id, err)
		}
	}
	for _, id := range s.budgetOrder {
		if err := s.repos.Budgets.Update(ctx, s.budgets[id]); err != nil {
			return fmt.Errorf("failed to update budget %s: %w", id, err)
		}
	}
	return nil
}

// AccountIDs returns the ids of the accounts touched so far.
func (s *Session) AccountIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), s.accountOrder...)
}

// BudgetIDs returns the ids of the budgets touched so far.
func (s *Session) BudgetIDs() []uuid.UUID {
	return append([]uuid.UUID(nil), s.budgetOrder...)
}

// LookupError turns a repository error into the domain not-found error for
// sentinel, or wraps it as an infrastructure failure.
func LookupError(err, sentinel error, id uuid.UUID) error {
	if errors.Is(err, sentinel) {
		return domainerror.NewEntityNotFoundError(sentinel, id)
	}
	return fmt.Errorf("failed to load %s: %w", id, err)
}
