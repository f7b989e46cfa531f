// Package usecasetest wires use cases to a throwaway sqlite ledger for tests.
package usecasetest

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	"github.com/e-budget/backend/internal/integration/persistence"
	"github.com/e-budget/backend/internal/integration/persistence/persistencetest"
)

// RecordingPublisher keeps every published event in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []*entity.LedgerEvent
	Err    error
}

// Publish records the event and returns Err.
func (p *RecordingPublisher) Publish(_ context.Context, event *entity.LedgerEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.Err
}

// Close is a no-op.
func (p *RecordingPublisher) Close() error { return nil }

// Events returns a copy of the recorded events.
func (p *RecordingPublisher) Events() []*entity.LedgerEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*entity.LedgerEvent(nil), p.events...)
}

// Ledger is a migrated database with repositories and a unit of work.
type Ledger struct {
	DB        *gorm.DB
	Repos     adapter.Repositories
	UOW       adapter.UnitOfWork
	Publisher *RecordingPublisher
}

// New opens an empty ledger for the test.
func New(t *testing.T) *Ledger {
	t.Helper()

	db := persistencetest.Open(t)
	return &Ledger{
		DB:        db,
		Repos:     persistence.NewRepositories(db),
		UOW:       persistence.NewUnitOfWork(db),
		Publisher: &RecordingPublisher{},
	}
}

// Dec parses a decimal literal.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Account stores a bank account whose balance starts at balance.
func (l *Ledger) Account(t *testing.T, name, balance string) *entity.Account {
	t.Helper()

	account := entity.NewAccount(name, "", entity.AccountTypeBank, Dec(balance), entity.BalanceSeedInitial)
	if err := l.Repos.Accounts.Create(context.Background(), account); err != nil {
		t.Fatalf("failed to create account: %v", err)
	}
	return account
}

// Category stores a category.
func (l *Ledger) Category(t *testing.T, name string) *entity.Category {
	t.Helper()

	category := entity.NewCategory(name)
	if err := l.Repos.Categories.Create(context.Background(), category); err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	return category
}

// Budget stores a budget with nothing used.
func (l *Ledger) Budget(t *testing.T, categoryID uuid.UUID, month, year int, target string) *entity.Budget {
	t.Helper()

	budget := entity.NewBudget(categoryID, month, year, Dec(target))
	if err := l.Repos.Budgets.Create(context.Background(), budget); err != nil {
		t.Fatalf("failed to create budget: %v", err)
	}
	return budget
}

// Balance reloads an account and returns its balance.
func (l *Ledger) Balance(t *testing.T, id uuid.UUID) decimal.Decimal {
	t.Helper()

	account, err := l.Repos.Accounts.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload account %s: %v", id, err)
	}
	return account.Balance
}

// ReloadBudget reloads a budget by id.
func (l *Ledger) ReloadBudget(t *testing.T, id uuid.UUID) *entity.Budget {
	t.Helper()

	budget, err := l.Repos.Budgets.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("failed to reload budget %s: %v", id, err)
	}
	return budget
}

// AssertBalance fails the test when the account balance differs from want.
func (l *Ledger) AssertBalance(t *testing.T, id uuid.UUID, want string) {
	t.Helper()

	if got := l.Balance(t, id); !got.Equal(Dec(want)) {
		t.Errorf("expected account %s balance %s, got %s", id, want, got)
	}
}

// AssertBudget fails the test when the budget usage differs from want.
func (l *Ledger) AssertBudget(t *testing.T, id uuid.UUID, used, balance, percentage string) {
	t.Helper()

	budget := l.ReloadBudget(t, id)
	if !budget.MonthlyBudgetUsed.Equal(Dec(used)) {
		t.Errorf("expected budget used %s, got %s", used, budget.MonthlyBudgetUsed)
	}
	if !budget.MonthlyBudgetBalance.Equal(Dec(balance)) {
		t.Errorf("expected budget balance %s, got %s", balance, budget.MonthlyBudgetBalance)
	}
	if !budget.MonthlyBudgetUsedPercentage.Equal(Dec(percentage)) {
		t.Errorf("expected budget percentage %s, got %s", percentage, budget.MonthlyBudgetUsedPercentage)
	}
}
