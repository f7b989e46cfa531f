// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/e-budget/backend/internal/application/adapter"
)

// unitOfWork implements adapter.UnitOfWork over gorm transactions.
type unitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork creates a new unit of work bound to db.
func NewUnitOfWork(db *gorm.DB) adapter.UnitOfWork {
	return &unitOfWork{
		db: db,
	}
}

// Do runs fn with repositories bound to a single transaction.
func (u *unitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos adapter.Repositories) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewRepositories(tx))
	})
}

// NewRepositories builds every repository over the same handle.
func NewRepositories(db *gorm.DB) adapter.Repositories {
	return adapter.Repositories{
		Accounts:   NewAccountRepository(db),
		Categories: NewCategoryRepository(db),
		Budgets:    NewBudgetRepository(db),
		Expenses:   NewExpenseRepository(db),
		Incomes:    NewIncomeRepository(db),
		Transfers:  NewTransferRepository(db),
	}
}
