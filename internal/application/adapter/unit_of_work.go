// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Repositories bundles every repository bound to the same database handle.
type Repositories struct {
	Accounts   AccountRepository
	Categories CategoryRepository
	Budgets    BudgetRepository
	Expenses   ExpenseRepository
	Incomes    IncomeRepository
	Transfers  TransferRepository
}

// UnitOfWork runs a function inside one atomic transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
