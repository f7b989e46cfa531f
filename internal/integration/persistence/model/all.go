// Package model defines database models for persistence layer.
package model

// All returns every model in dependency order, for AutoMigrate.
func All() []any {
	return []any{
		&AccountModel{},
		&CategoryModel{},
		&BudgetModel{},
		&ExpenseModel{},
		&IncomeModel{},
		&TransferModel{},
	}
}
