// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a movement that withdraws from an account and, when a budget
// exists for its category and period, is charged against that budget.
type Expense struct {
	ID           uuid.UUID
	Description  string
	ExpenseMonth int
	ExpenseYear  int
	Amount       decimal.Decimal
	CategoryID   *uuid.UUID // Optional, uncategorized expenses skip budgets
	AccountID    uuid.UUID
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	description string,
	expenseMonth, expenseYear int,
	amount decimal.Decimal,
	categoryID *uuid.UUID,
	accountID uuid.UUID,
	date time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:           uuid.New(),
		Description:  description,
		ExpenseMonth: expenseMonth,
		ExpenseYear:  expenseYear,
		Amount:       amount,
		CategoryID:   categoryID,
		AccountID:    accountID,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// DatePeriod returns the attribution period derived from the expense date.
// The second result is false for uncategorized expenses.
func (e *Expense) DatePeriod() (Period, bool) {
	if e.CategoryID == nil {
		return Period{}, false
	}
	return PeriodOf(*e.CategoryID, e.Date), true
}

// StoredPeriod returns the attribution period from the stored month and year.
func (e *Expense) StoredPeriod() (Period, bool) {
	if e.CategoryID == nil {
		return Period{}, false
	}
	return Period{CategoryID: *e.CategoryID, Month: e.ExpenseMonth, Year: e.ExpenseYear}, true
}

// PeriodFrom returns the attribution period for the given source.
func (e *Expense) PeriodFrom(source PeriodSource) (Period, bool) {
	if source == PeriodSourceDate {
		return e.DatePeriod()
	}
	return e.StoredPeriod()
}

// BindCategory moves the expense to another category (nil for none).
func (e *Expense) BindCategory(categoryID *uuid.UUID) {
	e.CategoryID = categoryID
}

// BindAccount moves the expense to another account.
func (e *Expense) BindAccount(accountID uuid.UUID) {
	e.AccountID = accountID
}

// Apply overwrites the descriptive fields of the expense.
func (e *Expense) Apply(description string, expenseMonth, expenseYear int, amount decimal.Decimal, date time.Time) {
	e.Description = description
	e.ExpenseMonth = expenseMonth
	e.ExpenseYear = expenseYear
	e.Amount = amount
	e.Date = date
	e.UpdatedAt = time.Now().UTC()
}

// ExpenseDetails pairs an expense with the entities it references.
type ExpenseDetails struct {
	Expense  *Expense
	Account  *Account
	Category *Category // nil when uncategorized
}
