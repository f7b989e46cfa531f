// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PercentageScale is the number of decimal places kept on the used percentage.
const PercentageScale = 2

var hundred = decimal.NewFromInt(100)

// Budget tracks how much of a monthly target has been spent for a category.
// Used, Balance and Percentage are recomputed together on every mutation.
type Budget struct {
	ID                          uuid.UUID
	CategoryID                  uuid.UUID
	Month                       int
	Year                        int
	MonthlyBudget               decimal.Decimal
	MonthlyBudgetUsed           decimal.Decimal
	MonthlyBudgetUsedPercentage decimal.Decimal
	MonthlyBudgetBalance        decimal.Decimal
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}

// NewBudget creates a new Budget with nothing used yet.
func NewBudget(categoryID uuid.UUID, month, year int, monthlyBudget decimal.Decimal) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:                          uuid.New(),
		CategoryID:                  categoryID,
		Month:                       month,
		Year:                        year,
		MonthlyBudget:               monthlyBudget,
		MonthlyBudgetUsed:           decimal.Zero,
		MonthlyBudgetUsedPercentage: decimal.Zero,
		MonthlyBudgetBalance:        monthlyBudget,
		CreatedAt:                   now,
		UpdatedAt:                   now,
	}
}

// Subtract charges amount against the budget.
func (b *Budget) Subtract(amount decimal.Decimal) {
	b.MonthlyBudgetBalance = b.MonthlyBudgetBalance.Sub(amount)
	b.MonthlyBudgetUsed = b.MonthlyBudgetUsed.Add(amount)
	b.MonthlyBudgetUsedPercentage = b.usedPercentage()
}

// Add releases amount previously charged against the budget.
func (b *Budget) Add(amount decimal.Decimal) {
	b.MonthlyBudgetBalance = b.MonthlyBudgetBalance.Add(amount)
	b.MonthlyBudgetUsed = b.MonthlyBudgetUsed.Sub(amount)
	b.MonthlyBudgetUsedPercentage = b.usedPercentage()
}

// Update replaces period and target. Used is kept as is: expenses already
// charged are not re-attributed to the new period.
func (b *Budget) Update(month, year int, monthlyBudget decimal.Decimal) {
	b.Month = month
	b.Year = year
	b.MonthlyBudget = monthlyBudget
	b.MonthlyBudgetBalance = monthlyBudget.Sub(b.MonthlyBudgetUsed)
	b.MonthlyBudgetUsedPercentage = b.usedPercentage()
	b.UpdatedAt = time.Now().UTC()
}

// Matches reports whether the budget covers the given period.
func (b *Budget) Matches(categoryID uuid.UUID, month, year int) bool {
	return b.CategoryID == categoryID && b.Month == month && b.Year == year
}

// usedPercentage computes used*100/target rounded half up. Not capped at 100.
func (b *Budget) usedPercentage() decimal.Decimal {
	if b.MonthlyBudget.IsZero() {
		return decimal.Zero
	}
	return b.MonthlyBudgetUsed.Mul(hundred).DivRound(b.MonthlyBudget, PercentageScale)
}

// BudgetDetails pairs a budget with its category.
type BudgetDetails struct {
	Budget   *Budget
	Category *Category
}
