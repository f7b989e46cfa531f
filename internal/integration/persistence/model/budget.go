// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// (category_id, month, year) is unique.
type BudgetModel struct {
	ID                          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryID                  uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_period"`
	Month                       int             `gorm:"not null;uniqueIndex:idx_budgets_period"`
	Year                        int             `gorm:"not null;uniqueIndex:idx_budgets_period"`
	MonthlyBudget               decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyBudgetUsed           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	MonthlyBudgetUsedPercentage decimal.Decimal `gorm:"type:decimal(20,2);not null"`
	MonthlyBudgetBalance        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt                   time.Time       `gorm:"not null"`
	UpdatedAt                   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	return &entity.Budget{
		ID:                          m.ID,
		CategoryID:                  m.CategoryID,
		Month:                       m.Month,
		Year:                        m.Year,
		MonthlyBudget:               m.MonthlyBudget,
		MonthlyBudgetUsed:           m.MonthlyBudgetUsed,
		MonthlyBudgetUsedPercentage: m.MonthlyBudgetUsedPercentage,
		MonthlyBudgetBalance:        m.MonthlyBudgetBalance,
		CreatedAt:                   m.CreatedAt,
		UpdatedAt:                   m.UpdatedAt,
	}
}

// ToDetails converts a BudgetModel with its preloaded category.
func (m *BudgetModel) ToDetails() *entity.BudgetDetails {
	details := &entity.BudgetDetails{Budget: m.ToEntity()}
	if m.Category != nil {
		details.Category = m.Category.ToEntity()
	}
	return details
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	return &BudgetModel{
		ID:                          budget.ID,
		CategoryID:                  budget.CategoryID,
		Month:                       budget.Month,
		Year:                        budget.Year,
		MonthlyBudget:               budget.MonthlyBudget,
		MonthlyBudgetUsed:           budget.MonthlyBudgetUsed,
		MonthlyBudgetUsedPercentage: budget.MonthlyBudgetUsedPercentage,
		MonthlyBudgetBalance:        budget.MonthlyBudgetBalance,
		CreatedAt:                   budget.CreatedAt,
		UpdatedAt:                   budget.UpdatedAt,
	}
}
