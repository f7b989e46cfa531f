// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Description  string          `gorm:"type:varchar(255);not null"`
	ExpenseMonth int             `gorm:"not null"`
	ExpenseYear  int             `gorm:"not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CategoryID   *uuid.UUID      `gorm:"type:uuid;index"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload)
	Account  *AccountModel  `gorm:"foreignKey:AccountID;references:ID"`
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:           m.ID,
		Description:  m.Description,
		ExpenseMonth: m.ExpenseMonth,
		ExpenseYear:  m.ExpenseYear,
		Amount:       m.Amount,
		CategoryID:   m.CategoryID,
		AccountID:    m.AccountID,
		Date:         m.Date,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToDetails converts an ExpenseModel with its preloaded references.
func (m *ExpenseModel) ToDetails() *entity.ExpenseDetails {
	details := &entity.ExpenseDetails{Expense: m.ToEntity()}
	if m.Account != nil {
		details.Account = m.Account.ToEntity()
	}
	if m.Category != nil {
		details.Category = m.Category.ToEntity()
	}
	return details
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:           expense.ID,
		Description:  expense.Description,
		ExpenseMonth: expense.ExpenseMonth,
		ExpenseYear:  expense.ExpenseYear,
		Amount:       expense.Amount,
		CategoryID:   expense.CategoryID,
		AccountID:    expense.AccountID,
		Date:         expense.Date,
		CreatedAt:    expense.CreatedAt,
		UpdatedAt:    expense.UpdatedAt,
	}
}
