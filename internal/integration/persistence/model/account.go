// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/domain/entity"
)

// AccountModel represents the accounts table in the database.
type AccountModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name                 string          `gorm:"type:varchar(100);not null"`
	FinancialInstitution string          `gorm:"type:varchar(50);not null;default:'NONE'"`
	Type                 string          `gorm:"type:varchar(30);not null"`
	InitialBalance       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Balance              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt            time.Time       `gorm:"not null"`
	UpdatedAt            time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AccountModel.
func (AccountModel) TableName() string {
	return "accounts"
}

// ToEntity converts an AccountModel to a domain Account entity.
func (m *AccountModel) ToEntity() *entity.Account {
	return &entity.Account{
		ID:                   m.ID,
		Name:                 m.Name,
		FinancialInstitution: m.FinancialInstitution,
		Type:                 entity.AccountType(m.Type),
		InitialBalance:       m.InitialBalance,
		Balance:              m.Balance,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// AccountFromEntity creates an AccountModel from a domain Account entity.
func AccountFromEntity(account *entity.Account) *AccountModel {
	return &AccountModel{
		ID:                   account.ID,
		Name:                 account.Name,
		FinancialInstitution: account.FinancialInstitution,
		Type:                 string(account.Type),
		InitialBalance:       account.InitialBalance,
		Balance:              account.Balance,
		CreatedAt:            account.CreatedAt,
		UpdatedAt:            account.UpdatedAt,
	}
}
