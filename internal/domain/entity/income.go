// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Income is a movement that deposits into an account.
type Income struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	AccountID   uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewIncome creates a new Income entity.
func NewIncome(description string, amount decimal.Decimal, accountID uuid.UUID) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		AccountID:   accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Apply overwrites the description, amount and account of the income.
func (i *Income) Apply(description string, amount decimal.Decimal, accountID uuid.UUID) {
	i.Description = description
	i.Amount = amount
	i.AccountID = accountID
	i.UpdatedAt = time.Now().UTC()
}

// IncomeDetails pairs an income with its account.
type IncomeDetails struct {
	Income  *Income
	Account *Account
}
