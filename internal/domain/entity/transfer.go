// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer moves an amount from one account to another.
type Transfer struct {
	ID            uuid.UUID
	Description   string
	Amount        decimal.Decimal
	FromAccountID uuid.UUID
	ToAccountID   uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewTransfer creates a new Transfer entity.
func NewTransfer(description string, amount decimal.Decimal, fromAccountID, toAccountID uuid.UUID) *Transfer {
	now := time.Now().UTC()

	return &Transfer{
		ID:            uuid.New(),
		Description:   description,
		Amount:        amount,
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// TransferDetails pairs a transfer with both of its accounts.
type TransferDetails struct {
	Transfer    *Transfer
	FromAccount *Account
	ToAccount   *Account
}
