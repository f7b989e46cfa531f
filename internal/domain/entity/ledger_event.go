// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerEventType names a committed movement operation.
type LedgerEventType string

const (
	LedgerEventExpenseCreated  LedgerEventType = "expense.created"
	LedgerEventExpenseUpdated  LedgerEventType = "expense.updated"
	LedgerEventExpenseDeleted  LedgerEventType = "expense.deleted"
	LedgerEventIncomeCreated   LedgerEventType = "income.created"
	LedgerEventIncomeUpdated   LedgerEventType = "income.updated"
	LedgerEventIncomeDeleted   LedgerEventType = "income.deleted"
	LedgerEventTransferCreated LedgerEventType = "transfer.created"
	LedgerEventTransferDeleted LedgerEventType = "transfer.deleted"
)

// LedgerEvent describes a movement after it has been committed, with the
// ledger entities it touched.
type LedgerEvent struct {
	ID         uuid.UUID
	Type       LedgerEventType
	EntityID   uuid.UUID
	Amount     decimal.Decimal
	AccountIDs []uuid.UUID
	BudgetIDs  []uuid.UUID
	OccurredAt time.Time
}

// NewLedgerEvent creates a new LedgerEvent.
func NewLedgerEvent(eventType LedgerEventType, entityID uuid.UUID, amount decimal.Decimal, accountIDs, budgetIDs []uuid.UUID) *LedgerEvent {
	return &LedgerEvent{
		ID:         uuid.New(),
		Type:       eventType,
		EntityID:   entityID,
		Amount:     amount,
		AccountIDs: accountIDs,
		BudgetIDs:  budgetIDs,
		OccurredAt: time.Now().UTC(),
	}
}
