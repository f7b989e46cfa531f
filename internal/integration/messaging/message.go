// Package messaging publishes committed ledger events to a message broker.
package messaging

import (
	"encoding/json"
	"time"

	"github.com/e-budget/backend/internal/domain/entity"
)

// LedgerEventMessage is the JSON body of a published ledger event.
type LedgerEventMessage struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	Amount     string    `json:"amount"`
	AccountIDs []string  `json:"account_ids"`
	BudgetIDs  []string  `json:"budget_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewLedgerEventMessage converts a domain event into its wire form.
func NewLedgerEventMessage(event *entity.LedgerEvent) *LedgerEventMessage {
	msg := &LedgerEventMessage{
		ID:         event.ID.String(),
		Type:       string(event.Type),
		EntityID:   event.EntityID.String(),
		Amount:     event.Amount.StringFixed(2),
		AccountIDs: make([]string, 0, len(event.AccountIDs)),
		BudgetIDs:  make([]string, 0, len(event.BudgetIDs)),
		OccurredAt: event.OccurredAt,
	}
	for _, id := range event.AccountIDs {
		msg.AccountIDs = append(msg.AccountIDs, id.String())
	}
	for _, id := range event.BudgetIDs {
		msg.BudgetIDs = append(msg.BudgetIDs, id.String())
	}
	return msg
}

// ToJSON encodes the message.
func (m *LedgerEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RoutingKey is the routing key the event is published under.
func (m *LedgerEventMessage) RoutingKey() string {
	return m.Type
}
