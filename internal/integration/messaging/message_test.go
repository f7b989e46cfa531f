package messaging

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/domain/entity"
)

func TestNewLedgerEventMessage(t *testing.T) {
	entityID := uuid.New()
	accountID := uuid.New()
	budgetID := uuid.New()
	event := entity.NewLedgerEvent(
		entity.LedgerEventExpenseCreated,
		entityID,
		decimal.RequireFromString("30"),
		[]uuid.UUID{accountID},
		[]uuid.UUID{budgetID},
	)

	msg := NewLedgerEventMessage(event)

	if msg.Type != "expense.created" {
		t.Errorf("Type = %q, want expense.created", msg.Type)
	}
	if msg.RoutingKey() != "expense.created" {
		t.Errorf("RoutingKey() = %q, want expense.created", msg.RoutingKey())
	}
	if msg.Amount != "30.00" {
		t.Errorf("Amount = %q, want 30.00", msg.Amount)
	}
	if msg.EntityID != entityID.String() {
		t.Errorf("EntityID = %q, want %q", msg.EntityID, entityID)
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"id", "type", "entity_id", "amount", "account_ids", "budget_ids", "occurred_at"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("JSON body missing %q", key)
		}
	}
	if ids := decoded["budget_ids"].([]any); len(ids) != 1 || ids[0] != budgetID.String() {
		t.Errorf("budget_ids = %v, want [%s]", ids, budgetID)
	}
}

func TestNewLedgerEventMessageEmptyIDLists(t *testing.T) {
	event := entity.NewLedgerEvent(entity.LedgerEventIncomeDeleted, uuid.New(), decimal.NewFromInt(5), nil, nil)

	body, err := NewLedgerEventMessage(event).ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded struct {
		BudgetIDs []string `json:"budget_ids"`
	}
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.BudgetIDs == nil {
		t.Error("budget_ids should encode as an empty array, not null")
	}
}
