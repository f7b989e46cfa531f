package ledger

import (
	"context"
	"log/slog"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
)

// Publish sends a committed event. The movement is already durable, so a
// delivery failure is logged and dropped.
func Publish(ctx context.Context, publisher adapter.EventPublisher, event *entity.LedgerEvent) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish ledger event",
			"event_type", event.Type,
			"entity_id", event.EntityID,
			"error", err,
		)
	}
}
