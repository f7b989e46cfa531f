package messaging

import (
	"context"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
)

// noopPublisher drops every event. Used when no broker is configured.
type noopPublisher struct{}

// NewNoopPublisher creates a publisher that discards events.
func NewNoopPublisher() adapter.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, *entity.LedgerEvent) error { return nil }

func (noopPublisher) Close() error { return nil }
