// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/e-budget/backend/internal/domain/entity"
)

// EventPublisher delivers committed ledger events to interested consumers.
type EventPublisher interface {
	// Publish sends the event. Callers treat failures as non-fatal.
	Publish(ctx context.Context, event *entity.LedgerEvent) error

	// Close releases the underlying connection.
	Close() error
}
