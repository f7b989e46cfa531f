// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/domain/entity"
)

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// List retrieves all accounts.
	List(ctx context.Context) ([]*entity.Account, error)

	// Update persists the current state of an account, balance included.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account. It returns domainerror.ErrEntityInUse while
	// movements still reference it.
	Delete(ctx context.Context, id uuid.UUID) error
}
