// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindDetailsByID retrieves a budget with its category.
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.BudgetDetails, error)

	// ListDetails retrieves all budgets with their categories.
	ListDetails(ctx context.Context) ([]*entity.BudgetDetails, error)

	// FindByCategoryMonthYear retrieves the budget for a period.
	// Returns (nil, nil) when no budget covers it.
	FindByCategoryMonthYear(ctx context.Context, categoryID uuid.UUID, month, year int) (*entity.Budget, error)

	// CountByCategoryMonthYear counts budgets covering a period.
	CountByCategoryMonthYear(ctx context.Context, categoryID uuid.UUID, month, year int) (int64, error)

	// Update persists the current state of a budget, usage figures included.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
