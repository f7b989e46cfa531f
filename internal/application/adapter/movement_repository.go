// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *entity.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseDetails, error)
	ListDetails(ctx context.Context) ([]*entity.ExpenseDetails, error)
	Update(ctx context.Context, expense *entity.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// IncomeRepository defines the interface for income persistence operations.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Income, error)
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.IncomeDetails, error)
	ListDetails(ctx context.Context) ([]*entity.IncomeDetails, error)
	Update(ctx context.Context, income *entity.Income) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransferRepository defines the interface for transfer persistence operations.
// Transfers are never updated.
type TransferRepository interface {
	Create(ctx context.Context, transfer *entity.Transfer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transfer, error)
	FindDetailsByID(ctx context.Context, id uuid.UUID) (*entity.TransferDetails, error)
	ListDetails(ctx context.Context) ([]*entity.TransferDetails, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
