package income

import (
	"context"
	"fmt"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
)

// ListIncomesOutput represents the output of listing incomes.
type ListIncomesOutput struct {
	Incomes []*entity.IncomeDetails
}

// ListIncomesUseCase handles listing all incomes.
type ListIncomesUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomesUseCase creates a new ListIncomesUseCase instance.
func NewListIncomesUseCase(incomeRepo adapter.IncomeRepository) *ListIncomesUseCase {
	return &ListIncomesUseCase{incomeRepo: incomeRepo}
}

// Execute lists every income with its account.
func (uc *ListIncomesUseCase) Execute(ctx context.Context) (*ListIncomesOutput, error) {
	incomes, err := uc.incomeRepo.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}

	return &ListIncomesOutput{Incomes: incomes}, nil
}
