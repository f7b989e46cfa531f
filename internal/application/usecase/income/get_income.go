package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// GetIncomeInput represents the input for fetching one income.
type GetIncomeInput struct {
	IncomeID uuid.UUID
}

// GetIncomeOutput represents the output of fetching one income.
type GetIncomeOutput struct {
	Income *entity.IncomeDetails
}

// GetIncomeUseCase handles single income lookup.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute performs the income lookup.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
	details, err := uc.incomeRepo.FindDetailsByID(ctx, input.IncomeID)
	if err != nil {
		if errors.Is(err, domainerror.ErrIncomeNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrIncomeNotFound, input.IncomeID)
		}
		return nil, fmt.Errorf("failed to find income: %w", err)
	}

	return &GetIncomeOutput{Income: details}, nil
}
