package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// GetCategoryInput represents the input for fetching one category.
type GetCategoryInput struct {
	CategoryID uuid.UUID
}

// GetCategoryOutput represents the output of fetching one category.
type GetCategoryOutput struct {
	Category *entity.Category
}

// GetCategoryUseCase handles single category lookup.
type GetCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewGetCategoryUseCase creates a new GetCategoryUseCase instance.
func NewGetCategoryUseCase(categoryRepo adapter.CategoryRepository) *GetCategoryUseCase {
	return &GetCategoryUseCase{categoryRepo: categoryRepo}
}

// Execute performs the category lookup.
func (uc *GetCategoryUseCase) Execute(ctx context.Context, input GetCategoryInput) (*GetCategoryOutput, error) {
	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrCategoryNotFound, input.CategoryID)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}

	return &GetCategoryOutput{Category: category}, nil
}
