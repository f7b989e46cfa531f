package transfer

import (
	"context"
	"fmt"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
)

// ListTransfersOutput represents the output of listing transfers.
type ListTransfersOutput struct {
	Transfers []*entity.TransferDetails
}

// ListTransfersUseCase handles listing all transfers.
type ListTransfersUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewListTransfersUseCase creates a new ListTransfersUseCase instance.
func NewListTransfersUseCase(transferRepo adapter.TransferRepository) *ListTransfersUseCase {
	return &ListTransfersUseCase{transferRepo: transferRepo}
}

// Execute lists every transfer with both accounts.
func (uc *ListTransfersUseCase) Execute(ctx context.Context) (*ListTransfersOutput, error) {
	transfers, err := uc.transferRepo.ListDetails(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transfers: %w", err)
	}

	return &ListTransfersOutput{Transfers: transfers}, nil
}
