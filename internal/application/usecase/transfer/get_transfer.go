package transfer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/e-budget/backend/internal/application/adapter"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// GetTransferInput represents the input for fetching one transfer.
type GetTransferInput struct {
	TransferID uuid.UUID
}

// GetTransferOutput represents the output of fetching one transfer.
type GetTransferOutput struct {
	Transfer *entity.TransferDetails
}

// GetTransferUseCase handles single transfer lookup.
type GetTransferUseCase struct {
	transferRepo adapter.TransferRepository
}

// NewGetTransferUseCase creates a new GetTransferUseCase instance.
func NewGetTransferUseCase(transferRepo adapter.TransferRepository) *GetTransferUseCase {
	return &GetTransferUseCase{transferRepo: transferRepo}
}

// Execute performs the transfer lookup.
func (uc *GetTransferUseCase) Execute(ctx context.Context, input GetTransferInput) (*GetTransferOutput, error) {
	details, err := uc.transferRepo.FindDetailsByID(ctx, input.TransferID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransferNotFound) {
			return nil, domainerror.NewEntityNotFoundError(domainerror.ErrTransferNotFound, input.TransferID)
		}
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}

	return &GetTransferOutput{Transfer: details}, nil
}
