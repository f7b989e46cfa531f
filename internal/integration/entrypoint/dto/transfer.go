package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/usecase/transfer"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// CreateTransferRequest represents the request body for transfer creation.
type CreateTransferRequest struct {
	Description   string           `json:"description" binding:"required,max=255"`
	Amount        *decimal.Decimal `json:"amount" binding:"required"`
	FromAccountID string           `json:"from_account_id" binding:"required,uuid"`
	ToAccountID   string           `json:"to_account_id" binding:"required,uuid"`
}

// ToInput validates the request and converts it to the use case input.
func (r *CreateTransferRequest) ToInput() (transfer.CreateTransferInput, error) {
	var violations []domainerror.Detail
	violations = requireNonNegative(violations, "amount", r.Amount)
	fromID, violations := parseUUID(violations, "from_account_id", r.FromAccountID)
	toID, violations := parseUUID(violations, "to_account_id", r.ToAccountID)
	if err := invalid(violations); err != nil {
		return transfer.CreateTransferInput{}, err
	}

	return transfer.CreateTransferInput{
		Description:   r.Description,
		Amount:        *r.Amount,
		FromAccountID: fromID,
		ToAccountID:   toID,
	}, nil
}

// TransferResponse represents a single transfer in API responses.
type TransferResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      string           `json:"amount"`
	FromAccount *AccountResponse `json:"from_account"`
	ToAccount   *AccountResponse `json:"to_account"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TransferListResponse represents the response for listing transfers.
type TransferListResponse struct {
	Transfers []TransferResponse `json:"transfers"`
}

// ToTransferResponse converts transfer details to a TransferResponse DTO.
func ToTransferResponse(d *entity.TransferDetails) TransferResponse {
	response := TransferResponse{
		ID:          d.Transfer.ID.String(),
		Description: d.Transfer.Description,
		Amount:      formatMoney(d.Transfer.Amount),
		CreatedAt:   d.Transfer.CreatedAt,
		UpdatedAt:   d.Transfer.UpdatedAt,
	}

	if d.FromAccount != nil {
		from := ToAccountResponse(d.FromAccount)
		response.FromAccount = &from
	}
	if d.ToAccount != nil {
		to := ToAccountResponse(d.ToAccount)
		response.ToAccount = &to
	}

	return response
}

// ToTransferListResponse converts a list of transfer details to TransferListResponse.
func ToTransferListResponse(transfers []*entity.TransferDetails) TransferListResponse {
	items := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		items[i] = ToTransferResponse(t)
	}
	return TransferListResponse{Transfers: items}
}
