package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/usecase/income"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// IncomeRequest represents the request body for income creation and update.
type IncomeRequest struct {
	Description string           `json:"description" binding:"required,max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	AccountID   string           `json:"account_id" binding:"required,uuid"`
}

func (r *IncomeRequest) parse() (uuid.UUID, error) {
	var violations []domainerror.Detail
	violations = requirePositive(violations, "amount", r.Amount)
	accountID, violations := parseUUID(violations, "account_id", r.AccountID)
	return accountID, invalid(violations)
}

// ToCreateInput converts the request to the create use case input.
func (r *IncomeRequest) ToCreateInput() (income.CreateIncomeInput, error) {
	accountID, err := r.parse()
	if err != nil {
		return income.CreateIncomeInput{}, err
	}

	return income.CreateIncomeInput{
		Description: r.Description,
		Amount:      *r.Amount,
		AccountID:   accountID,
	}, nil
}

// ToUpdateInput converts the request to the update use case input.
func (r *IncomeRequest) ToUpdateInput(id uuid.UUID) (income.UpdateIncomeInput, error) {
	accountID, err := r.parse()
	if err != nil {
		return income.UpdateIncomeInput{}, err
	}

	return income.UpdateIncomeInput{
		IncomeID:    id,
		Description: r.Description,
		Amount:      *r.Amount,
		AccountID:   accountID,
	}, nil
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"description"`
	Amount      string           `json:"amount"`
	Account     *AccountResponse `json:"account"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts income details to an IncomeResponse DTO.
func ToIncomeResponse(d *entity.IncomeDetails) IncomeResponse {
	response := IncomeResponse{
		ID:          d.Income.ID.String(),
		Description: d.Income.Description,
		Amount:      formatMoney(d.Income.Amount),
		CreatedAt:   d.Income.CreatedAt,
		UpdatedAt:   d.Income.UpdatedAt,
	}

	if d.Account != nil {
		account := ToAccountResponse(d.Account)
		response.Account = &account
	}

	return response
}

// ToIncomeListResponse converts a list of income details to IncomeListResponse.
func ToIncomeListResponse(incomes []*entity.IncomeDetails) IncomeListResponse {
	items := make([]IncomeResponse, len(incomes))
	for i, inc := range incomes {
		items[i] = ToIncomeResponse(inc)
	}
	return IncomeListResponse{Incomes: items}
}
