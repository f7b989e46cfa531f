package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/usecase/account"
	"github.com/e-budget/backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name                 string           `json:"name" binding:"required,max=100"`
	FinancialInstitution string           `json:"financial_institution" binding:"omitempty,max=50"`
	Type                 string           `json:"type" binding:"required,oneof=BANK_ACCOUNT BENEFIT_ACCOUNT CREDIT_CARD INVESTMENT_ACCOUNT CASH"`
	InitialBalance       *decimal.Decimal `json:"initial_balance" binding:"required"`
}

// ToInput converts the request to the use case input.
func (r *CreateAccountRequest) ToInput() (account.CreateAccountInput, error) {
	if err := invalid(requireMoneyScale(nil, "initial_balance", r.InitialBalance)); err != nil {
		return account.CreateAccountInput{}, err
	}
	return account.CreateAccountInput{
		Name:                 r.Name,
		FinancialInstitution: r.FinancialInstitution,
		Type:                 entity.AccountType(r.Type),
		InitialBalance:       *r.InitialBalance,
	}, nil
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name                 string `json:"name" binding:"required,max=100"`
	FinancialInstitution string `json:"financial_institution" binding:"omitempty,max=50"`
	Type                 string `json:"type" binding:"required,oneof=BANK_ACCOUNT BENEFIT_ACCOUNT CREDIT_CARD INVESTMENT_ACCOUNT CASH"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	FinancialInstitution string    `json:"financial_institution"`
	Type                 string    `json:"type"`
	InitialBalance       string    `json:"initial_balance"`
	Balance              string    `json:"balance"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:                   a.ID.String(),
		Name:                 a.Name,
		FinancialInstitution: a.FinancialInstitution,
		Type:                 string(a.Type),
		InitialBalance:       formatMoney(a.InitialBalance),
		Balance:              formatMoney(a.Balance),
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		items[i] = ToAccountResponse(a)
	}
	return AccountListResponse{Accounts: items}
}
