package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/usecase/expense"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// ExpenseRequest represents the request body for expense creation and update.
type ExpenseRequest struct {
	Description  string           `json:"description" binding:"required,max=255"`
	ExpenseMonth int              `json:"expense_month" binding:"required,min=1,max=12"`
	ExpenseYear  int              `json:"expense_year" binding:"required,min=1"`
	Amount       *decimal.Decimal `json:"amount" binding:"required"`
	CategoryID   *string          `json:"category_id,omitempty" binding:"omitempty,uuid"`
	AccountID    string           `json:"account_id" binding:"required,uuid"`
	Date         string           `json:"date" binding:"required"`
}

// parse validates the fields binding cannot check and returns them parsed.
func (r *ExpenseRequest) parse() (categoryID *uuid.UUID, accountID uuid.UUID, date time.Time, err error) {
	var violations []domainerror.Detail
	violations = requireNonNegative(violations, "amount", r.Amount)
	accountID, violations = parseUUID(violations, "account_id", r.AccountID)
	if r.CategoryID != nil && *r.CategoryID != "" {
		var id uuid.UUID
		id, violations = parseUUID(violations, "category_id", *r.CategoryID)
		categoryID = &id
	}
	date, violations = parseDate(violations, "date", r.Date)

	return categoryID, accountID, date, invalid(violations)
}

// ToCreateInput converts the request to the create use case input.
func (r *ExpenseRequest) ToCreateInput() (expense.CreateExpenseInput, error) {
	categoryID, accountID, date, err := r.parse()
	if err != nil {
		return expense.CreateExpenseInput{}, err
	}

	return expense.CreateExpenseInput{
		Description:  r.Description,
		ExpenseMonth: r.ExpenseMonth,
		ExpenseYear:  r.ExpenseYear,
		Amount:       *r.Amount,
		CategoryID:   categoryID,
		AccountID:    accountID,
		Date:         date,
	}, nil
}

// ToUpdateInput converts the request to the update use case input.
func (r *ExpenseRequest) ToUpdateInput(id uuid.UUID) (expense.UpdateExpenseInput, error) {
	categoryID, accountID, date, err := r.parse()
	if err != nil {
		return expense.UpdateExpenseInput{}, err
	}

	return expense.UpdateExpenseInput{
		ExpenseID:    id,
		Description:  r.Description,
		ExpenseMonth: r.ExpenseMonth,
		ExpenseYear:  r.ExpenseYear,
		Amount:       *r.Amount,
		CategoryID:   categoryID,
		AccountID:    accountID,
		Date:         date,
	}, nil
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID           string            `json:"id"`
	Description  string            `json:"description"`
	ExpenseMonth int               `json:"expense_month"`
	ExpenseYear  int               `json:"expense_year"`
	Amount       string            `json:"amount"`
	Date         string            `json:"date"`
	Category     *CategoryResponse `json:"category"`
	Account      *AccountResponse  `json:"account"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts expense details to an ExpenseResponse DTO.
func ToExpenseResponse(d *entity.ExpenseDetails) ExpenseResponse {
	e := d.Expense
	response := ExpenseResponse{
		ID:           e.ID.String(),
		Description:  e.Description,
		ExpenseMonth: e.ExpenseMonth,
		ExpenseYear:  e.ExpenseYear,
		Amount:       formatMoney(e.Amount),
		Date:         e.Date.Format(dateLayout),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	if d.Category != nil {
		category := ToCategoryResponse(d.Category)
		response.Category = &category
	}
	if d.Account != nil {
		account := ToAccountResponse(d.Account)
		response.Account = &account
	}

	return response
}

// ToExpenseListResponse converts a list of expense details to ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.ExpenseDetails) ExpenseListResponse {
	items := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		items[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{Expenses: items}
}
