package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/e-budget/backend/internal/application/usecase/budget"
	"github.com/e-budget/backend/internal/domain/entity"
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	CategoryID    string           `json:"category_id" binding:"required,uuid"`
	Month         int              `json:"month" binding:"required,min=1,max=12"`
	Year          int              `json:"year" binding:"required,min=1"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget" binding:"required"`
}

// ToInput validates the decimal fields and converts the request to the use case input.
func (r *CreateBudgetRequest) ToInput() (budget.CreateBudgetInput, error) {
	var violations []domainerror.Detail
	categoryID, violations := parseUUID(violations, "category_id", r.CategoryID)
	violations = requirePositive(violations, "monthly_budget", r.MonthlyBudget)
	if err := invalid(violations); err != nil {
		return budget.CreateBudgetInput{}, err
	}

	return budget.CreateBudgetInput{
		CategoryID:    categoryID,
		Month:         r.Month,
		Year:          r.Year,
		MonthlyBudget: *r.MonthlyBudget,
	}, nil
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Month         int              `json:"month" binding:"required,min=1,max=12"`
	Year          int              `json:"year" binding:"required,min=1"`
	MonthlyBudget *decimal.Decimal `json:"monthly_budget" binding:"required"`
}

// ToInput validates the decimal fields and converts the request to the use case input.
func (r *UpdateBudgetRequest) ToInput(id uuid.UUID) (budget.UpdateBudgetInput, error) {
	if err := invalid(requirePositive(nil, "monthly_budget", r.MonthlyBudget)); err != nil {
		return budget.UpdateBudgetInput{}, err
	}

	return budget.UpdateBudgetInput{
		BudgetID:      id,
		Month:         r.Month,
		Year:          r.Year,
		MonthlyBudget: *r.MonthlyBudget,
	}, nil
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID                          string            `json:"id"`
	CategoryID                  string            `json:"category_id"`
	Category                    *CategoryResponse `json:"category,omitempty"`
	Month                       int               `json:"month"`
	Year                        int               `json:"year"`
	MonthlyBudget               string            `json:"monthly_budget"`
	MonthlyBudgetUsed           string            `json:"monthly_budget_used"`
	MonthlyBudgetUsedPercentage string            `json:"monthly_budget_used_percentage"`
	MonthlyBudgetBalance        string            `json:"monthly_budget_balance"`
	CreatedAt                   time.Time         `json:"created_at"`
	UpdatedAt                   time.Time         `json:"updated_at"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts budget details to a BudgetResponse DTO.
func ToBudgetResponse(d *entity.BudgetDetails) BudgetResponse {
	b := d.Budget
	response := BudgetResponse{
		ID:                          b.ID.String(),
		CategoryID:                  b.CategoryID.String(),
		Month:                       b.Month,
		Year:                        b.Year,
		MonthlyBudget:               formatMoney(b.MonthlyBudget),
		MonthlyBudgetUsed:           formatMoney(b.MonthlyBudgetUsed),
		MonthlyBudgetUsedPercentage: b.MonthlyBudgetUsedPercentage.StringFixed(entity.PercentageScale),
		MonthlyBudgetBalance:        formatMoney(b.MonthlyBudgetBalance),
		CreatedAt:                   b.CreatedAt,
		UpdatedAt:                   b.UpdatedAt,
	}

	if d.Category != nil {
		category := ToCategoryResponse(d.Category)
		response.Category = &category
	}

	return response
}

// ToBudgetListResponse converts a list of budget details to BudgetListResponse.
func ToBudgetListResponse(budgets []*entity.BudgetDetails) BudgetListResponse {
	items := make([]BudgetResponse, len(budgets))
	for i, b := range budgets {
		items[i] = ToBudgetResponse(b)
	}
	return BudgetListResponse{Budgets: items}
}
