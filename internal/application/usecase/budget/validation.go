// Package budget contains budget-related use cases.
package budget

import (
	"github.com/shopspring/decimal"

	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// validateBudgetFields rejects periods outside the calendar and
// non-positive targets. A zero target would make the used percentage undefined.
func validateBudgetFields(month, year int, monthlyBudget decimal.Decimal) error {
	var violations []domainerror.Detail

	if month < 1 || month > 12 {
		violations = append(violations, domainerror.Detail{Key: "month", Value: "must be between 1 and 12"})
	}
	if year <= 0 {
		violations = append(violations, domainerror.Detail{Key: "year", Value: "must be greater than 0"})
	}
	if !monthlyBudget.IsPositive() {
		violations = append(violations, domainerror.Detail{Key: "monthly_budget", Value: "must be greater than 0"})
	}

	if len(violations) > 0 {
		return domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, violations)
	}
	return nil
}
