package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// moneyScale is the number of decimals money is rendered with.
const moneyScale = 2

// dateLayout is the wire format of calendar dates.
const dateLayout = "2006-01-02"

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(moneyScale)
}

// requireMoneyScale rejects amounts the decimal(15,2) columns would round.
func requireMoneyScale(violations []domainerror.Detail, key string, d *decimal.Decimal) []domainerror.Detail {
	if d != nil && !d.Equal(d.Truncate(moneyScale)) {
		violations = append(violations, domainerror.Detail{Key: key, Value: "must have at most 2 decimal places"})
	}
	return violations
}

func requirePositive(violations []domainerror.Detail, key string, d *decimal.Decimal) []domainerror.Detail {
	if d != nil && !d.IsPositive() {
		return append(violations, domainerror.Detail{Key: key, Value: "must be greater than 0"})
	}
	return requireMoneyScale(violations, key, d)
}

func requireNonNegative(violations []domainerror.Detail, key string, d *decimal.Decimal) []domainerror.Detail {
	if d != nil && d.IsNegative() {
		return append(violations, domainerror.Detail{Key: key, Value: "must be greater than or equal to 0"})
	}
	return requireMoneyScale(violations, key, d)
}

// parseUUID parses binding-validated id strings. Binding already rejected
// malformed values, so a parse failure here is reported as a violation too.
func parseUUID(violations []domainerror.Detail, key, value string) (uuid.UUID, []domainerror.Detail) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, append(violations, domainerror.Detail{Key: key, Value: "must be a valid UUID"})
	}
	return id, violations
}

func parseDate(violations []domainerror.Detail, key, value string) (time.Time, []domainerror.Detail) {
	date, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, append(violations, domainerror.Detail{Key: key, Value: "must be a date in YYYY-MM-DD format"})
	}
	return date, violations
}

func invalid(violations []domainerror.Detail) error {
	if len(violations) == 0 {
		return nil
	}
	return domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, violations)
}
