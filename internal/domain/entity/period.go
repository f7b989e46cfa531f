// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Period is the attribution period of an expense: the budget it counts
// against is the one for (category, month, year).
type Period struct {
	CategoryID uuid.UUID
	Month      int
	Year       int
}

// PeriodOf derives the month and year of date.
func PeriodOf(categoryID uuid.UUID, date time.Time) Period {
	return Period{
		CategoryID: categoryID,
		Month:      int(date.Month()),
		Year:       date.Year(),
	}
}

// PeriodSource selects which expense fields locate the budget when an
// expense is deleted.
type PeriodSource string

const (
	// PeriodSourceStored uses the expense's stored month and year.
	PeriodSourceStored PeriodSource = "stored"
	// PeriodSourceDate uses the month and year of the expense date, the
	// same key used when the expense was created.
	PeriodSourceDate PeriodSource = "date"
)
