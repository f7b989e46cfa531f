// Package error defines domain-specific errors for the e-budget application.
package error

import (
	"errors"
	"fmt"
	"sort"
)

// Ledger domain errors returned by repositories when a row is absent.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrIncomeNotFound is returned when an income is not found in the system.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrTransferNotFound is returned when a transfer is not found in the system.
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrBudgetAlreadyExists is returned when a budget already covers a category, month and year.
	ErrBudgetAlreadyExists = errors.New("budget already exists")

	// ErrSenderAccountNotFound is returned when the source account of a transfer is absent.
	ErrSenderAccountNotFound = errors.New("sender account not found")

	// ErrRecipientAccountNotFound is returned when the destination account of a transfer is absent.
	ErrRecipientAccountNotFound = errors.New("recipient account not found")

	// ErrEntityInUse is returned when a row cannot be deleted because other rows reference it.
	ErrEntityInUse = errors.New("entity is still referenced")

	// ErrValidation is returned when a request fails field validation.
	ErrValidation = errors.New("validation failed")
)

// Kind is the machine-readable class of a ledger error.
type Kind string

const (
	KindEntityNotFound           Kind = "EntityNotFound"
	KindBudgetAlreadyExists      Kind = "BudgetAlreadyExists"
	KindSenderAccountNotFound    Kind = "SenderAccountNotFound"
	KindRecipientAccountNotFound Kind = "RecipientAccountNotFound"
	KindValidation               Kind = "ValidationError"
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Lookup errors (01XXXX)
	ErrCodeAccountNotFound          LedgerErrorCode = "LDG-010001"
	ErrCodeCategoryNotFound         LedgerErrorCode = "LDG-010002"
	ErrCodeBudgetNotFound           LedgerErrorCode = "LDG-010003"
	ErrCodeExpenseNotFound          LedgerErrorCode = "LDG-010004"
	ErrCodeIncomeNotFound           LedgerErrorCode = "LDG-010005"
	ErrCodeTransferNotFound         LedgerErrorCode = "LDG-010006"
	ErrCodeSenderAccountNotFound    LedgerErrorCode = "LDG-010007"
	ErrCodeRecipientAccountNotFound LedgerErrorCode = "LDG-010008"

	// Conflict errors (02XXXX)
	ErrCodeBudgetAlreadyExists LedgerErrorCode = "LDG-020001"
	ErrCodeEntityInUse         LedgerErrorCode = "LDG-020002"

	// Validation errors (03XXXX)
	ErrCodeInvalidRequest LedgerErrorCode = "LDG-030001"
	ErrCodeInvalidID      LedgerErrorCode = "LDG-030002"

	// Transport errors (04XXXX)
	ErrCodeRateLimited LedgerErrorCode = "LDG-040001"

	// Unexpected errors (09XXXX)
	ErrCodeInternal LedgerErrorCode = "LDG-090001"
)

// Detail is one key/value pair describing the offending field or entity.
type Detail struct {
	Key   string
	Value string
}

// LedgerError represents a ledger error with kind, code, message and details.
type LedgerError struct {
	Kind    Kind
	Code    LedgerErrorCode
	Message string
	Details []Detail
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError. Details are sorted by key so
// responses are stable.
func NewLedgerError(kind Kind, code LedgerErrorCode, message string, details map[string]string, err error) *LedgerError {
	keys := make([]string, 0, len(details))
	for k := range details {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	list := make([]Detail, 0, len(keys))
	for _, k := range keys {
		list = append(list, Detail{Key: k, Value: details[k]})
	}

	return &LedgerError{
		Kind:    kind,
		Code:    code,
		Message: message,
		Details: list,
		Err:     err,
	}
}

// notFoundCodes maps repository sentinels to their entity name and code.
var notFoundCodes = map[error]struct {
	entity string
	code   LedgerErrorCode
}{
	ErrAccountNotFound:  {"Account", ErrCodeAccountNotFound},
	ErrCategoryNotFound: {"Category", ErrCodeCategoryNotFound},
	ErrBudgetNotFound:   {"Budget", ErrCodeBudgetNotFound},
	ErrExpenseNotFound:  {"Expense", ErrCodeExpenseNotFound},
	ErrIncomeNotFound:   {"Income", ErrCodeIncomeNotFound},
	ErrTransferNotFound: {"Transfer", ErrCodeTransferNotFound},
}

// NewEntityNotFoundError builds the not-found error for the entity behind
// sentinel, carrying the looked-up id as detail.
func NewEntityNotFoundError(sentinel error, id fmt.Stringer) *LedgerError {
	info, ok := notFoundCodes[sentinel]
	if !ok {
		info.entity, info.code = "Entity", ErrCodeInvalidRequest
	}
	return NewLedgerError(
		KindEntityNotFound,
		info.code,
		info.entity+" not found",
		map[string]string{"entityId": id.String()},
		sentinel,
	)
}

// NewBudgetAlreadyExistsError reports a uniqueness violation on category, month and year.
func NewBudgetAlreadyExistsError(categoryName string, month, year int) *LedgerError {
	return NewLedgerError(
		KindBudgetAlreadyExists,
		ErrCodeBudgetAlreadyExists,
		"Budget already exists for provided category, month, and year",
		map[string]string{
			"category": categoryName,
			"month":    fmt.Sprint(month),
			"year":     fmt.Sprint(year),
		},
		ErrBudgetAlreadyExists,
	)
}

// NewSenderAccountNotFoundError reports a missing transfer source account.
func NewSenderAccountNotFoundError(id fmt.Stringer) *LedgerError {
	return NewLedgerError(
		KindSenderAccountNotFound,
		ErrCodeSenderAccountNotFound,
		"Sender account not found",
		map[string]string{"accountId": id.String()},
		ErrSenderAccountNotFound,
	)
}

// NewRecipientAccountNotFoundError reports a missing transfer destination account.
func NewRecipientAccountNotFoundError(id fmt.Stringer) *LedgerError {
	return NewLedgerError(
		KindRecipientAccountNotFound,
		ErrCodeRecipientAccountNotFound,
		"Recipient account not found",
		map[string]string{"accountId": id.String()},
		ErrRecipientAccountNotFound,
	)
}

// NewValidationError reports field violations, one detail per field.
func NewValidationError(code LedgerErrorCode, violations []Detail) *LedgerError {
	return &LedgerError{
		Kind:    KindValidation,
		Code:    code,
		Message: "Request contains validation errors",
		Details: violations,
		Err:     ErrValidation,
	}
}

// NewEntityInUseError reports a delete refused because movements or budgets
// still reference the entity behind sentinel.
func NewEntityInUseError(sentinel error, id fmt.Stringer) *LedgerError {
	entity := "Entity"
	if info, ok := notFoundCodes[sentinel]; ok {
		entity = info.entity
	}
	return NewLedgerError(
		KindValidation,
		ErrCodeEntityInUse,
		entity+" is still referenced and cannot be deleted",
		map[string]string{"entityId": id.String()},
		ErrEntityInUse,
	)
}
