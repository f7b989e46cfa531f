// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	domainerror "github.com/e-budget/backend/internal/domain/error"
)

// ErrorDetail is one key/value pair describing what went wrong.
type ErrorDetail struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string        `json:"error"`
	Code    string        `json:"code,omitempty"`
	Kind    string        `json:"kind,omitempty"`
	Details []ErrorDetail `json:"details"`
}

// ToErrorResponse converts a domain LedgerError to an ErrorResponse DTO.
func ToErrorResponse(err *domainerror.LedgerError) ErrorResponse {
	details := make([]ErrorDetail, len(err.Details))
	for i, d := range err.Details {
		details[i] = ErrorDetail{Key: d.Key, Value: d.Value}
	}
	return ErrorResponse{
		Error:   err.Message,
		Code:    string(err.Code),
		Kind:    string(err.Kind),
		Details: details,
	}
}
