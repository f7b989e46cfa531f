// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	domainerror "github.com/e-budget/backend/internal/domain/error"
	"github.com/e-budget/backend/internal/integration/entrypoint/dto"
)

var registerFieldNames sync.Once

// useJSONFieldNames makes validator report fields by their JSON name.
func useJSONFieldNames() {
	registerFieldNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})
	})
}

// bindJSON binds the request body into req. On failure it writes a
// ValidationError response and returns false.
func bindJSON(ctx *gin.Context, req any) bool {
	useJSONFieldNames()

	if err := ctx.ShouldBindJSON(req); err != nil {
		respondError(ctx, bindingError(err))
		return false
	}
	return true
}

// bindingError converts a binding failure into a ValidationError with one
// detail per violated field.
func bindingError(err error) *domainerror.LedgerError {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		violations := make([]domainerror.Detail, 0, len(validationErrs))
		for _, fe := range validationErrs {
			violations = append(violations, domainerror.Detail{
				Key:   fe.Field(),
				Value: violationMessage(fe),
			})
		}
		return domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, violations)
	}

	return domainerror.NewValidationError(domainerror.ErrCodeInvalidRequest, []domainerror.Detail{
		{Key: "body", Value: err.Error()},
	})
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be null"
	case "uuid":
		return "must be a valid UUID"
	case "oneof":
		return "must be one of " + fe.Param()
	case "min":
		return "must be greater than or equal to " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("size must be at most %s", fe.Param())
		}
		return "must be less than or equal to " + fe.Param()
	default:
		return "failed on " + fe.Tag()
	}
}

// parseID reads the :id path parameter. On failure it writes a
// ValidationError response and returns false.
func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondError(ctx, domainerror.NewValidationError(domainerror.ErrCodeInvalidID, []domainerror.Detail{
			{Key: "id", Value: "must be a valid UUID"},
		}))
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps an error to its HTTP status and error body.
func respondError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusForKind(ledgerErr.Kind), dto.ToErrorResponse(ledgerErr))
		return
	}

	slog.Error("Unhandled request error",
		"method", ctx.Request.Method,
		"path", ctx.FullPath(),
		"error", err,
	)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error:   "An unexpected error occurred",
		Code:    string(domainerror.ErrCodeInternal),
		Details: []dto.ErrorDetail{},
	})
}

func statusForKind(kind domainerror.Kind) int {
	switch kind {
	case domainerror.KindEntityNotFound,
		domainerror.KindSenderAccountNotFound,
		domainerror.KindRecipientAccountNotFound:
		return http.StatusNotFound
	case domainerror.KindBudgetAlreadyExists, domainerror.KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
