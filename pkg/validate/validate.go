// Package validate wraps go-playground/validator so handlers can turn struct
// tag failures into the VALIDATION_FAILED error shape with readable,
// per-field messages.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/wexa-dev/studio-api/pkg/util"
)

var v = validator.New()

// Struct validates a request payload against its validate tags. It returns a
// DomainError with a details map keyed by field name, or nil.
func Struct(payload any) error {
	err := v.Struct(payload)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		details[field] = fieldError(field, fe)
	}
	return apperrors.NewValidationError("validation failed", details)
}

func fieldError(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "url":
		return field + " must be a valid URL"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
