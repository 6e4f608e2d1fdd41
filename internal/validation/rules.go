// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/checkin/internal/errors"
	tokenservice "github.com/allisson/checkin/internal/token/service"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// TokenFormat validates that a string is exactly 12 alphanumeric characters
var TokenFormat = validation.NewStringRuleWithError(
	tokenservice.IsValidFormat,
	validation.NewError("validation_token_format", "must be exactly 12 alphanumeric characters"),
)
