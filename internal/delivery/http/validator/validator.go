// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "huddle/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance for echo
type CustomValidator struct {
	validator *validator.Validate
}

// New creates a new CustomValidator
func New() *CustomValidator {
	return &CustomValidator{
		validator: validator.New(),
	}
}

// Validate validates the given struct and converts failures to an AppError
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
