// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "toolstore/internal/domain/errors"
)

// Validator validates request payloads at the boundary, before any handler
// logic runs.
type Validator struct {
	validate *playground.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the validation
// error of the application taxonomy (400 VALIDATION_FAILED).
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
