// Package validator adapts go-playground's struct validation to Echo.
package validator

import (
	"github.com/go-playground/validator/v10"

	domainerrors "courtside/internal/domain/errors"
)

// echoValidator implements echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the validator used for request DTOs.
func New() *echoValidator {
	return &echoValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request DTO. Failures surface
// as the shared validation error so the error handler renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
