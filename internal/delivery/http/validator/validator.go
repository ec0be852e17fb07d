// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var nonSpace = regexp.MustCompile(`\S`)

// EchoValidator wraps a validator.Validate instance for echo.
type EchoValidator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom rules the handlers use.
func New() *EchoValidator {
	validate := validator.New()

	// notblank: string contains at least one non-whitespace character.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})

	return &EchoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
