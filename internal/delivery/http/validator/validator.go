// Package validator adapts go-playground/validator to Echo's Validator
// interface so request structs can declare `validate` tags.
package validator

import (
	playground "github.com/go-playground/validator/v10"
)

// EchoValidator wraps a validator instance for use as echo.Echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates a validator ready to plug into an Echo server.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New()}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
