// Package validator adapts go-playground's struct validation to Echo's
// Validator interface, so request DTOs are checked at binding time before
// the domain validators run.
package validator

import (
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the Echo validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks the bound request struct against its validate tags.
// Failures surface as the validation error kind so the error middleware
// renders a 400 with the offending fields.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(domainerrors.ErrValidation, err.Error())
	}

	return nil
}
