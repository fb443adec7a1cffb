package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations registers the domain validation rules used by the
// DTOs in this service.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("currency_code", isCurrencyCode); err != nil {
		return err
	}
	return nil
}

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// isCurrencyCode accepts ISO-4217 style three-letter codes (EUR, USD, ...).
func isCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRe.MatchString(fl.Field().String())
}
