package utils

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "gmao-system/pkg/errors"
)

// Validator adapts go-playground/validator to echo's Validator interface and
// converts validation failures into 400 HttpErrors.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Tag() == "required" {
			return apperrors.NewValidationError("field '%s' is required", fe.Field())
		}
		return apperrors.NewValidationError("field '%s' is invalid (rule '%s')", fe.Field(), fe.Tag())
	}
	return apperrors.NewHttpError(http.StatusBadRequest, "Invalid request payload", err)
}
