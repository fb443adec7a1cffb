package customvalidator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyCodeRule(t *testing.T) {
	v := validator.New()
	require.NoError(t, RegisterCustomValidations(v))

	type payload struct {
		Currency string `validate:"currency_code"`
	}

	assert.NoError(t, v.Struct(payload{Currency: "EUR"}))
	assert.NoError(t, v.Struct(payload{Currency: "USD"}))
	assert.Error(t, v.Struct(payload{Currency: "eur"}))
	assert.Error(t, v.Struct(payload{Currency: "EURO"}))
	assert.Error(t, v.Struct(payload{Currency: "E1R"}))
}
