package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tagInput struct {
	Label string `validate:"required,notblank,max=5"`
}

type tabInput struct {
	Tab string `validate:"required,oneof=reservations records bills"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("Blank Label", func(t *testing.T) {
		err := ValidateStruct(tagInput{Label: "   "})
		assert.Error(t, err)
		assert.Equal(t, "label must not be blank", FormatFirstValidationError(err))
	})

	t.Run("Too Long Label", func(t *testing.T) {
		err := ValidateStruct(tagInput{Label: "abcdefg"})
		assert.Error(t, err)
		assert.Equal(t, "label maximum at 5 characters long", FormatFirstValidationError(err))
	})

	t.Run("Unknown Tab", func(t *testing.T) {
		err := ValidateStruct(tabInput{Tab: "profile"})
		assert.Error(t, err)
		assert.Equal(t, "tab must be one of [reservations records bills]", FormatFirstValidationError(err))
	})

	t.Run("Valid Input", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(tagInput{Label: "vip"}))
		assert.NoError(t, ValidateStruct(tabInput{Tab: "bills"}))
	})
}
