package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidLevel(t *testing.T) {
	for _, level := range ValidLevels {
		assert.True(t, IsValidLevel(level))
	}
	assert.False(t, IsValidLevel(0))
	assert.False(t, IsValidLevel(150))
	assert.False(t, IsValidLevel(500))
}

func TestStudent_FullName(t *testing.T) {
	student := &Student{FirstName: "Kofi", LastName: "Asante"}
	assert.Equal(t, "Kofi Asante", student.FullName())
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, PaymentMethodCash.IsValid())
	assert.True(t, PaymentMethodMomo.IsValid())
	assert.True(t, PaymentMethodBank.IsValid())
	assert.False(t, PaymentMethod("cheque").IsValid())
	assert.False(t, PaymentMethod("").IsValid())
}
