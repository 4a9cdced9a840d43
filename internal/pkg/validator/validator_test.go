package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestValidateReturnsNilForValidStruct(t *testing.T) {
	assert.Nil(t, Validate(&sample{Name: "Marcia", Email: "marcia@example.com"}))
}

func TestValidateReportsAllFieldsByWireName(t *testing.T) {
	errs := Validate(&sample{Email: "not-an-email"})

	assert.Len(t, errs, 2)
	assert.Equal(t, "required", errs["name"])
	assert.Equal(t, "email", errs["email"])
}

func TestValidateNonStructDoesNotPanic(t *testing.T) {
	var errs map[string]string
	assert.NotPanics(t, func() {
		errs = Validate(42)
	})
	assert.NotEmpty(t, errs)
}
