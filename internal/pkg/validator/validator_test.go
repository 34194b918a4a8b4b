package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(loginForm{Email: "admin@desa.id", Password: "rahasia"}))

	got := Validate(loginForm{Email: "not-an-email"})
	assert.Equal(t, map[string]string{
		"Email":    "email",
		"Password": "required",
	}, got)
}

func TestDetailsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, Details(nil))
	assert.Nil(t, Details(errors.New("unexpected EOF")))
}
