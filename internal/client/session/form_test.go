package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmptyFieldsReportsBoth(t *testing.T) {
	form := NewLoginForm()

	require.False(t, form.Validate())
	errs := form.Errors()
	require.Equal(t, "El email es requerido", errs["email"])
	require.Equal(t, "La contraseña es requerida", errs["password"])
}

func TestEditingOneFieldClearsOnlyItsError(t *testing.T) {
	form := NewLoginForm()
	require.False(t, form.Validate())

	form.SetEmail("t")

	errs := form.Errors()
	_, emailErr := errs["email"]
	require.False(t, emailErr, "typing into email must clear the email error")
	require.Equal(t, "La contraseña es requerida", errs["password"], "password error must survive")
}

func TestValidateBadEmailFormat(t *testing.T) {
	form := NewLoginForm()
	form.SetEmail("not-an-email")
	form.SetPassword("secret")

	require.False(t, form.Validate())
	require.Equal(t, "El formato del email no es válido", form.Errors()["email"])
}

func TestValidateAcceptsWellFormedCredentials(t *testing.T) {
	form := NewLoginForm()
	form.SetEmail("test@example.com")
	form.SetPassword("Password123!")

	require.True(t, form.Validate())
	require.Empty(t, form.Errors())
}
