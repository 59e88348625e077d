package session

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// LoginForm models the login form: field values plus per-field error
// messages. Editing a field clears only that field's error, so a failed
// submit's other messages stay visible until their fields change.
type LoginForm struct {
	email    string
	password string
	errors   map[string]string
}

// NewLoginForm returns an empty form.
func NewLoginForm() *LoginForm {
	return &LoginForm{errors: make(map[string]string)}
}

// SetEmail updates the email value and clears the email error only.
func (f *LoginForm) SetEmail(v string) {
	f.email = v
	delete(f.errors, "email")
}

// SetPassword updates the password value and clears the password error only.
func (f *LoginForm) SetPassword(v string) {
	f.password = v
	delete(f.errors, "password")
}

// Validate checks both fields and records a message per violated rule.
// It returns true when the form is submittable.
func (f *LoginForm) Validate() bool {
	f.errors = make(map[string]string)

	switch {
	case strings.TrimSpace(f.email) == "":
		f.errors["email"] = "El email es requerido"
	case !emailPattern.MatchString(strings.TrimSpace(f.email)):
		f.errors["email"] = "El formato del email no es válido"
	}

	if strings.TrimSpace(f.password) == "" {
		f.errors["password"] = "La contraseña es requerida"
	}

	return len(f.errors) == 0
}

// Email returns the current email value.
func (f *LoginForm) Email() string { return f.email }

// Password returns the current password value.
func (f *LoginForm) Password() string { return f.password }

// Errors returns the current field errors keyed by field name.
func (f *LoginForm) Errors() map[string]string {
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}
