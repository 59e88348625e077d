package auth

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validate applies schema-level checks and returns the aggregated field
// messages, one per violated constraint. Business rules live in the services.
func (r loginRequest) validate() []string {
	var msgs []string
	if !emailPattern.MatchString(strings.TrimSpace(r.Email)) {
		msgs = append(msgs, "El email debe tener un formato válido")
	}
	if r.Password == "" {
		msgs = append(msgs, "La contraseña es requerida")
	}
	return msgs
}
