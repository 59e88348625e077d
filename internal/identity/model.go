package identity

import "time"

// User is a provisioned account. Accounts are seeded out of band; no signup
// flow exists, and the in-scope flows never mutate or delete them.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Credentials carry a login attempt.
type Credentials struct {
	Email    string
	Password string
}
