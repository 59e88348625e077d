// Package apperr defines the tagged error variants shared across services.
// Every failure that crosses a service boundary is one of four kinds, so
// translating an error to an HTTP status is a direct mapping on the kind
// rather than inspection of message text.
package apperr

import (
	"errors"
	"fmt"
)

// Kind discriminates error categories for status-code mapping.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindNotFound
	KindInternal
)

// Error is a tagged application error. Title and Message are client-facing
// and become the "error" and "message" fields of the JSON body; an empty
// Title is omitted. Err carries the internal cause and is only ever logged.
type Error struct {
	Kind    Kind
	Title   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a 400-class error carrying an aggregated field message.
func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Title: "Error de validación", Message: message}
}

// InvalidCredentials is the uniform bad-credentials failure. Unknown email
// and wrong password must be indistinguishable, so both paths return this
// exact error with no title.
func InvalidCredentials() *Error {
	return &Error{Kind: KindAuth, Message: "Credenciales inválidas"}
}

// Unauthorized builds a 401-class error with an explicit title, used by the
// token middleware and handler-level subject checks.
func Unauthorized(title, message string) *Error {
	return &Error{Kind: KindAuth, Title: title, Message: message}
}

// NotFound builds a 404-class error.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Title: "No encontrado", Message: message}
}

// Internal wraps an unexpected failure. The cause is retained for logging
// but the client only ever sees the generic title and message.
func Internal(err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Title:   "Error interno del servidor",
		Message: "Ocurrió un error inesperado",
		Err:     err,
	}
}

// As unwraps err into an *Error if one is present in its chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
