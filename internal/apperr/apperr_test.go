package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidCredentialsIsUniform(t *testing.T) {
	a := InvalidCredentials()
	b := InvalidCredentials()

	if a.Message != b.Message || a.Title != b.Title || a.Kind != b.Kind {
		t.Fatal("invalid-credentials errors must be identical")
	}
	if a.Title != "" {
		t.Fatalf("expected empty title, got %q", a.Title)
	}
	if a.Message != "Credenciales inválidas" {
		t.Fatalf("unexpected message %q", a.Message)
	}
}

func TestAsUnwrapsChain(t *testing.T) {
	inner := Validation("El monto debe ser mayor a 0")
	wrapped := fmt.Errorf("create operation: %w", inner)

	got, ok := As(wrapped)
	if !ok {
		t.Fatal("expected apperr in chain")
	}
	if got.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %d", got.Kind)
	}
}

func TestInternalRetainsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	if !errors.Is(err, cause) {
		t.Fatal("expected cause in chain")
	}
	if err.Message != "Ocurrió un error inesperado" {
		t.Fatalf("unexpected message %q", err.Message)
	}
}
