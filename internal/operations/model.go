package operations

import "time"

// Type enumerates the two supported operation kinds.
type Type string

const (
	TypeBuy  Type = "buy"
	TypeSell Type = "sell"
)

// ValidType reports whether t is a member of the enumeration.
func ValidType(t Type) bool {
	return t == TypeBuy || t == TypeSell
}

// Operation is a financial operation record. Created exactly once, immutable
// thereafter; no update or delete path exists.
type Operation struct {
	ID        string
	Type      Type
	Amount    float64
	Currency  string
	UserID    string
	CreatedAt time.Time
}

// CreateInput carries the caller-supplied fields of a new operation. The
// identifier and timestamp are assigned by the store, never the caller.
type CreateInput struct {
	Type     Type
	Amount   float64
	Currency string
}
