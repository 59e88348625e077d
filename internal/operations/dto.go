package operations

import "strings"

type createRequest struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// operationResponse is the client projection. The owning-user identifier is
// never echoed back.
type operationResponse struct {
	ID        string  `json:"id"`
	Type      string  `json:"type"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	CreatedAt string  `json:"createdAt"`
}

// validate applies schema-level checks, mirroring the service's business
// rules at the boundary. Messages aggregate one per violated constraint.
func (r createRequest) validate() []string {
	var msgs []string
	if r.Type != string(TypeBuy) && r.Type != string(TypeSell) {
		msgs = append(msgs, `El tipo debe ser "buy" o "sell"`)
	}
	if r.Amount <= 0 {
		msgs = append(msgs, "El monto debe ser mayor a 0")
	}
	if len(r.Currency) != 3 {
		msgs = append(msgs, "La moneda debe tener exactamente 3 caracteres (código ISO)")
	}
	return msgs
}

func (r createRequest) toInput() CreateInput {
	return CreateInput{
		Type:     Type(r.Type),
		Amount:   r.Amount,
		Currency: strings.ToUpper(r.Currency),
	}
}
