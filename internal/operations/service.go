package operations

import (
	"context"
	"fmt"
	"strings"

	"github.com/trade-desk/trade_desk/internal/apperr"
)

// validCurrencies is the fixed allow-list of accepted ISO codes.
var validCurrencies = []string{"USD", "EUR", "GBP", "JPY", "AUD", "CAD", "CHF", "CNY", "SEK", "NZD"}

// Service enforces business rules and persists operations.
type Service struct {
	repo Repository
}

// NewService creates a new operations service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the business rules and persists the operation, attributing
// it to the authenticated owner. Amount and currency are checked again here
// even though the DTO layer validates first; neither layer alone is assumed
// sufficient.
func (s *Service) Create(ctx context.Context, input CreateInput, userID string) (Operation, error) {
	if err := validateAmount(input.Amount); err != nil {
		return Operation{}, err
	}
	if err := validateCurrency(input.Currency); err != nil {
		return Operation{}, err
	}
	if !ValidType(input.Type) {
		return Operation{}, apperr.Validation(`El tipo debe ser "buy" o "sell"`)
	}

	input.Currency = strings.ToUpper(input.Currency)

	op, err := s.repo.Create(ctx, input, userID)
	if err != nil {
		return Operation{}, apperr.Internal(err)
	}
	return op, nil
}

func validateAmount(amount float64) error {
	if amount <= 0 {
		return apperr.Validation("El monto debe ser mayor a 0")
	}
	return nil
}

func validateCurrency(currency string) error {
	upper := strings.ToUpper(currency)
	for _, code := range validCurrencies {
		if upper == code {
			return nil
		}
	}
	return apperr.Validation(fmt.Sprintf("Moneda no soportada: %s. Monedas válidas: %s",
		currency, strings.Join(validCurrencies, ", ")))
}
