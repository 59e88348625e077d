package operations

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/trade-desk/trade_desk/internal/apperr"
)

func TestCreatePersistsOperation(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ownerID := uuid.NewString()

	op, err := svc.Create(context.Background(), CreateInput{Type: TypeBuy, Amount: 150.5, Currency: "USD"}, ownerID)
	require.NoError(t, err)

	require.NotEmpty(t, op.ID)
	require.Equal(t, TypeBuy, op.Type)
	require.Equal(t, 150.5, op.Amount)
	require.Equal(t, "USD", op.Currency)
	require.Equal(t, ownerID, op.UserID)
	require.False(t, op.CreatedAt.IsZero())

	stored, err := repo.FindByID(context.Background(), op.ID)
	require.NoError(t, err)
	require.Equal(t, op.ID, stored.ID)
}

func TestCreateRejectsNonPositiveAmount(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	for _, amount := range []float64{0, -1, -0.01} {
		_, err := svc.Create(context.Background(), CreateInput{Type: TypeSell, Amount: amount, Currency: "EUR"}, uuid.NewString())
		appErr, ok := apperr.As(err)
		require.True(t, ok, "amount %v", amount)
		require.Equal(t, apperr.KindValidation, appErr.Kind)
		require.Contains(t, appErr.Message, "mayor a 0")
	}
}

func TestCreateRejectsUnsupportedCurrency(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Create(context.Background(), CreateInput{Type: TypeBuy, Amount: 10, Currency: "XYZ"}, uuid.NewString())
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindValidation, appErr.Kind)
	require.Contains(t, appErr.Message, "Moneda no soportada: XYZ")
	require.Contains(t, appErr.Message, "USD, EUR, GBP, JPY, AUD, CAD, CHF, CNY, SEK, NZD")
}

func TestCreateNormalizesCurrencyCase(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	op, err := svc.Create(context.Background(), CreateInput{Type: TypeBuy, Amount: 10, Currency: "usd"}, uuid.NewString())
	require.NoError(t, err)
	require.Equal(t, "USD", op.Currency)
}

func TestCreateRejectsUnknownType(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	_, err := svc.Create(context.Background(), CreateInput{Type: "transfer", Amount: 10, Currency: "USD"}, uuid.NewString())
	appErr, ok := apperr.As(err)
	require.True(t, ok)
	require.Equal(t, apperr.KindValidation, appErr.Kind)
	require.Contains(t, appErr.Message, `"buy" o "sell"`)
}

func TestFindByUserNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ownerID := uuid.NewString()

	for _, currency := range []string{"USD", "EUR", "GBP"} {
		_, err := svc.Create(context.Background(), CreateInput{Type: TypeBuy, Amount: 1, Currency: currency}, ownerID)
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), CreateInput{Type: TypeSell, Amount: 2, Currency: "USD"}, uuid.NewString())
	require.NoError(t, err)

	ops, err := repo.FindByUser(context.Background(), ownerID)
	require.NoError(t, err)
	require.Len(t, ops, 3)
	for i := 1; i < len(ops); i++ {
		require.False(t, ops[i].CreatedAt.After(ops[i-1].CreatedAt), "expected newest first")
	}
}

func TestValidCurrenciesAreAccepted(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	for _, code := range validCurrencies {
		_, err := svc.Create(context.Background(), CreateInput{Type: TypeSell, Amount: 0.01, Currency: strings.ToLower(code)}, uuid.NewString())
		require.NoError(t, err, "currency %s", code)
	}
}
