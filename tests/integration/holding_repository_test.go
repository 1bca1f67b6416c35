package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/repositories"
)

func TestHoldingCRUD(t *testing.T) {
	tc := GetSuiteContainer(t)
	repo := repositories.NewHoldingRepository(tc.DB)
	ctx := context.Background()

	holding := &models.Holding{
		Name:             "Bitcoin",
		Symbol:           "BTC",
		Type:             models.HoldingTypeCrypto,
		Quantity:         decimal.NewFromFloat(0.5),
		PurchasePrice:    decimal.NewFromInt(60000),
		PurchaseCurrency: models.CurrencyUSD,
		PurchaseDate:     time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
	}

	err := repo.CreateHolding(ctx, holding)
	require.NoError(t, err)
	require.NotEmpty(t, holding.ID)
	assert.False(t, holding.CreatedAt.IsZero())

	fetched, err := repo.GetHolding(ctx, holding.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "BTC", fetched.Symbol)
	assert.True(t, fetched.Quantity.Equal(decimal.NewFromFloat(0.5)))
	assert.Equal(t, models.CurrencyUSD, fetched.PurchaseCurrency)

	fetched.Quantity = decimal.NewFromFloat(0.75)
	fetched.Name = "Bitcoin (cold wallet)"
	err = repo.UpdateHolding(ctx, fetched)
	require.NoError(t, err)

	updated, err := repo.GetHolding(ctx, fetched.ID)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.Quantity.Equal(decimal.NewFromFloat(0.75)))
	assert.Equal(t, "Bitcoin (cold wallet)", updated.Name)

	err = repo.DeleteHolding(ctx, holding.ID)
	require.NoError(t, err)

	gone, err := repo.GetHolding(ctx, holding.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}

func TestHoldingPurchaseCurrencyImmutable(t *testing.T) {
	tc := GetSuiteContainer(t)
	repo := repositories.NewHoldingRepository(tc.DB)
	ctx := context.Background()

	holding := &models.Holding{
		Name:             "Apple CEDEAR",
		Symbol:           "AAPL",
		Type:             models.HoldingTypeCedear,
		Quantity:         decimal.NewFromInt(10),
		PurchasePrice:    decimal.NewFromInt(15000),
		PurchaseCurrency: models.CurrencyARS,
		PurchaseDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateHolding(ctx, holding))
	defer repo.DeleteHolding(ctx, holding.ID)

	holding.PurchaseCurrency = models.CurrencyUSD
	err := repo.UpdateHolding(ctx, holding)
	require.Error(t, err)

	var validationErr *apperrors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "purchase_currency", validationErr.Field)

	// Stored row is untouched
	stored, err := repo.GetHolding(ctx, holding.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, models.CurrencyARS, stored.PurchaseCurrency)
}

func TestHoldingListFilters(t *testing.T) {
	tc := GetSuiteContainer(t)
	repo := repositories.NewHoldingRepository(tc.DB)
	ctx := context.Background()

	seeds := []*models.Holding{
		{Name: "Ethereum", Symbol: "ETH", Type: models.HoldingTypeCrypto, Quantity: decimal.NewFromInt(2), PurchasePrice: decimal.NewFromInt(2000), PurchaseCurrency: models.CurrencyUSD, PurchaseDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "Tether", Symbol: "USDT", Type: models.HoldingTypeCrypto, Quantity: decimal.NewFromInt(500), PurchasePrice: decimal.NewFromInt(1), PurchaseCurrency: models.CurrencyUSD, PurchaseDate: time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC)},
		{Name: "Common Fund", Symbol: "FIMA", Type: models.HoldingTypeFund, Quantity: decimal.NewFromInt(100), PurchasePrice: decimal.NewFromInt(1000), PurchaseCurrency: models.CurrencyARS, PurchaseDate: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)},
	}
	for _, h := range seeds {
		require.NoError(t, repo.CreateHolding(ctx, h))
		defer repo.DeleteHolding(ctx, h.ID)
	}

	crypto, err := repo.ListHoldings(ctx, &models.HoldingFilter{Type: models.HoldingTypeCrypto})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(crypto), 2)
	for _, h := range crypto {
		assert.Equal(t, models.HoldingTypeCrypto, h.Type)
	}

	bySymbol, err := repo.ListHoldings(ctx, &models.HoldingFilter{Symbol: "FIMA"})
	require.NoError(t, err)
	require.Len(t, bySymbol, 1)
	assert.Equal(t, "Common Fund", bySymbol[0].Name)
}
