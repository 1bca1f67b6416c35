package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/repositories"
)

func TestFXRateUpsertAndLatestLookup(t *testing.T) {
	tc := GetSuiteContainer(t)
	repo := repositories.NewFXRateRepository(tc.DB)
	ctx := context.Background()

	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveRate(ctx, &models.FXRate{
		FromCurrency: models.CurrencyUSD,
		ToCurrency:   models.CurrencyARS,
		Rate:         decimal.NewFromInt(1380),
		Date:         day1,
		Source:       models.FXSourceCCL,
	}))
	require.NoError(t, repo.SaveRate(ctx, &models.FXRate{
		FromCurrency: models.CurrencyUSD,
		ToCurrency:   models.CurrencyARS,
		Rate:         decimal.NewFromInt(1400),
		Date:         day2,
		Source:       models.FXSourceCCL,
	}))

	// Same (pair, date, source) updates in place instead of duplicating
	require.NoError(t, repo.SaveRate(ctx, &models.FXRate{
		FromCurrency: models.CurrencyUSD,
		ToCurrency:   models.CurrencyARS,
		Rate:         decimal.NewFromInt(1410),
		Date:         day2,
		Source:       models.FXSourceCCL,
	}))

	latest, err := repo.GetLatestRate(ctx, models.CurrencyUSD, models.CurrencyARS, day2.Add(24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.True(t, latest.Rate.Equal(decimal.NewFromInt(1410)), "expected upserted rate, got %s", latest.Rate)

	// As-of lookup ignores rates recorded after the cutoff
	older, err := repo.GetLatestRate(ctx, models.CurrencyUSD, models.CurrencyARS, day1)
	require.NoError(t, err)
	require.NotNil(t, older)
	assert.True(t, older.Rate.Equal(decimal.NewFromInt(1380)))

	rates, err := repo.ListRates(ctx, models.CurrencyUSD, models.CurrencyARS, day1, day2)
	require.NoError(t, err)
	require.Len(t, rates, 2)
	assert.True(t, rates[0].Date.Before(rates[1].Date))
}

func TestFXRateLookupWithoutHistory(t *testing.T) {
	tc := GetSuiteContainer(t)
	repo := repositories.NewFXRateRepository(tc.DB)
	ctx := context.Background()

	rate, err := repo.GetLatestRate(ctx, models.CurrencyARS, "BRL", time.Now())
	require.NoError(t, err)
	assert.Nil(t, rate)
}

func TestFXRateRejectsInvalid(t *testing.T) {
	tc := GetSuiteContainer(t)
	repo := repositories.NewFXRateRepository(tc.DB)
	ctx := context.Background()

	err := repo.SaveRate(ctx, &models.FXRate{
		FromCurrency: models.CurrencyUSD,
		ToCurrency:   models.CurrencyARS,
		Rate:         decimal.Zero,
		Date:         time.Now(),
		Source:       models.FXSourceManual,
	})
	require.Error(t, err)
}
