package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/centavohq/centavo/internal/models"
)

type stubHoldingRepo struct {
	holdings []*models.Holding
}

func (r *stubHoldingRepo) CreateHolding(ctx context.Context, h *models.Holding) error { return nil }
func (r *stubHoldingRepo) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	return nil, nil
}
func (r *stubHoldingRepo) ListHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error) {
	return r.holdings, nil
}
func (r *stubHoldingRepo) UpdateHolding(ctx context.Context, h *models.Holding) error { return nil }
func (r *stubHoldingRepo) DeleteHolding(ctx context.Context, id string) error         { return nil }

type stubFXRateService struct {
	rate decimal.Decimal
}

func (s *stubFXRateService) SaveReferenceRate(ctx context.Context, rate *models.FXRate) error {
	return nil
}
func (s *stubFXRateService) GetReferenceRate(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	return s.rate, nil
}
func (s *stubFXRateService) ListReferenceRates(ctx context.Context, start, end time.Time) ([]*models.FXRate, error) {
	return nil, nil
}

func TestPortfolioService_ValuationARSHolding(t *testing.T) {
	// BTC bought for 94.5M ARS; the live feed quotes 67500 USD. At a reference
	// rate of 1400 that is 94.5M ARS again, so the position is flat.
	repo := &stubHoldingRepo{holdings: []*models.Holding{{
		ID:               "btc-1",
		Name:             "Bitcoin",
		Symbol:           "BTC",
		Type:             models.HoldingTypeCrypto,
		Quantity:         decimal.NewFromInt(1),
		PurchasePrice:    decimal.NewFromInt(94500000),
		PurchaseCurrency: models.CurrencyARS,
	}}}
	prices := NewMockPriceProvider(map[string]decimal.Decimal{
		"BTC": decimal.NewFromInt(67500),
	})
	fxRates := &stubFXRateService{rate: decimal.NewFromInt(1400)}

	svc := NewPortfolioService(repo, prices, fxRates, zap.NewNop())
	report, err := svc.Valuation(context.Background(), models.CurrencyARS)
	if err != nil {
		t.Fatalf("Valuation failed: %v", err)
	}

	row := report.Rows[0]
	if !row.CurrentPrice.Equal(decimal.NewFromInt(94500000)) {
		t.Errorf("current price in ARS: got %s, want 94500000", row.CurrentPrice)
	}
	if !row.ChangePercent.IsZero() {
		t.Errorf("flat position must show zero change, got %s%%", row.ChangePercent)
	}
	if row.PriceIsStale {
		t.Error("live-priced row flagged stale")
	}
	if !report.Totals.TotalUSD.Equal(decimal.NewFromInt(67500)) {
		t.Errorf("total USD: got %s, want 67500", report.Totals.TotalUSD)
	}
}

func TestPortfolioService_ValuationMissingPrice(t *testing.T) {
	repo := &stubHoldingRepo{holdings: []*models.Holding{{
		ID:               "ggal-1",
		Name:             "Grupo Galicia",
		Symbol:           "GGAL",
		Type:             models.HoldingTypeCedear,
		Quantity:         decimal.NewFromInt(100),
		PurchasePrice:    decimal.NewFromInt(4300),
		PurchaseCurrency: models.CurrencyARS,
	}}}
	prices := NewMockPriceProvider(map[string]decimal.Decimal{})
	fxRates := &stubFXRateService{rate: decimal.NewFromInt(1400)}

	svc := NewPortfolioService(repo, prices, fxRates, zap.NewNop())
	report, err := svc.Valuation(context.Background(), models.CurrencyARS)
	if err != nil {
		t.Fatalf("Valuation failed: %v", err)
	}

	row := report.Rows[0]
	if !row.CurrentPrice.Equal(decimal.NewFromInt(4300)) {
		t.Errorf("expected fallback to purchase price, got %s", row.CurrentPrice)
	}
	if !row.PriceIsStale {
		t.Error("fallback row not flagged stale")
	}
}
