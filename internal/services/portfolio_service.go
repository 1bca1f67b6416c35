package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/centavohq/centavo/internal/engine"
	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/repositories"
)

type portfolioService struct {
	holdings repositories.HoldingRepository
	prices   PriceProvider
	fxRates  FXRateService
	logger   *zap.Logger
}

// NewPortfolioService creates a new portfolio valuation service
func NewPortfolioService(holdings repositories.HoldingRepository, prices PriceProvider, fxRates FXRateService, logger *zap.Logger) PortfolioService {
	return &portfolioService{holdings: holdings, prices: prices, fxRates: fxRates, logger: logger}
}

// Valuation prices the stored holdings at current prices and aggregates them
// in the requested display currency. Holdings whose symbol the price provider
// does not know are valued at their purchase price and flagged stale.
func (s *portfolioService) Valuation(ctx context.Context, displayCurrency string) (*models.PortfolioReport, error) {
	holdings, err := s.holdings.ListHoldings(ctx, &models.HoldingFilter{})
	if err != nil {
		return nil, err
	}

	referenceRate, err := s.fxRates.GetReferenceRate(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(holdings))
	seen := make(map[string]bool, len(holdings))
	for _, h := range holdings {
		if !seen[h.Symbol] {
			seen[h.Symbol] = true
			symbols = append(symbols, h.Symbol)
		}
	}

	currentPrices, err := s.prices.GetPrices(ctx, symbols)
	if err != nil {
		s.logger.Warn("price provider unavailable, valuing at purchase prices", zap.Error(err))
		currentPrices = nil
	}

	report, err := engine.Valuate(holdings, currentPrices, displayCurrency, referenceRate)
	if err != nil {
		return nil, err
	}
	s.logger.Info("portfolio valued",
		zap.Int("holdings", len(holdings)),
		zap.String("display_currency", displayCurrency),
		zap.String("reference_rate", referenceRate.String()))
	return report, nil
}
