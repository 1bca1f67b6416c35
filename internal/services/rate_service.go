package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/centavohq/centavo/internal/engine"
	"github.com/centavohq/centavo/internal/models"
)

type rateService struct {
	interest InterestRateProvider
	exchange ExchangeRateProvider
	logger   *zap.Logger
}

// NewRateService creates a new rate aggregation service
func NewRateService(interest InterestRateProvider, exchange ExchangeRateProvider, logger *zap.Logger) RateService {
	return &rateService{interest: interest, exchange: exchange, logger: logger}
}

// ListRates fetches the provider's current offers, drops invalid entries and
// applies the filter's search, type/currency restriction and ordering.
func (s *rateService) ListRates(ctx context.Context, filter *models.RateFilter) ([]*models.RateQuote, error) {
	quotes, err := s.interest.GetRates(ctx)
	if err != nil {
		return nil, err
	}

	valid := make([]*models.RateQuote, 0, len(quotes))
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			s.logger.Warn("dropping invalid rate quote",
				zap.String("provider", q.Provider),
				zap.Error(err))
			continue
		}
		valid = append(valid, q)
	}

	if filter == nil {
		filter = &models.RateFilter{}
	}
	return engine.FilterAndSort(valid, filter), nil
}

// BestRate returns the highest offer for the currency, or nil when no
// provider quotes it.
func (s *rateService) BestRate(ctx context.Context, currency string) (*models.RateQuote, error) {
	quotes, err := s.ListRates(ctx, nil)
	if err != nil {
		return nil, err
	}
	return engine.BestRateForCurrency(quotes, currency), nil
}

// ListExchangeQuotes merges the dollar and crypto tables, dropping malformed
// quotes rather than failing the whole listing.
func (s *rateService) ListExchangeQuotes(ctx context.Context) ([]*models.ExchangeQuote, error) {
	dollar, err := s.exchange.GetDollarQuotes(ctx)
	if err != nil {
		return nil, err
	}
	crypto, err := s.exchange.GetCryptoQuotes(ctx)
	if err != nil {
		return nil, err
	}
	return s.dropMalformed(append(dollar, crypto...)), nil
}

// ExchangeSummary computes the best-in-class view of the dollar table: best
// buy, best sell, lowest spread and the per-quote spreads.
func (s *rateService) ExchangeSummary(ctx context.Context) (*models.ExchangeSummary, error) {
	dollar, err := s.exchange.GetDollarQuotes(ctx)
	if err != nil {
		return nil, err
	}
	quotes := s.dropMalformed(dollar)

	summary := &models.ExchangeSummary{
		BestBuy:      engine.BestBuy(quotes),
		BestSell:     engine.BestSell(quotes),
		LowestSpread: engine.LowestSpread(quotes),
		Quotes:       make([]models.QuoteSpread, 0, len(quotes)),
	}
	for _, q := range quotes {
		spread, err := engine.Spread(q)
		if err != nil {
			return nil, err
		}
		summary.Quotes = append(summary.Quotes, models.QuoteSpread{Quote: *q, Spread: *spread})
	}
	return summary, nil
}

func (s *rateService) dropMalformed(quotes []*models.ExchangeQuote) []*models.ExchangeQuote {
	valid := make([]*models.ExchangeQuote, 0, len(quotes))
	for _, q := range quotes {
		if err := q.Validate(); err != nil {
			s.logger.Warn("dropping malformed exchange quote",
				zap.String("name", q.Name),
				zap.Error(err))
			continue
		}
		valid = append(valid, q)
	}
	return valid
}
