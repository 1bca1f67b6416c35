package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavohq/centavo/internal/models"
)

// InterestRateProvider supplies the current interest-rate offers (wallets,
// fixed terms, banks, funds). Implementations fetch or mock; the engine only
// ever sees the returned quotes.
type InterestRateProvider interface {
	GetRates(ctx context.Context) ([]*models.RateQuote, error)
}

// ExchangeRateProvider supplies buy/sell quotes for the exchange-rate tables.
type ExchangeRateProvider interface {
	GetDollarQuotes(ctx context.Context) ([]*models.ExchangeQuote, error)
	GetCryptoQuotes(ctx context.Context) ([]*models.ExchangeQuote, error)
}

// PriceProvider supplies current asset prices keyed by symbol, quoted in USD.
type PriceProvider interface {
	GetPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error)
}

// FXRateService stores and resolves the USD/ARS reference rate that anchors
// every display-currency conversion.
type FXRateService interface {
	SaveReferenceRate(ctx context.Context, rate *models.FXRate) error
	GetReferenceRate(ctx context.Context, asOf time.Time) (decimal.Decimal, error)
	ListReferenceRates(ctx context.Context, start, end time.Time) ([]*models.FXRate, error)
}

// SimulationService runs the savings simulators and the installments-vs-cash
// comparison over provider-sourced or user-entered rates.
type SimulationService interface {
	SimulateFixedTerm(ctx context.Context, principal, annualRatePercent decimal.Decimal, termDays int) (*models.SimulationResult, error)
	SimulateWallet(ctx context.Context, principal, annualRatePercent decimal.Decimal, months int) (*models.SimulationResult, error)
	SimulateCrypto(ctx context.Context, principal, apyPercent decimal.Decimal, months int) (*models.SimulationResult, error)
	CompareInstallments(ctx context.Context, params *models.ComparisonParams) (*models.ComparisonResult, error)
}

// RateService ranks and filters provider quotes.
type RateService interface {
	ListRates(ctx context.Context, filter *models.RateFilter) ([]*models.RateQuote, error)
	BestRate(ctx context.Context, currency string) (*models.RateQuote, error)
	ListExchangeQuotes(ctx context.Context) ([]*models.ExchangeQuote, error)
	ExchangeSummary(ctx context.Context) (*models.ExchangeSummary, error)
}

// PortfolioService values the stored holdings at current prices.
type PortfolioService interface {
	Valuation(ctx context.Context, displayCurrency string) (*models.PortfolioReport, error)
}
