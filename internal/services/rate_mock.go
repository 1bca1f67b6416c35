package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavohq/centavo/internal/models"
)

// MockInterestRateProvider serves a fixed set of rate offers for development
// and testing.
type MockInterestRateProvider struct{}

// NewMockInterestRateProvider creates a new mock interest rate provider
func NewMockInterestRateProvider() InterestRateProvider {
	return &MockInterestRateProvider{}
}

func (p *MockInterestRateProvider) GetRates(ctx context.Context) ([]*models.RateQuote, error) {
	updated := time.Now()
	term30 := 30
	minFixed := decimal.NewFromInt(1000)

	return []*models.RateQuote{
		{Provider: "Mercado Pago", Type: models.RateTypeWallet, Currency: models.CurrencyARS, AnnualRatePercent: decimal.NewFromFloat(59.5), LastUpdated: updated},
		{Provider: "Ualá", Type: models.RateTypeWallet, Currency: models.CurrencyARS, AnnualRatePercent: decimal.NewFromInt(48), LastUpdated: updated},
		{Provider: "Personal Pay", Type: models.RateTypeWallet, Currency: models.CurrencyARS, AnnualRatePercent: decimal.NewFromFloat(54.3), LastUpdated: updated},
		{Provider: "Banco Nación", Type: models.RateTypeFixedTerm, Currency: models.CurrencyARS, AnnualRatePercent: decimal.NewFromInt(65), MinAmount: &minFixed, TermDays: &term30, LastUpdated: updated},
		{Provider: "Banco Galicia", Type: models.RateTypeFixedTerm, Currency: models.CurrencyARS, AnnualRatePercent: decimal.NewFromFloat(62.5), TermDays: &term30, LastUpdated: updated},
		{Provider: "Fima Premium", Type: models.RateTypeFund, Currency: models.CurrencyARS, AnnualRatePercent: decimal.NewFromInt(72), LastUpdated: updated},
		{Provider: "Buenbit", Type: models.RateTypeWallet, Currency: models.CurrencyUSDT, AnnualRatePercent: decimal.NewFromFloat(8.5), LastUpdated: updated},
		{Provider: "Letsbit", Type: models.RateTypeWallet, Currency: models.CurrencyUSDC, AnnualRatePercent: decimal.NewFromInt(8), LastUpdated: updated},
		{Provider: "Fiwind", Type: models.RateTypeWallet, Currency: models.CurrencyDAI, AnnualRatePercent: decimal.NewFromFloat(8.8), LastUpdated: updated},
		{Provider: "Buenbit", Type: models.RateTypeWallet, Currency: models.CurrencyBTC, AnnualRatePercent: decimal.NewFromFloat(2.5), LastUpdated: updated},
		{Provider: "Letsbit", Type: models.RateTypeWallet, Currency: models.CurrencyETH, AnnualRatePercent: decimal.NewFromInt(3), LastUpdated: updated},
	}, nil
}

// MockExchangeRateProvider serves the quote tables the UI falls back to when
// the upstream APIs are unreachable.
type MockExchangeRateProvider struct{}

// NewMockExchangeRateProvider creates a new mock exchange rate provider
func NewMockExchangeRateProvider() ExchangeRateProvider {
	return &MockExchangeRateProvider{}
}

func (p *MockExchangeRateProvider) GetDollarQuotes(ctx context.Context) ([]*models.ExchangeQuote, error) {
	return []*models.ExchangeQuote{
		{Name: "Oficial", Buy: decimal.NewFromFloat(1036.5), Sell: decimal.NewFromFloat(1096.5), ChangePercent: decimal.Zero, Reference: true},
		{Name: "Blue", Buy: decimal.NewFromInt(1335), Sell: decimal.NewFromInt(1355), ChangePercent: decimal.NewFromFloat(0.5)},
		{Name: "Plus", Buy: decimal.NewFromFloat(1347.2), Sell: decimal.NewFromFloat(1349.6), ChangePercent: decimal.NewFromFloat(0.2)},
		{Name: "Prex", Buy: decimal.NewFromFloat(1344.1), Sell: decimal.NewFromFloat(1351.5), ChangePercent: decimal.NewFromFloat(0.1)},
		{Name: "Cocos", Buy: decimal.NewFromFloat(1357.2), Sell: decimal.NewFromFloat(1359.6), ChangePercent: decimal.NewFromFloat(0.3)},
	}, nil
}

func (p *MockExchangeRateProvider) GetCryptoQuotes(ctx context.Context) ([]*models.ExchangeQuote, error) {
	return []*models.ExchangeQuote{
		{Name: "Binance (USDT)", Buy: decimal.NewFromInt(1150), Sell: decimal.NewFromInt(1155), ChangePercent: decimal.NewFromFloat(0.3), Coin: models.CurrencyUSDT},
		{Name: "Letsbit (USDT)", Buy: decimal.NewFromInt(1145), Sell: decimal.NewFromInt(1148), ChangePercent: decimal.NewFromFloat(-0.2), Coin: models.CurrencyUSDT},
		{Name: "Buenbit (USDT)", Buy: decimal.NewFromInt(1152), Sell: decimal.NewFromInt(1157), ChangePercent: decimal.NewFromFloat(0.1), Coin: models.CurrencyUSDT},
		{Name: "Buenbit (DAI)", Buy: decimal.NewFromInt(1149), Sell: decimal.NewFromInt(1156), ChangePercent: decimal.NewFromFloat(0.2), Coin: models.CurrencyDAI},
	}, nil
}

// MockPriceProvider serves current USD prices from a fixed table. Symbols
// without an entry are simply absent from the result; the valuator falls back
// to the purchase price.
type MockPriceProvider struct {
	prices map[string]decimal.Decimal
}

// NewMockPriceProvider creates a mock price provider with the given prices
func NewMockPriceProvider(prices map[string]decimal.Decimal) PriceProvider {
	if prices == nil {
		prices = map[string]decimal.Decimal{
			"BTC":  decimal.NewFromInt(67500),
			"ETH":  decimal.NewFromInt(2600),
			"USDT": decimal.NewFromInt(1),
		}
	}
	return &MockPriceProvider{prices: prices}
}

func (p *MockPriceProvider) GetPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	result := make(map[string]decimal.Decimal, len(symbols))
	for _, symbol := range symbols {
		if price, ok := p.prices[symbol]; ok {
			result[symbol] = price
		}
	}
	return result, nil
}
