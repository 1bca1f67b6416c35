package models

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/centavohq/centavo/internal/errors"
)

// ExchangeQuote represents a buy/sell quote for an exchange-rate table
// (dollar quotes per venue, or a crypto/ARS quote per exchange).
type ExchangeQuote struct {
	Name          string          `json:"name"`
	Buy           decimal.Decimal `json:"buy"`
	Sell          decimal.Decimal `json:"sell"`
	ChangePercent decimal.Decimal `json:"change_percent"`
	Reference     bool            `json:"reference"`
	Coin          string          `json:"coin,omitempty"`
}

// SpreadResult holds the bid/ask spread of a quote in absolute terms and as a
// percentage of the buy price.
type SpreadResult struct {
	Absolute decimal.Decimal `json:"absolute"`
	Percent  decimal.Decimal `json:"percent"`
}

// QuoteSpread pairs a quote with its computed spread for rate tables.
type QuoteSpread struct {
	Quote  ExchangeQuote `json:"quote"`
	Spread SpreadResult  `json:"spread"`
}

// ExchangeSummary is the best-in-class view of an exchange-rate table.
type ExchangeSummary struct {
	BestBuy      *ExchangeQuote `json:"best_buy,omitempty"`
	BestSell     *ExchangeQuote `json:"best_sell,omitempty"`
	LowestSpread *ExchangeQuote `json:"lowest_spread,omitempty"`
	Quotes       []QuoteSpread  `json:"quotes"`
}

// Validate rejects malformed quotes. A quote with sell below buy is bad
// upstream data and is dropped, never inverted.
func (q *ExchangeQuote) Validate() error {
	if !q.Buy.IsPositive() {
		return &apperrors.ErrMalformedQuote{Quote: q.Name, Message: "buy price must be positive"}
	}
	if q.Sell.LessThan(q.Buy) {
		return &apperrors.ErrMalformedQuote{Quote: q.Name, Message: "sell price below buy price"}
	}
	return nil
}
