package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/centavohq/centavo/internal/models"
)

// HTTPExchangeRateProvider fetches dollar and crypto quotes from
// comparadolar/criptoya-shaped HTTP APIs.
type HTTPExchangeRateProvider struct {
	dollarBaseURL string
	cryptoBaseURL string
	httpClient    *http.Client
}

// Coins and venues queried for crypto/ARS quotes.
var (
	cryptoCoins     = []string{"usdt", "usdc", "dai", "btc", "eth"}
	cryptoExchanges = []string{"binance", "letsbit", "buenbit", "tiendacrypto", "fiwind", "belo", "decrypto"}
)

// dollarQuoteResponse mirrors one entry of the dollar quotes API
type dollarQuoteResponse struct {
	Name   string          `json:"name"`
	Buy    decimal.Decimal `json:"buy"`
	Sell   decimal.Decimal `json:"sell"`
	Change decimal.Decimal `json:"change"`
}

// cryptoQuoteResponse mirrors one venue entry of the crypto quotes API.
// Total prices include venue fees; plain bid/ask are the fallback.
type cryptoQuoteResponse struct {
	TotalBid decimal.Decimal `json:"totalBid"`
	TotalAsk decimal.Decimal `json:"totalAsk"`
	Bid      decimal.Decimal `json:"bid"`
	Ask      decimal.Decimal `json:"ask"`
}

// NewHTTPExchangeRateProvider creates a provider against the given API roots.
func NewHTTPExchangeRateProvider(dollarBaseURL, cryptoBaseURL string) ExchangeRateProvider {
	return &HTTPExchangeRateProvider{
		dollarBaseURL: strings.TrimSuffix(dollarBaseURL, "/"),
		cryptoBaseURL: strings.TrimSuffix(cryptoBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (p *HTTPExchangeRateProvider) GetDollarQuotes(ctx context.Context) ([]*models.ExchangeQuote, error) {
	url := p.dollarBaseURL + "/quotes"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dollar quotes: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dollar quotes API returned status %d", resp.StatusCode)
	}

	var entries []dollarQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode dollar quotes: %w", err)
	}

	quotes := make([]*models.ExchangeQuote, 0, len(entries))
	for _, entry := range entries {
		quotes = append(quotes, &models.ExchangeQuote{
			Name:          entry.Name,
			Buy:           entry.Buy,
			Sell:          entry.Sell,
			ChangePercent: entry.Change,
			Reference:     strings.EqualFold(entry.Name, "oficial"),
		})
	}
	return quotes, nil
}

func (p *HTTPExchangeRateProvider) GetCryptoQuotes(ctx context.Context) ([]*models.ExchangeQuote, error) {
	var quotes []*models.ExchangeQuote
	for _, coin := range cryptoCoins {
		coinQuotes, err := p.fetchCoinQuotes(ctx, coin)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, coinQuotes...)
	}
	return quotes, nil
}

func (p *HTTPExchangeRateProvider) fetchCoinQuotes(ctx context.Context, coin string) ([]*models.ExchangeQuote, error) {
	url := fmt.Sprintf("%s/api/%s/ars", p.cryptoBaseURL, coin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s quotes: %w", coin, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crypto quotes API returned status %d for %s", resp.StatusCode, coin)
	}

	var venues map[string]cryptoQuoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&venues); err != nil {
		return nil, fmt.Errorf("failed to decode %s quotes: %w", coin, err)
	}

	symbol := strings.ToUpper(coin)
	var quotes []*models.ExchangeQuote
	for _, exchange := range cryptoExchanges {
		venue, ok := venues[exchange]
		if !ok {
			continue
		}
		buy, sell := venue.TotalBid, venue.TotalAsk
		if buy.IsZero() {
			buy = venue.Bid
		}
		if sell.IsZero() {
			sell = venue.Ask
		}
		quotes = append(quotes, &models.ExchangeQuote{
			Name: fmt.Sprintf("%s (%s)", exchange, symbol),
			Buy:  buy,
			Sell: sell,
			Coin: symbol,
		})
	}
	return quotes, nil
}
