package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CoinGecko-based implementation (no API key required for basic endpoints)
type CoinGeckoPriceProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewCoinGeckoPriceProvider creates a price provider against the CoinGecko
// simple-price endpoint. An empty baseURL uses the public API.
func NewCoinGeckoPriceProvider(baseURL string) PriceProvider {
	if baseURL == "" {
		baseURL = "https://api.coingecko.com"
	}
	return &CoinGeckoPriceProvider{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetPrices fetches USD prices for the known symbols in one batch call.
// Symbols without a CoinGecko mapping are skipped, not failed: the valuator
// falls back to purchase prices for them.
func (p *CoinGeckoPriceProvider) GetPrices(ctx context.Context, symbols []string) (map[string]decimal.Decimal, error) {
	ids := make([]string, 0, len(symbols))
	idToSymbol := make(map[string]string, len(symbols))
	for _, symbol := range symbols {
		id := mapSymbolToCoinGeckoID(symbol)
		if id == "" {
			continue
		}
		ids = append(ids, id)
		idToSymbol[id] = symbol
	}
	if len(ids) == 0 {
		return map[string]decimal.Decimal{}, nil
	}

	url := fmt.Sprintf("%s/api/v3/simple/price?ids=%s&vs_currencies=usd", p.baseURL, strings.Join(ids, ","))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("price API returned status %d", resp.StatusCode)
	}

	var payload map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode prices: %w", err)
	}

	prices := make(map[string]decimal.Decimal, len(payload))
	for id, quote := range payload {
		symbol, ok := idToSymbol[id]
		if !ok {
			continue
		}
		if usd, ok := quote["usd"]; ok {
			prices[symbol] = decimal.NewFromFloat(usd)
		}
	}
	return prices, nil
}

func mapSymbolToCoinGeckoID(symbol string) string {
	switch strings.ToUpper(symbol) {
	case "BTC":
		return "bitcoin"
	case "ETH":
		return "ethereum"
	case "USDT":
		return "tether"
	case "USDC":
		return "usd-coin"
	case "DAI":
		return "dai"
	case "SOL":
		return "solana"
	}
	return ""
}
