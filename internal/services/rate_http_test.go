package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
)

func TestHTTPExchangeRateProvider_GetDollarQuotes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quotes" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "oficial", "buy": 1036.5, "sell": 1096.5, "change": 0},
			{"name": "Blue", "buy": 1335, "sell": 1355, "change": 0.5}
		]`))
	}))
	defer ts.Close()

	provider := NewHTTPExchangeRateProvider(ts.URL, ts.URL)
	quotes, err := provider.GetDollarQuotes(context.Background())
	if err != nil {
		t.Fatalf("GetDollarQuotes failed: %v", err)
	}

	if len(quotes) != 2 {
		t.Fatalf("expected 2 quotes, got %d", len(quotes))
	}
	if !quotes[0].Reference {
		t.Error("expected oficial quote to be marked as reference")
	}
	if quotes[1].Reference {
		t.Error("expected Blue quote not to be marked as reference")
	}
	if !quotes[1].Buy.Equal(decimal.NewFromInt(1335)) {
		t.Errorf("expected Blue buy 1335, got %s", quotes[1].Buy)
	}
}

func TestHTTPExchangeRateProvider_GetDollarQuotes_UpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	provider := NewHTTPExchangeRateProvider(ts.URL, ts.URL)
	if _, err := provider.GetDollarQuotes(context.Background()); err == nil {
		t.Fatal("expected error on upstream 502")
	}
}

func TestHTTPExchangeRateProvider_GetCryptoQuotes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Same body for every coin endpoint; binance carries total prices,
		// letsbit only plain bid/ask.
		w.Write([]byte(`{
			"binance": {"totalBid": 1150, "totalAsk": 1155, "bid": 1148, "ask": 1157},
			"letsbit": {"bid": 1145, "ask": 1148},
			"unknownvenue": {"totalBid": 1, "totalAsk": 2}
		}`))
	}))
	defer ts.Close()

	provider := NewHTTPExchangeRateProvider(ts.URL, ts.URL)
	quotes, err := provider.GetCryptoQuotes(context.Background())
	if err != nil {
		t.Fatalf("GetCryptoQuotes failed: %v", err)
	}

	// 2 known venues per coin, 5 coins
	if len(quotes) != 2*len(cryptoCoins) {
		t.Fatalf("expected %d quotes, got %d", 2*len(cryptoCoins), len(quotes))
	}

	first := quotes[0]
	if first.Name != "binance (USDT)" {
		t.Errorf("expected first quote binance (USDT), got %s", first.Name)
	}
	if !first.Buy.Equal(decimal.NewFromInt(1150)) {
		t.Errorf("expected total bid 1150, got %s", first.Buy)
	}

	second := quotes[1]
	if !second.Buy.Equal(decimal.NewFromInt(1145)) {
		t.Errorf("expected fallback to plain bid 1145, got %s", second.Buy)
	}
	if second.Coin != "USDT" {
		t.Errorf("expected coin USDT, got %s", second.Coin)
	}
}
