package handlers

import (
	"net/http"

	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/services"
)

type RateHandler struct {
	service services.RateService
}

func NewRateHandler(service services.RateService) *RateHandler {
	return &RateHandler{service: service}
}

// HandleRates lists the current interest-rate offers.
// @Summary List interest-rate offers
// @Description Filter and sort the current wallet, fixed-term, bank and fund offers
// @Tags rates
// @Produce json
// @Param search query string false "Provider name substring, case-insensitive"
// @Param type query string false "Quote type (wallet, fixed, bank, fund)"
// @Param currency query string false "Currency code"
// @Param sort query string false "Sort field (provider, currency, annual_rate, term_days)"
// @Param dir query string false "Sort direction (asc, desc)"
// @Success 200 {array} models.RateQuote
// @Failure 500 {string} string "Internal server error"
// @Router /rates [get]
func (h *RateHandler) HandleRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := &models.RateFilter{
		SearchText:    r.URL.Query().Get("search"),
		Type:          r.URL.Query().Get("type"),
		Currency:      r.URL.Query().Get("currency"),
		SortField:     r.URL.Query().Get("sort"),
		SortDirection: r.URL.Query().Get("dir"),
	}

	quotes, err := h.service.ListRates(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

// HandleBestRate returns the best offer for a currency.
// @Summary Best offer for a currency
// @Description Return the quote with the highest annual rate for the given currency
// @Tags rates
// @Produce json
// @Param currency query string true "Currency code"
// @Success 200 {object} models.RateQuote
// @Failure 400 {string} string "Currency is required"
// @Failure 404 {string} string "No quotes for currency"
// @Router /rates/best [get]
func (h *RateHandler) HandleBestRate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		http.Error(w, "Currency is required", http.StatusBadRequest)
		return
	}

	best, err := h.service.BestRate(r.Context(), currency)
	if err != nil {
		writeError(w, err)
		return
	}
	if best == nil {
		http.Error(w, "No quotes for currency", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, best)
}

// HandleExchangeRates lists the dollar and crypto exchange quotes.
// @Summary List exchange quotes
// @Description Return the merged dollar and crypto/ARS quote tables
// @Tags exchange-rates
// @Produce json
// @Success 200 {array} models.ExchangeQuote
// @Failure 500 {string} string "Internal server error"
// @Router /exchange-rates [get]
func (h *RateHandler) HandleExchangeRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	quotes, err := h.service.ListExchangeQuotes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

// HandleExchangeSummary returns the best-in-class view of the dollar table.
// @Summary Exchange-rate summary
// @Description Best buy, best sell, lowest spread and per-quote spreads of the dollar table
// @Tags exchange-rates
// @Produce json
// @Success 200 {object} models.ExchangeSummary
// @Failure 502 {string} string "Malformed upstream quote"
// @Router /exchange-rates/summary [get]
func (h *RateHandler) HandleExchangeSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := h.service.ExchangeSummary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
