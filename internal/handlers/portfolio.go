package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/repositories"
	"github.com/centavohq/centavo/internal/services"
)

type PortfolioHandler struct {
	holdings  repositories.HoldingRepository
	portfolio services.PortfolioService
}

func NewPortfolioHandler(holdings repositories.HoldingRepository, portfolio services.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{holdings: holdings, portfolio: portfolio}
}

// HandleHoldings handles collection-level operations for holdings.
// @Summary List or create holdings
// @Description Get the stored holdings or register a new position
// @Tags holdings
// @Accept json
// @Produce json
// @Param symbol query string false "Filter by symbol"
// @Param type query string false "Filter by holding type"
// @Success 200 {array} models.Holding
// @Success 201 {object} models.Holding
// @Failure 400 {string} string "Invalid request"
// @Failure 500 {string} string "Internal server error"
// @Router /holdings [get]
// @Router /holdings [post]
func (h *PortfolioHandler) HandleHoldings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		h.listHoldings(w, r)
	case http.MethodPost:
		h.createHolding(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleHolding handles item-level operations for a holding.
// @Summary Get, update, or delete a holding
// @Description Operate on a single holding by ID. The purchase currency cannot be changed.
// @Tags holdings
// @Accept json
// @Produce json
// @Param id path string true "Holding ID"
// @Success 200 {object} models.Holding
// @Failure 400 {string} string "Invalid request"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal server error"
// @Router /holdings/{id} [get]
// @Router /holdings/{id} [put]
// @Router /holdings/{id} [delete]
func (h *PortfolioHandler) HandleHolding(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id := mux.Vars(r)["id"]
	if id == "" {
		http.Error(w, "Holding ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getHolding(w, r, id)
	case http.MethodPut:
		h.updateHolding(w, r, id)
	case http.MethodDelete:
		h.deleteHolding(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *PortfolioHandler) listHoldings(w http.ResponseWriter, r *http.Request) {
	filter := &models.HoldingFilter{
		Symbol: r.URL.Query().Get("symbol"),
		Type:   r.URL.Query().Get("type"),
	}

	holdings, err := h.holdings.ListHoldings(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if holdings == nil {
		holdings = []*models.Holding{}
	}
	writeJSON(w, http.StatusOK, holdings)
}

func (h *PortfolioHandler) createHolding(w http.ResponseWriter, r *http.Request) {
	var holding models.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := holding.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.holdings.CreateHolding(r.Context(), &holding); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, holding)
}

func (h *PortfolioHandler) getHolding(w http.ResponseWriter, r *http.Request, id string) {
	holding, err := h.holdings.GetHolding(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if holding == nil {
		http.Error(w, "Holding not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, holding)
}

func (h *PortfolioHandler) updateHolding(w http.ResponseWriter, r *http.Request, id string) {
	var holding models.Holding
	if err := json.NewDecoder(r.Body).Decode(&holding); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	holding.ID = id

	if err := holding.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.holdings.UpdateHolding(r.Context(), &holding); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, holding)
}

func (h *PortfolioHandler) deleteHolding(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.holdings.DeleteHolding(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleValuation values the portfolio in the requested display currency.
// @Summary Portfolio valuation
// @Description Price every holding at current prices, convert into the display currency on the stored reference rate and aggregate
// @Tags portfolio
// @Produce json
// @Param currency query string false "Display currency (USD or ARS, default USD)"
// @Success 200 {object} models.PortfolioReport
// @Failure 400 {string} string "Invalid display currency"
// @Failure 500 {string} string "Internal server error"
// @Router /portfolio/valuation [get]
func (h *PortfolioHandler) HandleValuation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	currency := r.URL.Query().Get("currency")
	if currency == "" {
		currency = models.CurrencyUSD
	}

	report, err := h.portfolio.Valuation(r.Context(), currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
