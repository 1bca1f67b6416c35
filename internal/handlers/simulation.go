package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/centavohq/centavo/internal/services"
)

type SimulationHandler struct {
	service services.SimulationService
}

func NewSimulationHandler(service services.SimulationService) *SimulationHandler {
	return &SimulationHandler{service: service}
}

type fixedTermRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	TermDays          int             `json:"term_days"`
}

type monthlyRequest struct {
	Principal         decimal.Decimal `json:"principal"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Months            int             `json:"months"`
}

// HandleFixedTerm simulates a fixed-term deposit.
// @Summary Simulate a fixed-term deposit
// @Description Project a principal compounded monthly at the bank's TNA over a term in days
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body fixedTermRequest true "Simulation parameters"
// @Success 200 {object} models.SimulationResult
// @Failure 400 {string} string "Invalid parameters"
// @Router /simulations/fixed-term [post]
func (h *SimulationHandler) HandleFixedTerm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req fixedTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SimulateFixedTerm(r.Context(), req.Principal, req.AnnualRatePercent, req.TermDays)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleWallet simulates a remunerated wallet balance.
// @Summary Simulate a remunerated wallet
// @Description Project a wallet balance compounded monthly, including the effective annual rate
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body monthlyRequest true "Simulation parameters"
// @Success 200 {object} models.SimulationResult
// @Failure 400 {string} string "Invalid parameters"
// @Router /simulations/wallet [post]
func (h *SimulationHandler) HandleWallet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req monthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SimulateWallet(r.Context(), req.Principal, req.AnnualRatePercent, req.Months)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleCrypto simulates a staked crypto balance.
// @Summary Simulate a crypto yield position
// @Description Project a staked balance compounded monthly at the platform's APY
// @Tags simulations
// @Accept json
// @Produce json
// @Param request body monthlyRequest true "Simulation parameters"
// @Success 200 {object} models.SimulationResult
// @Failure 400 {string} string "Invalid parameters"
// @Router /simulations/crypto [post]
func (h *SimulationHandler) HandleCrypto(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req monthlyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.SimulateCrypto(r.Context(), req.Principal, req.AnnualRatePercent, req.Months)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
