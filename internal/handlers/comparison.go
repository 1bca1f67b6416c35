package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/services"
)

type ComparisonHandler struct {
	service services.SimulationService
}

func NewComparisonHandler(service services.SimulationService) *ComparisonHandler {
	return &ComparisonHandler{service: service}
}

// HandleInstallments compares paying in installments against paying cash.
// @Summary Compare installments vs cash
// @Description Discount each installment by cumulative monthly inflation and compare the total present value against the cash price
// @Tags comparisons
// @Accept json
// @Produce json
// @Param request body models.ComparisonParams true "Comparison parameters"
// @Success 200 {object} models.ComparisonResult
// @Failure 400 {string} string "Invalid parameters"
// @Router /comparisons/installments [post]
func (h *ComparisonHandler) HandleInstallments(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params models.ComparisonParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareInstallments(r.Context(), &params)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
