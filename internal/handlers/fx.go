package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/services"
)

type FXHandler struct {
	service services.FXRateService
}

func NewFXHandler(service services.FXRateService) *FXHandler {
	return &FXHandler{service: service}
}

// HandleFXRates handles the USD/ARS reference-rate history.
// @Summary List or record reference rates
// @Description Get the stored USD/ARS reference rates in a date range, or record a new one
// @Tags fx-rates
// @Accept json
// @Produce json
// @Param start query string false "Start date (YYYY-MM-DD)"
// @Param end query string false "End date (YYYY-MM-DD)"
// @Success 200 {array} models.FXRate
// @Failure 400 {string} string "Invalid request"
// @Failure 500 {string} string "Internal server error"
// @Router /fx-rates [get]
// @Router /fx-rates [post]
func (h *FXHandler) HandleFXRates(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch r.Method {
	case http.MethodGet:
		h.listRates(w, r)
	case http.MethodPost:
		h.saveRate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *FXHandler) listRates(w http.ResponseWriter, r *http.Request) {
	end := time.Now()
	start := end.AddDate(0, -1, 0)

	if s := r.URL.Query().Get("start"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			http.Error(w, "Invalid start date", http.StatusBadRequest)
			return
		}
		start = parsed
	}
	if e := r.URL.Query().Get("end"); e != "" {
		parsed, err := time.Parse("2006-01-02", e)
		if err != nil {
			http.Error(w, "Invalid end date", http.StatusBadRequest)
			return
		}
		end = parsed
	}

	rates, err := h.service.ListReferenceRates(r.Context(), start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	if rates == nil {
		rates = []*models.FXRate{}
	}
	writeJSON(w, http.StatusOK, rates)
}

func (h *FXHandler) saveRate(w http.ResponseWriter, r *http.Request) {
	var rate models.FXRate
	if err := json.NewDecoder(r.Body).Decode(&rate); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if rate.Date.IsZero() {
		rate.Date = time.Now()
	}

	if err := rate.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SaveReferenceRate(r.Context(), &rate); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rate)
}
