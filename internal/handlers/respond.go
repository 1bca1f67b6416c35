package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	apperrors "github.com/centavohq/centavo/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeError maps domain errors to HTTP status codes: bad input to 400,
// malformed upstream quotes to 502, everything else to 500.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *apperrors.ErrValidation
	var rateErr *apperrors.ErrInvalidRate
	var quoteErr *apperrors.ErrMalformedQuote

	switch {
	case errors.As(err, &validationErr), errors.As(err, &rateErr):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &quoteErr):
		http.Error(w, err.Error(), http.StatusBadGateway)
	case strings.Contains(err.Error(), "not found"):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
