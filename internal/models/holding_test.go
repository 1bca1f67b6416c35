package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestHoldingValidate(t *testing.T) {
	valid := func() *Holding {
		return &Holding{
			Name:             "Bitcoin",
			Symbol:           "BTC",
			Type:             HoldingTypeCrypto,
			Quantity:         decimal.NewFromFloat(0.5),
			PurchasePrice:    decimal.NewFromInt(60000),
			PurchaseCurrency: CurrencyUSD,
		}
	}

	tests := []struct {
		name          string
		mutate        func(h *Holding)
		expectedError string
	}{
		{
			name:   "valid holding",
			mutate: func(h *Holding) {},
		},
		{
			name:          "missing name",
			mutate:        func(h *Holding) { h.Name = "" },
			expectedError: "name is required",
		},
		{
			name:          "missing symbol",
			mutate:        func(h *Holding) { h.Symbol = "" },
			expectedError: "symbol is required",
		},
		{
			name:          "unknown type",
			mutate:        func(h *Holding) { h.Type = "bond" },
			expectedError: "type must be one of crypto, cedear, stock, fund, other",
		},
		{
			name:          "zero quantity",
			mutate:        func(h *Holding) { h.Quantity = decimal.Zero },
			expectedError: "quantity must be positive",
		},
		{
			name:          "negative purchase price",
			mutate:        func(h *Holding) { h.PurchasePrice = decimal.NewFromInt(-1) },
			expectedError: "purchase_price must be positive",
		},
		{
			name:          "unsupported purchase currency",
			mutate:        func(h *Holding) { h.PurchaseCurrency = "EUR" },
			expectedError: "purchase_currency must be USD or ARS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := valid()
			tt.mutate(h)
			err := h.Validate()

			if tt.expectedError == "" {
				if err != nil {
					t.Errorf("expected no error but got: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error but got none")
			}
			if err.Error() != tt.expectedError {
				t.Errorf("expected error %q but got %q", tt.expectedError, err.Error())
			}
		})
	}
}
