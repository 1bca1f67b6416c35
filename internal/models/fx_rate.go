package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// FXRate is a stored reference exchange rate (e.g. the CCL quote used to
// anchor USD/ARS conversion on a given day).
type FXRate struct {
	ID           int             `json:"id" db:"id"`
	FromCurrency string          `json:"from_currency" db:"from_currency"`
	ToCurrency   string          `json:"to_currency" db:"to_currency"`
	Rate         decimal.Decimal `json:"rate" db:"rate"`
	Date         time.Time       `json:"date" db:"date"`
	Source       string          `json:"source" db:"source"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

// Reference rate sources
const (
	FXSourceCCL      = "ccl"
	FXSourceOfficial = "oficial"
	FXSourceManual   = "manual"
	FXSourceMock     = "mock"
)

// IsValidFXSource checks if the rate source is known
func IsValidFXSource(source string) bool {
	switch source {
	case FXSourceCCL, FXSourceOfficial, FXSourceManual, FXSourceMock:
		return true
	}
	return false
}

// Validate validates the FX rate data
func (fx *FXRate) Validate() error {
	if fx.FromCurrency == "" {
		return errors.New("from_currency is required")
	}
	if fx.ToCurrency == "" {
		return errors.New("to_currency is required")
	}
	if fx.FromCurrency == fx.ToCurrency {
		return errors.New("from_currency and to_currency must be different")
	}
	if !fx.Rate.IsPositive() {
		return errors.New("rate must be positive")
	}
	if fx.Date.IsZero() {
		return errors.New("date is required")
	}
	if !IsValidFXSource(fx.Source) {
		return errors.New("source is not recognized")
	}
	return nil
}
