package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// RateQuote represents an annual interest rate offered by a provider
// (wallet, bank, fixed term or money market fund) for a given currency.
type RateQuote struct {
	Provider          string           `json:"provider"`
	Type              string           `json:"type"`
	Currency          string           `json:"currency"`
	AnnualRatePercent decimal.Decimal  `json:"annual_rate_percent"`
	MinAmount         *decimal.Decimal `json:"min_amount,omitempty"`
	MaxAmount         *decimal.Decimal `json:"max_amount,omitempty"`
	TermDays          *int             `json:"term_days,omitempty"`
	Features          []string         `json:"features,omitempty"`
	LastUpdated       time.Time        `json:"last_updated"`
}

// Rate quote types
const (
	RateTypeWallet    = "wallet"
	RateTypeFixedTerm = "fixed"
	RateTypeBank      = "bank"
	RateTypeFund      = "fund"
)

// Sort fields accepted by rate filtering
const (
	SortFieldProvider   = "provider"
	SortFieldCurrency   = "currency"
	SortFieldAnnualRate = "annual_rate"
	SortFieldTermDays   = "term_days"
)

// Sort directions
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// Currency classes used by the rates screen to split peso products from
// dollar/crypto products.
const (
	CurrencyClassARS    = "ARS"
	CurrencyClassCrypto = "CRYPTO"
)

// RateFilter describes filtering and ordering of rate quote lists.
// Zero values mean "no filter"; an empty SortField keeps input order.
type RateFilter struct {
	SearchText    string `json:"search_text,omitempty"`
	Type          string `json:"type,omitempty"`
	Currency      string `json:"currency,omitempty"`
	SortField     string `json:"sort_field,omitempty"`
	SortDirection string `json:"sort_direction,omitempty"`
}

// IsValidRateType checks if the rate quote type is known
func IsValidRateType(t string) bool {
	switch t {
	case RateTypeWallet, RateTypeFixedTerm, RateTypeBank, RateTypeFund:
		return true
	}
	return false
}

// Validate validates the rate quote data.
// AnnualRatePercent is a percentage (65.0 means 65% TNA), never a fraction.
func (q *RateQuote) Validate() error {
	if q.Provider == "" {
		return errors.New("provider is required")
	}
	if !IsValidRateType(q.Type) {
		return errors.New("type must be one of wallet, fixed, bank, fund")
	}
	if q.Currency == "" {
		return errors.New("currency is required")
	}
	if q.AnnualRatePercent.IsNegative() {
		return errors.New("annual_rate_percent must not be negative")
	}
	if q.TermDays != nil && *q.TermDays <= 0 {
		return errors.New("term_days must be positive when set")
	}
	return nil
}
