package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Holding represents an investment position entered by the user: a quantity
// of an asset bought at a price in a given currency. The purchase currency is
// immutable after creation; re-denominating a historical purchase is not a
// supported operation.
type Holding struct {
	ID               string          `json:"id" db:"id"`
	Name             string          `json:"name" db:"name"`
	Symbol           string          `json:"symbol" db:"symbol"`
	Type             string          `json:"type" db:"type"`
	Quantity         decimal.Decimal `json:"quantity" db:"quantity"`
	PurchasePrice    decimal.Decimal `json:"purchase_price" db:"purchase_price"`
	PurchaseCurrency string          `json:"purchase_currency" db:"purchase_currency"`
	PurchaseDate     time.Time       `json:"purchase_date" db:"purchase_date"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// Holding types
const (
	HoldingTypeCrypto = "crypto"
	HoldingTypeCedear = "cedear"
	HoldingTypeStock  = "stock"
	HoldingTypeFund   = "fund"
	HoldingTypeOther  = "other"
)

// IsValidHoldingType checks if the holding type is known
func IsValidHoldingType(t string) bool {
	switch t {
	case HoldingTypeCrypto, HoldingTypeCedear, HoldingTypeStock, HoldingTypeFund, HoldingTypeOther:
		return true
	}
	return false
}

// Validate validates the holding data
func (h *Holding) Validate() error {
	if h.Name == "" {
		return errors.New("name is required")
	}
	if h.Symbol == "" {
		return errors.New("symbol is required")
	}
	if !IsValidHoldingType(h.Type) {
		return errors.New("type must be one of crypto, cedear, stock, fund, other")
	}
	if !h.Quantity.IsPositive() {
		return errors.New("quantity must be positive")
	}
	if !h.PurchasePrice.IsPositive() {
		return errors.New("purchase_price must be positive")
	}
	if !IsDisplayCurrency(h.PurchaseCurrency) {
		return errors.New("purchase_currency must be USD or ARS")
	}
	return nil
}

// HoldingFilter represents filters for querying holdings
type HoldingFilter struct {
	Symbol string
	Type   string
	Limit  int
	Offset int
}
