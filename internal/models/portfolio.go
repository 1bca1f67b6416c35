package models

import "github.com/shopspring/decimal"

// PortfolioRow is one valuated holding. All monetary fields are expressed in
// the report's display currency.
type PortfolioRow struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Symbol            string          `json:"symbol"`
	Type              string          `json:"type"`
	Quantity          decimal.Decimal `json:"quantity"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	CurrentPrice      decimal.Decimal `json:"current_price"`
	TotalValue        decimal.Decimal `json:"total_value"`
	ChangeAbsolute    decimal.Decimal `json:"change_absolute"`
	ChangePercent     decimal.Decimal `json:"change_percent"`
	AllocationPercent decimal.Decimal `json:"allocation_percent"`

	// True when no live price was available and the purchase price was used.
	PriceIsStale bool `json:"price_is_stale,omitempty"`
}

// PortfolioGroup is a subtotal row per holding type, in display currency.
type PortfolioGroup struct {
	Type          string          `json:"type"`
	InitialValue  decimal.Decimal `json:"initial_value"`
	CurrentValue  decimal.Decimal `json:"current_value"`
	NetReturn     decimal.Decimal `json:"net_return"`
	PercentReturn decimal.Decimal `json:"percent_return"`
}

// PortfolioTotals aggregates the portfolio in both anchor currencies plus the
// requested display currency.
type PortfolioTotals struct {
	DisplayCurrency string          `json:"display_currency"`
	DisplayTotal    decimal.Decimal `json:"display_total"`
	TotalUSD        decimal.Decimal `json:"total_usd"`
	TotalARS        decimal.Decimal `json:"total_ars"`
}

// PortfolioReport is the immutable output of a portfolio valuation.
type PortfolioReport struct {
	Rows   []PortfolioRow   `json:"rows"`
	Groups []PortfolioGroup `json:"groups"`
	Totals PortfolioTotals  `json:"totals"`
}
