package models

import "github.com/shopspring/decimal"

// SeriesPoint is one step of a projection's growth series, used for charting.
// Period 0 carries the principal.
type SeriesPoint struct {
	Period int             `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// SimulationResult is the immutable output of a projection. Every call
// produces a fresh value; results are never mutated after creation.
type SimulationResult struct {
	InitialAmount     decimal.Decimal `json:"initial_amount"`
	FinalAmount       decimal.Decimal `json:"final_amount"`
	Profit            decimal.Decimal `json:"profit"`
	YieldPercent      decimal.Decimal `json:"yield_percent"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	Periods           int             `json:"periods"`
	PeriodsPerYear    int             `json:"periods_per_year"`
	Series            []SeriesPoint   `json:"series"`

	// Set by the fixed-term adapter only.
	TermDays int `json:"term_days,omitempty"`

	// Set by the wallet adapter only: (1+monthly)^12 - 1, as a percentage.
	EffectiveAnnualPercent *decimal.Decimal `json:"effective_annual_percent,omitempty"`
}
