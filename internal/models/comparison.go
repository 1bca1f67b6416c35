package models

import "github.com/shopspring/decimal"

// MaxInstallments caps the installment count a comparison accepts.
const MaxInstallments = 60

// Best option outcomes of an installments-vs-cash comparison
const (
	BestOptionInstallments = "installments"
	BestOptionCash         = "cash"
)

// ComparisonParams are the inputs of an installments-vs-cash comparison.
type ComparisonParams struct {
	CashPrice               decimal.Decimal            `json:"cash_price"`
	FinancedPrice           decimal.Decimal            `json:"financed_price"`
	InstallmentCount        int                        `json:"installment_count"`
	MonthlyInflationPercent decimal.Decimal            `json:"monthly_inflation_percent"`
	AlternativeAnnualRates  map[string]decimal.Decimal `json:"alternative_annual_rates,omitempty"`
}

// InstallmentValue is one installment with its nominal amount and its present
// value after discounting by cumulative monthly inflation.
type InstallmentValue struct {
	Month   int             `json:"month"`
	Nominal decimal.Decimal `json:"nominal"`
	Present decimal.Decimal `json:"present"`
}

// AlternativeOutcome is the result of investing the cash price at an
// alternative rate for the duration of the installment plan.
type AlternativeOutcome struct {
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	FinalAmount       decimal.Decimal `json:"final_amount"`
	Profit            decimal.Decimal `json:"profit"`
}

// ComparisonResult is the immutable output of a comparison.
type ComparisonResult struct {
	CashPrice               decimal.Decimal               `json:"cash_price"`
	FinancedPrice           decimal.Decimal               `json:"financed_price"`
	InstallmentCount        int                           `json:"installment_count"`
	MonthlyInstallment      decimal.Decimal               `json:"monthly_installment"`
	Installments            []InstallmentValue            `json:"installments"`
	TotalPresentValue       decimal.Decimal               `json:"total_present_value"`
	NominalSurchargePercent decimal.Decimal               `json:"nominal_surcharge_percent"`
	EffectiveCostPercent    decimal.Decimal               `json:"effective_cost_percent"`
	Alternatives            map[string]AlternativeOutcome `json:"alternatives,omitempty"`
	BestOption              string                        `json:"best_option"`

	// A financed price below the cash price is accepted but unusual.
	DiscountScenario bool `json:"discount_scenario,omitempty"`
}
