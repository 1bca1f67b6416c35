package engine

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// Project compounds principal iteratively for the given number of periods at
// annualRatePercent (a percentage: 65.0 means 65% TNA). The period rate is
// annualRatePercent / 100 / periodsPerYear. The returned series has one point
// per period, starting with the principal at period 0.
//
// periods = 0 is a valid degenerate call and returns the principal untouched.
func Project(principal, annualRatePercent decimal.Decimal, periods, periodsPerYear int) (*models.SimulationResult, error) {
	if !principal.IsPositive() {
		return nil, &apperrors.ErrValidation{Field: "principal", Message: "must be positive"}
	}
	if annualRatePercent.IsNegative() {
		return nil, &apperrors.ErrValidation{Field: "annual_rate_percent", Message: "must not be negative"}
	}
	if periods < 0 {
		return nil, &apperrors.ErrValidation{Field: "periods", Message: "must not be negative"}
	}
	if periodsPerYear <= 0 {
		return nil, &apperrors.ErrValidation{Field: "periods_per_year", Message: "must be positive"}
	}

	periodRate := annualRatePercent.Div(hundred).Div(decimal.NewFromInt(int64(periodsPerYear)))
	growth := one.Add(periodRate)

	amount := principal
	series := make([]models.SeriesPoint, 0, periods+1)
	series = append(series, models.SeriesPoint{Period: 0, Amount: principal})
	for i := 1; i <= periods; i++ {
		amount = amount.Mul(growth)
		series = append(series, models.SeriesPoint{Period: i, Amount: amount})
	}

	profit := amount.Sub(principal)
	return &models.SimulationResult{
		InitialAmount:     principal,
		FinalAmount:       amount,
		Profit:            profit,
		YieldPercent:      profit.Div(principal).Mul(hundred),
		AnnualRatePercent: annualRatePercent,
		Periods:           periods,
		PeriodsPerYear:    periodsPerYear,
		Series:            series,
	}, nil
}

// ProjectFixedTerm projects a fixed-term deposit: the term in days is mapped
// to whole months (30-day months) compounded monthly at the bank's TNA.
func ProjectFixedTerm(principal, annualRatePercent decimal.Decimal, termDays int) (*models.SimulationResult, error) {
	if termDays <= 0 {
		return nil, &apperrors.ErrValidation{Field: "term_days", Message: "must be positive"}
	}
	result, err := Project(principal, annualRatePercent, termDays/30, 12)
	if err != nil {
		return nil, err
	}
	result.TermDays = termDays
	return result, nil
}

// ProjectWalletYield projects a remunerated-wallet balance compounded monthly
// for the given number of months. The result also carries the effective
// annual rate, (1+monthly)^12 - 1, which wallets advertise alongside the TNA.
func ProjectWalletYield(principal, annualRatePercent decimal.Decimal, months int) (*models.SimulationResult, error) {
	result, err := Project(principal, annualRatePercent, months, 12)
	if err != nil {
		return nil, err
	}
	monthly := annualRatePercent.Div(hundred).Div(decimal.NewFromInt(12))
	effective := one.Add(monthly).Pow(decimal.NewFromInt(12)).Sub(one).Mul(hundred)
	result.EffectiveAnnualPercent = &effective
	return result, nil
}

// ProjectCryptoYield projects a staked crypto balance compounded monthly at
// the platform's APY. Same math as the other simulators; only the rate source
// differs.
func ProjectCryptoYield(principal, apyPercent decimal.Decimal, months int) (*models.SimulationResult, error) {
	return Project(principal, apyPercent, months, 12)
}
