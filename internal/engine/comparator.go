package engine

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

// Compare evaluates paying in installments against paying cash. Each
// installment is discounted by cumulative monthly inflation to its present
// value; the alternative rates project the cash price forward for the length
// of the plan as an opportunity-cost reference.
//
// BestOption compares the discounted installment total against the
// undiscounted cash price. The cash side is deliberately not reduced by its
// own opportunity cost; the projections are reported but do not enter the
// decision. Known asymmetry, kept pending product review.
func Compare(params *models.ComparisonParams) (*models.ComparisonResult, error) {
	if !params.CashPrice.IsPositive() {
		return nil, &apperrors.ErrValidation{Field: "cash_price", Message: "must be positive"}
	}
	if !params.FinancedPrice.IsPositive() {
		return nil, &apperrors.ErrValidation{Field: "financed_price", Message: "must be positive"}
	}
	if params.InstallmentCount <= 0 {
		return nil, &apperrors.ErrValidation{Field: "installment_count", Message: "must be positive"}
	}
	if params.InstallmentCount > models.MaxInstallments {
		return nil, &apperrors.ErrValidation{Field: "installment_count", Message: "must not exceed 60"}
	}
	if params.MonthlyInflationPercent.IsNegative() {
		return nil, &apperrors.ErrValidation{Field: "monthly_inflation_percent", Message: "must not be negative"}
	}

	count := decimal.NewFromInt(int64(params.InstallmentCount))
	monthlyInstallment := params.FinancedPrice.Div(count)
	inflationFactor := one.Add(params.MonthlyInflationPercent.Div(hundred))

	installments := make([]models.InstallmentValue, 0, params.InstallmentCount)
	totalPresentValue := decimal.Zero
	for i := 0; i < params.InstallmentCount; i++ {
		present := monthlyInstallment.Div(inflationFactor.Pow(decimal.NewFromInt(int64(i + 1))))
		totalPresentValue = totalPresentValue.Add(present)
		installments = append(installments, models.InstallmentValue{
			Month:   i + 1,
			Nominal: monthlyInstallment,
			Present: present,
		})
	}

	var alternatives map[string]models.AlternativeOutcome
	if len(params.AlternativeAnnualRates) > 0 {
		alternatives = make(map[string]models.AlternativeOutcome, len(params.AlternativeAnnualRates))
		for name, rate := range params.AlternativeAnnualRates {
			projection, err := Project(params.CashPrice, rate, params.InstallmentCount, 12)
			if err != nil {
				return nil, err
			}
			alternatives[name] = models.AlternativeOutcome{
				AnnualRatePercent: rate,
				FinalAmount:       projection.FinalAmount,
				Profit:            projection.Profit,
			}
		}
	}

	bestOption := models.BestOptionCash
	if totalPresentValue.LessThan(params.CashPrice) {
		bestOption = models.BestOptionInstallments
	}

	return &models.ComparisonResult{
		CashPrice:               params.CashPrice,
		FinancedPrice:           params.FinancedPrice,
		InstallmentCount:        params.InstallmentCount,
		MonthlyInstallment:      monthlyInstallment,
		Installments:            installments,
		TotalPresentValue:       totalPresentValue,
		NominalSurchargePercent: params.FinancedPrice.Div(params.CashPrice).Sub(one).Mul(hundred),
		EffectiveCostPercent:    params.FinancedPrice.Div(totalPresentValue).Sub(one).Mul(hundred),
		Alternatives:            alternatives,
		BestOption:              bestOption,
		DiscountScenario:        params.FinancedPrice.LessThan(params.CashPrice),
	}, nil
}
