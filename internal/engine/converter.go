package engine

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

// Convert converts amount between USD and ARS using referenceRate, the price
// of one USD in ARS. Same-currency conversion returns the amount unchanged.
// A non-positive rate is a configuration error, never silently treated as 1.
func Convert(amount decimal.Decimal, from, to string, referenceRate decimal.Decimal) (decimal.Decimal, error) {
	if !referenceRate.IsPositive() {
		return decimal.Zero, &apperrors.ErrInvalidRate{
			Rate:    referenceRate.String(),
			Message: "reference rate must be positive",
		}
	}
	if from == to {
		return amount, nil
	}

	switch {
	case from == models.CurrencyUSD && to == models.CurrencyARS:
		return amount.Mul(referenceRate), nil
	case from == models.CurrencyARS && to == models.CurrencyUSD:
		return amount.Div(referenceRate), nil
	}

	return decimal.Zero, &apperrors.ErrValidation{
		Field:   "currency",
		Message: "unsupported conversion pair " + from + "/" + to,
	}
}
