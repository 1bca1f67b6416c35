package engine

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

// Valuate prices every holding, converts the figures into displayCurrency on
// referenceRate, and aggregates allocation, per-type subtotals and totals in
// both anchor currencies.
//
// A holding with no entry in currentPrices is valued at its purchase price:
// stale but plausible beats absent. Prices are keyed by symbol and quoted in
// USD, the way price feeds deliver them; each is converted into the holding's
// purchase currency before the change against the purchase price is taken.
func Valuate(holdings []*models.Holding, currentPrices map[string]decimal.Decimal, displayCurrency string, referenceRate decimal.Decimal) (*models.PortfolioReport, error) {
	if !models.IsDisplayCurrency(displayCurrency) {
		return nil, &apperrors.ErrValidation{Field: "display_currency", Message: "must be USD or ARS"}
	}
	if !referenceRate.IsPositive() {
		return nil, &apperrors.ErrInvalidRate{Rate: referenceRate.String(), Message: "reference rate must be positive"}
	}

	rows := make([]models.PortfolioRow, 0, len(holdings))
	groupIndex := make(map[string]int)
	var groups []models.PortfolioGroup
	totals := models.PortfolioTotals{DisplayCurrency: displayCurrency}

	for _, h := range holdings {
		currentPrice, ok := currentPrices[h.Symbol]
		if ok {
			converted, err := Convert(currentPrice, models.CurrencyUSD, h.PurchaseCurrency, referenceRate)
			if err != nil {
				return nil, err
			}
			currentPrice = converted
		} else {
			currentPrice = h.PurchasePrice
		}

		totalValue := currentPrice.Mul(h.Quantity)
		changeAbsolute := currentPrice.Sub(h.PurchasePrice)
		changePercent := decimal.Zero
		if !h.PurchasePrice.IsZero() {
			changePercent = changeAbsolute.Div(h.PurchasePrice).Mul(hundred)
		}

		valueUSD, err := Convert(totalValue, h.PurchaseCurrency, models.CurrencyUSD, referenceRate)
		if err != nil {
			return nil, err
		}
		valueARS, err := Convert(totalValue, h.PurchaseCurrency, models.CurrencyARS, referenceRate)
		if err != nil {
			return nil, err
		}
		totals.TotalUSD = totals.TotalUSD.Add(valueUSD)
		totals.TotalARS = totals.TotalARS.Add(valueARS)

		displayValue := valueUSD
		if displayCurrency == models.CurrencyARS {
			displayValue = valueARS
		}
		totals.DisplayTotal = totals.DisplayTotal.Add(displayValue)

		displayPurchase, err := Convert(h.PurchasePrice, h.PurchaseCurrency, displayCurrency, referenceRate)
		if err != nil {
			return nil, err
		}
		displayCurrent, err := Convert(currentPrice, h.PurchaseCurrency, displayCurrency, referenceRate)
		if err != nil {
			return nil, err
		}
		displayChange, err := Convert(changeAbsolute, h.PurchaseCurrency, displayCurrency, referenceRate)
		if err != nil {
			return nil, err
		}

		rows = append(rows, models.PortfolioRow{
			ID:             h.ID,
			Name:           h.Name,
			Symbol:         h.Symbol,
			Type:           h.Type,
			Quantity:       h.Quantity,
			PurchasePrice:  displayPurchase,
			CurrentPrice:   displayCurrent,
			TotalValue:     displayValue,
			ChangeAbsolute: displayChange,
			ChangePercent:  changePercent,
			PriceIsStale:   !ok,
		})

		initialValue := displayPurchase.Mul(h.Quantity)
		idx, seen := groupIndex[h.Type]
		if !seen {
			groupIndex[h.Type] = len(groups)
			groups = append(groups, models.PortfolioGroup{Type: h.Type})
			idx = len(groups) - 1
		}
		groups[idx].InitialValue = groups[idx].InitialValue.Add(initialValue)
		groups[idx].CurrentValue = groups[idx].CurrentValue.Add(displayValue)
	}

	for i := range rows {
		if totals.DisplayTotal.IsZero() {
			rows[i].AllocationPercent = decimal.Zero
			continue
		}
		rows[i].AllocationPercent = rows[i].TotalValue.Div(totals.DisplayTotal).Mul(hundred)
	}

	for i := range groups {
		groups[i].NetReturn = groups[i].CurrentValue.Sub(groups[i].InitialValue)
		if !groups[i].InitialValue.IsZero() {
			groups[i].PercentReturn = groups[i].NetReturn.Div(groups[i].InitialValue).Mul(hundred)
		}
	}

	return &models.PortfolioReport{Rows: rows, Groups: groups, Totals: totals}, nil
}
