package engine

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

// BestRateForCurrency returns the quote with the highest annual rate for the
// given currency, or nil when none match. Ties keep the first quote in input
// order.
func BestRateForCurrency(quotes []*models.RateQuote, currency string) *models.RateQuote {
	var best *models.RateQuote
	for _, q := range quotes {
		if q.Currency != currency {
			continue
		}
		if best == nil || q.AnnualRatePercent.GreaterThan(best.AnnualRatePercent) {
			best = q
		}
	}
	return best
}

// AvailableCurrencies lists the distinct currencies present in the quotes, in
// first-appearance order.
func AvailableCurrencies(quotes []*models.RateQuote) []string {
	seen := make(map[string]bool)
	var currencies []string
	for _, q := range quotes {
		if !seen[q.Currency] {
			seen[q.Currency] = true
			currencies = append(currencies, q.Currency)
		}
	}
	return currencies
}

// FilterByCurrencyClass splits quotes into the peso products (class ARS) or
// everything else (class CRYPTO covers USD and crypto alike, as the rates
// screen groups them).
func FilterByCurrencyClass(quotes []*models.RateQuote, class string) []*models.RateQuote {
	filtered := make([]*models.RateQuote, 0, len(quotes))
	for _, q := range quotes {
		isARS := q.Currency == models.CurrencyARS
		if (class == models.CurrencyClassARS) == isARS {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// Change returns the percent change of current against reference, or zero
// when the reference is zero.
func Change(current, reference decimal.Decimal) decimal.Decimal {
	if reference.IsZero() {
		return decimal.Zero
	}
	return current.Sub(reference).Div(reference).Mul(hundred)
}

// Spread returns the bid/ask spread of a quote, absolute and as a percentage
// of the buy price.
func Spread(quote *models.ExchangeQuote) (*models.SpreadResult, error) {
	if !quote.Buy.IsPositive() {
		return nil, &apperrors.ErrMalformedQuote{Quote: quote.Name, Message: "buy price must be positive"}
	}
	if quote.Sell.LessThan(quote.Buy) {
		return nil, &apperrors.ErrMalformedQuote{Quote: quote.Name, Message: "sell price below buy price"}
	}
	absolute := quote.Sell.Sub(quote.Buy)
	return &models.SpreadResult{
		Absolute: absolute,
		Percent:  absolute.Div(quote.Buy).Mul(hundred),
	}, nil
}

// BestBuy returns the quote with the highest buy price, nil on empty input.
func BestBuy(quotes []*models.ExchangeQuote) *models.ExchangeQuote {
	var best *models.ExchangeQuote
	for _, q := range quotes {
		if best == nil || q.Buy.GreaterThan(best.Buy) {
			best = q
		}
	}
	return best
}

// BestSell returns the quote with the lowest sell price, nil on empty input.
func BestSell(quotes []*models.ExchangeQuote) *models.ExchangeQuote {
	var best *models.ExchangeQuote
	for _, q := range quotes {
		if best == nil || q.Sell.LessThan(best.Sell) {
			best = q
		}
	}
	return best
}

// LowestSpread returns the quote minimizing sell - buy, nil on empty input.
func LowestSpread(quotes []*models.ExchangeQuote) *models.ExchangeQuote {
	var best *models.ExchangeQuote
	for _, q := range quotes {
		if best == nil || q.Sell.Sub(q.Buy).LessThan(best.Sell.Sub(best.Buy)) {
			best = q
		}
	}
	return best
}

// FilterAndSort applies the filter's provider search (case-insensitive
// substring), type and currency filters, then orders by the sort field. The
// sort is stable: ties keep their original relative order. Provider and
// currency names collate in Spanish order, matching how the tables render.
func FilterAndSort(quotes []*models.RateQuote, filter *models.RateFilter) []*models.RateQuote {
	filtered := make([]*models.RateQuote, 0, len(quotes))
	search := strings.ToLower(filter.SearchText)
	for _, q := range quotes {
		if search != "" && !strings.Contains(strings.ToLower(q.Provider), search) {
			continue
		}
		if filter.Type != "" && q.Type != filter.Type {
			continue
		}
		if filter.Currency != "" && q.Currency != filter.Currency {
			continue
		}
		filtered = append(filtered, q)
	}

	if filter.SortField == "" {
		return filtered
	}

	collator := collate.New(language.Spanish, collate.IgnoreCase)
	desc := filter.SortDirection == models.SortDesc
	sort.SliceStable(filtered, func(i, j int) bool {
		cmp := compareQuotes(filtered[i], filtered[j], filter.SortField, collator)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return filtered
}

func compareQuotes(a, b *models.RateQuote, field string, collator *collate.Collator) int {
	switch field {
	case models.SortFieldProvider:
		return collator.CompareString(a.Provider, b.Provider)
	case models.SortFieldCurrency:
		return collator.CompareString(a.Currency, b.Currency)
	case models.SortFieldAnnualRate:
		return a.AnnualRatePercent.Cmp(b.AnnualRatePercent)
	case models.SortFieldTermDays:
		return termDaysOrZero(a) - termDaysOrZero(b)
	}
	return 0
}

func termDaysOrZero(q *models.RateQuote) int {
	if q.TermDays == nil {
		return 0
	}
	return *q.TermDays
}
