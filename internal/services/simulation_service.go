package services

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/centavohq/centavo/internal/engine"
	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

type simulationService struct {
	interest InterestRateProvider
	logger   *zap.Logger
}

// NewSimulationService creates a new simulation service
func NewSimulationService(interest InterestRateProvider, logger *zap.Logger) SimulationService {
	return &simulationService{interest: interest, logger: logger}
}

func (s *simulationService) SimulateFixedTerm(ctx context.Context, principal, annualRatePercent decimal.Decimal, termDays int) (*models.SimulationResult, error) {
	return engine.ProjectFixedTerm(principal, annualRatePercent, termDays)
}

func (s *simulationService) SimulateWallet(ctx context.Context, principal, annualRatePercent decimal.Decimal, months int) (*models.SimulationResult, error) {
	return engine.ProjectWalletYield(principal, annualRatePercent, months)
}

func (s *simulationService) SimulateCrypto(ctx context.Context, principal, apyPercent decimal.Decimal, months int) (*models.SimulationResult, error) {
	return engine.ProjectCryptoYield(principal, apyPercent, months)
}

// CompareInstallments runs the installments-vs-cash comparison. When the
// caller passes no alternative rates, the current best ARS wallet and fixed
// term offers are used so the answer reflects what the cash could actually
// earn today. A provider failure only loses the alternatives, not the
// comparison.
func (s *simulationService) CompareInstallments(ctx context.Context, params *models.ComparisonParams) (*models.ComparisonResult, error) {
	if params == nil {
		return nil, &apperrors.ErrValidation{Field: "params", Message: "comparison parameters are required"}
	}
	if len(params.AlternativeAnnualRates) == 0 {
		params.AlternativeAnnualRates = s.currentAlternatives(ctx)
	}
	return engine.Compare(params)
}

func (s *simulationService) currentAlternatives(ctx context.Context) map[string]decimal.Decimal {
	quotes, err := s.interest.GetRates(ctx)
	if err != nil {
		s.logger.Warn("could not fetch rates for comparison alternatives", zap.Error(err))
		return nil
	}

	alternatives := make(map[string]decimal.Decimal)
	for _, rateType := range []string{models.RateTypeWallet, models.RateTypeFixedTerm} {
		typed := make([]*models.RateQuote, 0, len(quotes))
		for _, q := range quotes {
			if q.Type == rateType && q.Currency == models.CurrencyARS {
				typed = append(typed, q)
			}
		}
		if best := engine.BestRateForCurrency(typed, models.CurrencyARS); best != nil {
			alternatives[best.Provider] = best.AnnualRatePercent
		}
	}
	if len(alternatives) == 0 {
		return nil
	}
	return alternatives
}
