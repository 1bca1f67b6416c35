package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/centavohq/centavo/internal/models"
	"github.com/centavohq/centavo/internal/repositories"
)

type fxRateService struct {
	repo   repositories.FXRateRepository
	logger *zap.Logger
}

// NewFXRateService creates a new reference-rate service
func NewFXRateService(repo repositories.FXRateRepository, logger *zap.Logger) FXRateService {
	return &fxRateService{repo: repo, logger: logger}
}

func (s *fxRateService) SaveReferenceRate(ctx context.Context, rate *models.FXRate) error {
	if err := s.repo.SaveRate(ctx, rate); err != nil {
		return err
	}
	s.logger.Info("saved reference rate",
		zap.String("pair", rate.FromCurrency+"/"+rate.ToCurrency),
		zap.String("rate", rate.Rate.String()),
		zap.String("source", rate.Source))
	return nil
}

// GetReferenceRate resolves the USD/ARS anchor rate as of the given time.
// There is no built-in default: a valuation without a stored rate fails
// loudly instead of silently pricing against a stale constant.
func (s *fxRateService) GetReferenceRate(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	rate, err := s.repo.GetLatestRate(ctx, models.CurrencyUSD, models.CurrencyARS, asOf)
	if err != nil {
		return decimal.Zero, err
	}
	if rate == nil {
		return decimal.Zero, fmt.Errorf("no USD/ARS reference rate stored on or before %s", asOf.Format("2006-01-02"))
	}
	return rate.Rate, nil
}

func (s *fxRateService) ListReferenceRates(ctx context.Context, start, end time.Time) ([]*models.FXRate, error) {
	return s.repo.ListRates(ctx, models.CurrencyUSD, models.CurrencyARS, start, end)
}
