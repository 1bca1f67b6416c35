package repositories

import (
	"context"
	"time"

	"github.com/centavohq/centavo/internal/models"
)

// HoldingRepository defines the interface for holding persistence
type HoldingRepository interface {
	CreateHolding(ctx context.Context, holding *models.Holding) error
	GetHolding(ctx context.Context, id string) (*models.Holding, error)
	ListHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error)
	UpdateHolding(ctx context.Context, holding *models.Holding) error
	DeleteHolding(ctx context.Context, id string) error
}

// FXRateRepository defines the interface for reference-rate history
type FXRateRepository interface {
	SaveRate(ctx context.Context, rate *models.FXRate) error
	GetLatestRate(ctx context.Context, from, to string, asOf time.Time) (*models.FXRate, error)
	ListRates(ctx context.Context, from, to string, start, end time.Time) ([]*models.FXRate, error)
}
