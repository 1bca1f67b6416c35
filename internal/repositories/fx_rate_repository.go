package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/centavohq/centavo/internal/db"
	"github.com/centavohq/centavo/internal/models"
)

type fxRateRepository struct {
	db *db.DB
}

// NewFXRateRepository creates a new reference-rate repository
func NewFXRateRepository(database *db.DB) FXRateRepository {
	return &fxRateRepository{db: database}
}

func (r *fxRateRepository) SaveRate(ctx context.Context, rate *models.FXRate) error {
	if err := rate.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO fx_rates (from_currency, to_currency, rate, date, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (from_currency, to_currency, date, source)
		DO UPDATE SET rate = EXCLUDED.rate, created_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		rate.FromCurrency, rate.ToCurrency, rate.Rate, rate.Date, rate.Source)
	if err != nil {
		return fmt.Errorf("failed to save fx rate: %w", err)
	}
	return nil
}

// GetLatestRate returns the newest stored rate on or before asOf, or nil when
// no rate has been recorded for the pair.
func (r *fxRateRepository) GetLatestRate(ctx context.Context, from, to string, asOf time.Time) (*models.FXRate, error) {
	query := `
		SELECT id, from_currency, to_currency, rate, date, source, created_at
		FROM fx_rates
		WHERE from_currency = $1 AND to_currency = $2 AND date <= $3
		ORDER BY date DESC, created_at DESC
		LIMIT 1`

	sqlDB, err := r.db.GetSQLDB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	rate := &models.FXRate{}
	err = sqlDB.QueryRowContext(ctx, query, from, to, asOf).Scan(
		&rate.ID, &rate.FromCurrency, &rate.ToCurrency, &rate.Rate, &rate.Date, &rate.Source, &rate.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest fx rate: %w", err)
	}
	return rate, nil
}

func (r *fxRateRepository) ListRates(ctx context.Context, from, to string, start, end time.Time) ([]*models.FXRate, error) {
	query := `
		SELECT id, from_currency, to_currency, rate, date, source, created_at
		FROM fx_rates
		WHERE from_currency = $1 AND to_currency = $2 AND date >= $3 AND date <= $4
		ORDER BY date`

	rows, err := r.db.QueryContext(ctx, query, from, to, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list fx rates: %w", err)
	}
	defer rows.Close()

	var rates []*models.FXRate
	for rows.Next() {
		rate := &models.FXRate{}
		err := rows.Scan(&rate.ID, &rate.FromCurrency, &rate.ToCurrency, &rate.Rate, &rate.Date, &rate.Source, &rate.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fx rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
