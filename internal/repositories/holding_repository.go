package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/centavohq/centavo/internal/db"
	apperrors "github.com/centavohq/centavo/internal/errors"
	"github.com/centavohq/centavo/internal/models"
)

type holdingRepository struct {
	db *db.DB
}

// NewHoldingRepository creates a new holding repository
func NewHoldingRepository(database *db.DB) HoldingRepository {
	return &holdingRepository{db: database}
}

// getSQLDB returns the underlying *sql.DB for single-row queries
func (r *holdingRepository) getSQLDB() (*sql.DB, error) {
	return r.db.GetSQLDB()
}

func (r *holdingRepository) CreateHolding(ctx context.Context, holding *models.Holding) error {
	if err := holding.Validate(); err != nil {
		return err
	}
	if holding.ID == "" {
		holding.ID = uuid.New().String()
	}
	if holding.PurchaseDate.IsZero() {
		holding.PurchaseDate = time.Now()
	}

	query := `
		INSERT INTO holdings (id, name, symbol, type, quantity, purchase_price, purchase_currency, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	sqlDB, err := r.getSQLDB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB: %w", err)
	}
	err = sqlDB.QueryRowContext(ctx, query,
		holding.ID, holding.Name, holding.Symbol, holding.Type,
		holding.Quantity, holding.PurchasePrice, holding.PurchaseCurrency, holding.PurchaseDate,
	).Scan(&holding.CreatedAt, &holding.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create holding: %w", err)
	}
	return nil
}

func (r *holdingRepository) GetHolding(ctx context.Context, id string) (*models.Holding, error) {
	query := `
		SELECT id, name, symbol, type, quantity, purchase_price, purchase_currency, purchase_date, created_at, updated_at
		FROM holdings
		WHERE id = $1`

	sqlDB, err := r.getSQLDB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB: %w", err)
	}
	h := &models.Holding{}
	err = sqlDB.QueryRowContext(ctx, query, id).Scan(
		&h.ID, &h.Name, &h.Symbol, &h.Type, &h.Quantity,
		&h.PurchasePrice, &h.PurchaseCurrency, &h.PurchaseDate, &h.CreatedAt, &h.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}
	return h, nil
}

func (r *holdingRepository) ListHoldings(ctx context.Context, filter *models.HoldingFilter) ([]*models.Holding, error) {
	query := `
		SELECT id, name, symbol, type, quantity, purchase_price, purchase_currency, purchase_date, created_at, updated_at
		FROM holdings
		WHERE 1=1`

	var args []interface{}
	argIndex := 1
	if filter != nil {
		if filter.Symbol != "" {
			query += fmt.Sprintf(" AND symbol = $%d", argIndex)
			args = append(args, filter.Symbol)
			argIndex++
		}
		if filter.Type != "" {
			query += fmt.Sprintf(" AND type = $%d", argIndex)
			args = append(args, filter.Type)
			argIndex++
		}
	}
	query += " ORDER BY purchase_date, created_at"
	if filter != nil && filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
		argIndex++
		if filter.Offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", argIndex)
			args = append(args, filter.Offset)
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	defer rows.Close()

	var holdings []*models.Holding
	for rows.Next() {
		h := &models.Holding{}
		err := rows.Scan(
			&h.ID, &h.Name, &h.Symbol, &h.Type, &h.Quantity,
			&h.PurchasePrice, &h.PurchaseCurrency, &h.PurchaseDate, &h.CreatedAt, &h.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		holdings = append(holdings, h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepository) UpdateHolding(ctx context.Context, holding *models.Holding) error {
	if err := holding.Validate(); err != nil {
		return err
	}

	existing, err := r.GetHolding(ctx, holding.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("holding %s not found", holding.ID)
	}
	// Re-denominating a historical purchase is not supported.
	if existing.PurchaseCurrency != holding.PurchaseCurrency {
		return &apperrors.ErrValidation{Field: "purchase_currency", Message: "cannot be changed after creation"}
	}

	query := `
		UPDATE holdings
		SET name = $2, symbol = $3, type = $4, quantity = $5, purchase_price = $6, purchase_date = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	sqlDB, err := r.getSQLDB()
	if err != nil {
		return fmt.Errorf("failed to get SQL DB: %w", err)
	}
	err = sqlDB.QueryRowContext(ctx, query,
		holding.ID, holding.Name, holding.Symbol, holding.Type,
		holding.Quantity, holding.PurchasePrice, holding.PurchaseDate,
	).Scan(&holding.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update holding: %w", err)
	}
	return nil
}

func (r *holdingRepository) DeleteHolding(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM holdings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("holding %s not found", id)
	}
	return nil
}
