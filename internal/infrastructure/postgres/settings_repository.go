package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implements the SettingsRepository port over PostgreSQL.
// The aggregate is a single row with id = 1.
type SettingsRepo struct {
	db querier
}

// NewSettingsRepository builds the persistence adapter for settings.
func NewSettingsRepository(db querier) *SettingsRepo {
	return &SettingsRepo{db: db}
}

const settingsColumns = `id, owner_secret_password, low_stock_threshold, total_inventory, total_production, created_at, updated_at`

// Get fetches the settings row, or (nil, nil) when it was never created.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	return r.scan(ctx, `SELECT `+settingsColumns+` FROM settings WHERE id = 1`)
}

// GetForUpdate locks the settings row for the duration of the surrounding
// transaction. Concurrent reconciler runs queue up here, which is what keeps
// the running totals consistent.
func (r *SettingsRepo) GetForUpdate(ctx context.Context) (*entity.Settings, error) {
	return r.scan(ctx, `SELECT `+settingsColumns+` FROM settings WHERE id = 1 FOR UPDATE`)
}

// Create inserts the singleton row.
func (r *SettingsRepo) Create(ctx context.Context, s *entity.Settings) error {
	query := `
		INSERT INTO settings (id, owner_secret_password, low_stock_threshold, total_inventory, total_production, created_at, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		s.OwnerSecretPassword, s.LowStockThreshold, s.TotalInventory, s.TotalProduction, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert settings: %w", err)
	}
	return nil
}

// Update persists the aggregate.
func (r *SettingsRepo) Update(ctx context.Context, s *entity.Settings) error {
	query := `
		UPDATE settings
		SET owner_secret_password = $1, low_stock_threshold = $2, total_inventory = $3, total_production = $4, updated_at = $5
		WHERE id = 1`
	_, err := r.db.Exec(ctx, query,
		s.OwnerSecretPassword, s.LowStockThreshold, s.TotalInventory, s.TotalProduction, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}

func (r *SettingsRepo) scan(ctx context.Context, query string) (*entity.Settings, error) {
	var s entity.Settings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.ID, &s.OwnerSecretPassword, &s.LowStockThreshold, &s.TotalInventory, &s.TotalProduction,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}
