package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// SettingsRepository is the persistence port for the shop-wide settings
// aggregate. Exactly one row exists once created.
type SettingsRepository interface {
	// Get returns the settings row, or (nil, nil) if it was never created.
	Get(ctx context.Context) (*entity.Settings, error)
	// GetForUpdate locks the settings row for the current transaction so
	// concurrent mutations of the running totals serialize. It only makes
	// sense on a transaction-bound repository.
	GetForUpdate(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, s *entity.Settings) error
	Update(ctx context.Context, s *entity.Settings) error
}
