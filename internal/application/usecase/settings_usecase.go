package usecase

import (
	"context"
	"time"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// SettingsUseCase reads and mutates the shop-wide settings aggregate.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase builds the use case.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get returns the settings, lazily creating the singleton with defaults on
// first access. The secret password never leaves the server.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := uc.getOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		LowStockThreshold: settings.LowStockThreshold,
		TotalInventory:    settings.TotalInventory,
		TotalProduction:   settings.TotalProduction,
	}, nil
}

// VerifySecret checks the standalone secret password used to authorize
// backfill actions. Returns ErrInvalidSecret on mismatch.
func (uc *SettingsUseCase) VerifySecret(ctx context.Context, secret string) error {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return err
	}
	if settings == nil || settings.OwnerSecretPassword != secret {
		return domain.ErrInvalidSecret
	}
	return nil
}

// Update patches the secret password and/or the low-stock threshold
// (owner-only operation; the role gate lives in the HTTP layer).
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	if in.OwnerSecretPassword != nil && *in.OwnerSecretPassword != "" {
		settings.OwnerSecretPassword = *in.OwnerSecretPassword
	}
	if in.LowStockThreshold != nil {
		settings.LowStockThreshold = *in.LowStockThreshold
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		LowStockThreshold: settings.LowStockThreshold,
		TotalInventory:    settings.TotalInventory,
		TotalProduction:   settings.TotalProduction,
	}, nil
}

func (uc *SettingsUseCase) getOrCreate(ctx context.Context) (*entity.Settings, error) {
	settings, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}
	now := time.Now()
	settings = &entity.Settings{
		ID:                  1,
		OwnerSecretPassword: "admin",
		LowStockThreshold:   entity.DefaultLowStockThreshold,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
