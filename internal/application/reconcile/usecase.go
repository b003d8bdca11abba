package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// UseCase is the inventory/notification reconciler. Every production or order
// write runs inside one transaction: the record insert, the settings totals
// update and the notification reconciliation commit or roll back together,
// with the settings row locked (SELECT FOR UPDATE) so concurrent writes
// serialize.
type UseCase struct {
	txRunner TxRunner
	loc      *time.Location
	now      func() time.Time
}

// NewUseCase builds the reconciler. A nil location means local time.
func NewUseCase(txRunner TxRunner, loc *time.Location) *UseCase {
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{txRunner: txRunner, loc: loc, now: time.Now}
}

// RecordProduction inserts a daily production record and applies its effects:
// totalInventory += q, totalProduction += q, completes a Pending
// "Missing Production" notification in the day window, and clears Pending
// "Low Stock" notifications once inventory rises above the threshold.
// Writes to past days require the standalone secret password.
func (uc *UseCase) RecordProduction(ctx context.Context, supervisorID string, in dto.RecordProductionRequest) (*dto.ProductionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	day := dates.DayOf(date)

	var out *dto.ProductionResponse
	err = uc.txRunner.Run(ctx, func(
		productionRepo repository.ProductionRepository,
		_ repository.OrderRepository,
		settingsRepo repository.SettingsRepository,
		notifRepo repository.NotificationRepository,
	) error {
		settings, err := lockSettings(ctx, settingsRepo)
		if err != nil {
			return err
		}
		if err := uc.authorizeBackfill(day, in.SecretPassword, settings); err != nil {
			return err
		}

		now := uc.now()
		p := &entity.Production{
			ID:           uuid.New().String(),
			Date:         date,
			Quantity:     in.Quantity,
			SupervisorID: supervisorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := productionRepo.Create(ctx, p); err != nil {
			return err
		}

		settings.TotalInventory += in.Quantity
		settings.TotalProduction += in.Quantity
		settings.UpdatedAt = now
		if err := settingsRepo.Update(ctx, settings); err != nil {
			return err
		}

		if err := notifRepo.CompletePending(ctx, entity.NotificationMissingProduction, day); err != nil {
			return err
		}
		if err := uc.clearLowStock(ctx, notifRepo, settings); err != nil {
			return err
		}

		out = toProductionResponse(p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SyncProduction corrects the production record of a day: the delta between
// the new and the previous quantity (0 if none existed) is applied to both
// totals, the record is upserted, and a "Production Update" audit
// notification describes the change. Always requires the secret password.
func (uc *UseCase) SyncProduction(ctx context.Context, supervisorID string, in dto.SyncProductionRequest) (*dto.ProductionResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := dates.ParseISO(in.Date, uc.loc)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	day := dates.DayOf(date)

	var out *dto.ProductionResponse
	err = uc.txRunner.Run(ctx, func(
		productionRepo repository.ProductionRepository,
		_ repository.OrderRepository,
		settingsRepo repository.SettingsRepository,
		notifRepo repository.NotificationRepository,
	) error {
		settings, err := lockSettings(ctx, settingsRepo)
		if err != nil {
			return err
		}
		if in.SecretPassword != settings.OwnerSecretPassword {
			return domain.ErrInvalidSecret
		}

		now := uc.now()
		prev, err := productionRepo.GetByDay(ctx, day)
		if err != nil {
			return err
		}
		var prevQty int64
		var record *entity.Production
		if prev != nil {
			prevQty = prev.Quantity
			prev.Quantity = in.Quantity
			prev.UpdatedAt = now
			if err := productionRepo.Update(ctx, prev); err != nil {
				return err
			}
			record = prev
		} else {
			record = &entity.Production{
				ID:           uuid.New().String(),
				Date:         day.Start,
				Quantity:     in.Quantity,
				SupervisorID: supervisorID,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := productionRepo.Create(ctx, record); err != nil {
				return err
			}
		}

		delta := in.Quantity - prevQty
		settings.TotalInventory += delta
		settings.TotalProduction += delta
		settings.UpdatedAt = now
		if err := settingsRepo.Update(ctx, settings); err != nil {
			return err
		}

		audit := &entity.Notification{
			ID:        uuid.New().String(),
			Date:      day.Start,
			Type:      entity.NotificationProductionUpdate,
			Message:   fmt.Sprintf("Production for %s corrected from %d to %d", day.Start.Format(dates.ISODate), prevQty, in.Quantity),
			Status:    entity.NotificationPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := notifRepo.Create(ctx, audit); err != nil {
			return err
		}

		// A record now exists for the day, so a pending "missing" entry is stale.
		if err := notifRepo.CompletePending(ctx, entity.NotificationMissingProduction, day); err != nil {
			return err
		}
		if err := uc.clearLowStock(ctx, notifRepo, settings); err != nil {
			return err
		}

		out = toProductionResponse(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PlaceOrder inserts a customer order. The order is rejected outright when
// its quantity exceeds the current inventory; otherwise the inventory is
// decremented, a Pending "Low Stock" notification is raised for today when
// the balance falls to or below the threshold (unless one already exists),
// and a Pending "Missing Order" notification in the day window is completed.
func (uc *UseCase) PlaceOrder(ctx context.Context, supervisorID string, in dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity <= 0 || in.CustomerName == "" || in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	date, err := uc.parseDate(in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	day := dates.DayOf(date)

	var out *dto.OrderResponse
	err = uc.txRunner.Run(ctx, func(
		_ repository.ProductionRepository,
		orderRepo repository.OrderRepository,
		settingsRepo repository.SettingsRepository,
		notifRepo repository.NotificationRepository,
	) error {
		settings, err := lockSettings(ctx, settingsRepo)
		if err != nil {
			return err
		}
		if err := uc.authorizeBackfill(day, in.SecretPassword, settings); err != nil {
			return err
		}
		if in.Quantity > settings.TotalInventory {
			return domain.ErrInsufficientStock
		}

		now := uc.now()
		o := &entity.Order{
			ID:           uuid.New().String(),
			Date:         date,
			CustomerName: in.CustomerName,
			Quantity:     in.Quantity,
			Amount:       in.Amount,
			SupervisorID: supervisorID,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := orderRepo.Create(ctx, o); err != nil {
			return err
		}

		settings.TotalInventory -= in.Quantity
		settings.UpdatedAt = now
		if err := settingsRepo.Update(ctx, settings); err != nil {
			return err
		}

		if settings.TotalInventory <= settings.LowStockThreshold {
			today := dates.DayOf(now.In(uc.loc))
			existing, err := notifRepo.FindPending(ctx, entity.NotificationLowStock, today)
			if err != nil {
				return err
			}
			if existing == nil {
				warn := &entity.Notification{
					ID:        uuid.New().String(),
					Date:      today.Start,
					Type:      entity.NotificationLowStock,
					Message:   fmt.Sprintf("Low Stock Warning – Production Required (Current: %d)", settings.TotalInventory),
					Status:    entity.NotificationPending,
					CreatedAt: now,
					UpdatedAt: now,
				}
				if err := notifRepo.Create(ctx, warn); err != nil {
					return err
				}
			}
		}

		if err := notifRepo.CompletePending(ctx, entity.NotificationMissingOrder, day); err != nil {
			return err
		}

		out = toOrderResponse(o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// clearLowStock completes every Pending "Low Stock" notification once the
// inventory sits strictly above the threshold. Idempotent under repeated
// crossings: with nothing Pending, completing is a no-op.
func (uc *UseCase) clearLowStock(ctx context.Context, notifRepo repository.NotificationRepository, settings *entity.Settings) error {
	if settings.TotalInventory > settings.LowStockThreshold {
		return notifRepo.CompleteAllPending(ctx, entity.NotificationLowStock)
	}
	return nil
}

// authorizeBackfill enforces the standalone secret password for writes that
// touch a past day. The check is per-request and independent of the session
// token: the two capabilities are deliberately separate.
func (uc *UseCase) authorizeBackfill(day dates.Window, secret string, settings *entity.Settings) error {
	today := dates.DayOf(uc.now().In(uc.loc))
	if day.End.Before(today.Start) && secret != settings.OwnerSecretPassword {
		return domain.ErrInvalidSecret
	}
	return nil
}

// parseDate accepts an empty string (= now), an ISO date, or an RFC 3339
// timestamp, always interpreted in the shop's location.
func (uc *UseCase) parseDate(s string) (time.Time, error) {
	if s == "" {
		return uc.now().In(uc.loc), nil
	}
	if t, err := dates.ParseISO(s, uc.loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(uc.loc), nil
}

// lockSettings returns the settings row locked for this transaction, lazily
// creating the singleton with defaults on first access.
func lockSettings(ctx context.Context, repo repository.SettingsRepository) (*entity.Settings, error) {
	settings, err := repo.GetForUpdate(ctx)
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
	if err := repo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:           p.ID,
		Date:         p.Date,
		Quantity:     p.Quantity,
		SupervisorID: p.SupervisorID,
		CreatedAt:    p.CreatedAt,
	}
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		Date:         o.Date,
		CustomerName: o.CustomerName,
		Quantity:     o.Quantity,
		Amount:       o.Amount,
		SupervisorID: o.SupervisorID,
		CreatedAt:    o.CreatedAt,
	}
}
