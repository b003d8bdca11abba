package reconcile

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction, handing it
// repositories bound to that transaction. It is what makes the
// insert-record + update-totals + reconcile-notifications triad atomic.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productionRepo repository.ProductionRepository,
		orderRepo repository.OrderRepository,
		settingsRepo repository.SettingsRepository,
		notifRepo repository.NotificationRepository,
	) error) error
}
