package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanvirul/shopledger-api/internal/application/reconcile"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

// Ensure TxRunner implements the reconciler port.
var _ reconcile.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner over the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run begins a transaction, executes fn with repositories bound to it, and
// commits on success or rolls back on any error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productionRepo repository.ProductionRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	notifRepo repository.NotificationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(
		NewProductionRepository(tx),
		NewOrderRepository(tx),
		NewSettingsRepository(tx),
		NewNotificationRepository(tx),
	); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
