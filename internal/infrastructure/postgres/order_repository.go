package postgres

import (
	"context"
	"fmt"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implements the OrderRepository port over PostgreSQL.
type OrderRepo struct {
	db querier
}

// NewOrderRepository builds the persistence adapter for orders.
func NewOrderRepository(db querier) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persists an order.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	query := `
		INSERT INTO orders (id, date, customer_name, quantity, amount, supervisor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		o.ID, o.Date, o.CustomerName, o.Quantity, o.Amount, o.SupervisorID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// List returns orders sorted by date descending, optionally window-filtered.
func (r *OrderRepo) List(ctx context.Context, w *dates.Window) ([]*entity.Order, error) {
	query := `
		SELECT id, date, customer_name, quantity, amount, supervisor_id, created_at, updated_at
		FROM orders`
	var args []any
	if w != nil {
		query += ` WHERE date BETWEEN $1 AND $2`
		args = append(args, w.Start, w.End)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.Date, &o.CustomerName, &o.Quantity, &o.Amount, &o.SupervisorID, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// ExistsInWindow reports whether any order falls inside the window.
func (r *OrderRepo) ExistsInWindow(ctx context.Context, w dates.Window) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM orders WHERE date BETWEEN $1 AND $2)`,
		w.Start, w.End,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("order exists in window: %w", err)
	}
	return exists, nil
}
