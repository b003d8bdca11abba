package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.ProductionRepository = (*ProductionRepo)(nil)

// ProductionRepo implements the ProductionRepository port over PostgreSQL.
type ProductionRepo struct {
	db querier
}

// NewProductionRepository builds the persistence adapter for productions.
func NewProductionRepository(db querier) *ProductionRepo {
	return &ProductionRepo{db: db}
}

// Create persists a production record.
func (r *ProductionRepo) Create(ctx context.Context, p *entity.Production) error {
	query := `
		INSERT INTO productions (id, date, quantity, supervisor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, p.ID, p.Date, p.Quantity, p.SupervisorID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

// Update persists quantity corrections.
func (r *ProductionRepo) Update(ctx context.Context, p *entity.Production) error {
	query := `UPDATE productions SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, p.ID, p.Quantity, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// List returns records sorted by date descending, optionally window-filtered.
func (r *ProductionRepo) List(ctx context.Context, w *dates.Window) ([]*entity.Production, error) {
	query := `
		SELECT id, date, quantity, supervisor_id, created_at, updated_at
		FROM productions`
	var args []any
	if w != nil {
		query += ` WHERE date BETWEEN $1 AND $2`
		args = append(args, w.Start, w.End)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.Date, &p.Quantity, &p.SupervisorID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// GetByDay returns the first record in the window, or (nil, nil).
func (r *ProductionRepo) GetByDay(ctx context.Context, w dates.Window) (*entity.Production, error) {
	query := `
		SELECT id, date, quantity, supervisor_id, created_at, updated_at
		FROM productions WHERE date BETWEEN $1 AND $2 ORDER BY date ASC LIMIT 1`
	var p entity.Production
	err := r.db.QueryRow(ctx, query, w.Start, w.End).Scan(
		&p.ID, &p.Date, &p.Quantity, &p.SupervisorID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production by day: %w", err)
	}
	return &p, nil
}

// ExistsInWindow reports whether any record falls inside the window.
func (r *ProductionRepo) ExistsInWindow(ctx context.Context, w dates.Window) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM productions WHERE date BETWEEN $1 AND $2)`,
		w.Start, w.End,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("production exists in window: %w", err)
	}
	return exists, nil
}
