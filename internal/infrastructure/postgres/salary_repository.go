package postgres

import (
	"context"
	"fmt"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.SalaryRepository = (*SalaryRepo)(nil)

// SalaryRepo implements the SalaryRepository port over PostgreSQL.
type SalaryRepo struct {
	db querier
}

// NewSalaryRepository builds the persistence adapter for salaries.
func NewSalaryRepository(db querier) *SalaryRepo {
	return &SalaryRepo{db: db}
}

// Create persists a salary record.
func (r *SalaryRepo) Create(ctx context.Context, s *entity.Salary) error {
	query := `
		INSERT INTO salaries (id, date, employee_name, amount, supervisor_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Date, s.EmployeeName, s.Amount, s.SupervisorID, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert salary: %w", err)
	}
	return nil
}

// List returns salaries sorted by date descending, optionally window-filtered.
func (r *SalaryRepo) List(ctx context.Context, w *dates.Window) ([]*entity.Salary, error) {
	query := `
		SELECT id, date, employee_name, amount, supervisor_id, created_at, updated_at
		FROM salaries`
	var args []any
	if w != nil {
		query += ` WHERE date BETWEEN $1 AND $2`
		args = append(args, w.Start, w.End)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Salary
	for rows.Next() {
		var s entity.Salary
		if err := rows.Scan(&s.ID, &s.Date, &s.EmployeeName, &s.Amount, &s.SupervisorID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan salary: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
