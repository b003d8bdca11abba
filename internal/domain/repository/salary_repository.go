package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// SalaryRepository is the persistence port for salary records.
type SalaryRepository interface {
	Create(ctx context.Context, s *entity.Salary) error
	// List returns salaries sorted by date descending. A nil window returns all.
	List(ctx context.Context, w *dates.Window) ([]*entity.Salary, error)
}
