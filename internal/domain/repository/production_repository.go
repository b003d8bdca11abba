package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// ProductionRepository is the persistence port for daily production records.
type ProductionRepository interface {
	Create(ctx context.Context, p *entity.Production) error
	Update(ctx context.Context, p *entity.Production) error
	// List returns records sorted by date descending. A nil window returns all.
	List(ctx context.Context, w *dates.Window) ([]*entity.Production, error)
	// GetByDay returns the first record whose date falls in the window, or (nil, nil).
	GetByDay(ctx context.Context, w dates.Window) (*entity.Production, error)
	ExistsInWindow(ctx context.Context, w dates.Window) (bool, error)
}
