package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/dates"
	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// OrderRepository is the persistence port for customer orders.
type OrderRepository interface {
	Create(ctx context.Context, o *entity.Order) error
	// List returns orders sorted by date descending. A nil window returns all.
	List(ctx context.Context, w *dates.Window) ([]*entity.Order, error)
	ExistsInWindow(ctx context.Context, w dates.Window) (bool, error)
}
