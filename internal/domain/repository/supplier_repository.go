package repository

import (
	"context"

	"github.com/tanvirul/shopledger-api/internal/domain/entity"
)

// SupplierRepository is the persistence port for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, s *entity.Supplier) error
	// List returns suppliers sorted by creation descending.
	List(ctx context.Context) ([]*entity.Supplier, error)
}
