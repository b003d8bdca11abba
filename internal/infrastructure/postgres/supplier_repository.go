package postgres

import (
	"context"
	"fmt"

	"github.com/tanvirul/shopledger-api/internal/domain/entity"
	"github.com/tanvirul/shopledger-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implements the SupplierRepository port over PostgreSQL.
// Items is stored as a text[] column.
type SupplierRepo struct {
	db querier
}

// NewSupplierRepository builds the persistence adapter for suppliers.
func NewSupplierRepository(db querier) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// Create persists a supplier.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	query := `
		INSERT INTO suppliers (id, name, contact, address, items, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Contact, s.Address, s.Items, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

// List returns suppliers sorted by creation descending.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, contact, address, items, created_at, updated_at
		FROM suppliers ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Supplier
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Contact, &s.Address, &s.Items, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
