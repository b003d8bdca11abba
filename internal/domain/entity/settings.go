package entity

import "time"

// DefaultLowStockThreshold applies when settings are lazily created.
const DefaultLowStockThreshold = 100

// Settings is the single shop-wide aggregate: exactly one row exists, lazily
// created with defaults on first access. TotalInventory is a running balance:
// incremented by production quantity, decremented by order quantity. It may
// reach zero but an order is rejected before it would go negative.
type Settings struct {
	ID                  int64 // always 1
	OwnerSecretPassword string
	LowStockThreshold   int64
	TotalInventory      int64
	TotalProduction     int64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
