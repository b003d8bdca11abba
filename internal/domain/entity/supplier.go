package entity

import "time"

// Supplier is a simple supplier record with the items it provides.
type Supplier struct {
	ID        string
	Name      string
	Contact   string
	Address   string
	Items     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
