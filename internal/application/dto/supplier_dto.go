package dto

import "time"

// CreateSupplierRequest body for POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string   `json:"name" validate:"required"`
	Contact string   `json:"contact" validate:"required"`
	Address string   `json:"address"`
	Items   []string `json:"items"`
}

// SupplierResponse wire form of a supplier.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact"`
	Address   string    `json:"address,omitempty"`
	Items     []string  `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}
