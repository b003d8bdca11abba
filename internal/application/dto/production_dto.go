package dto

import "time"

// RecordProductionRequest body for POST /api/productions.
// Date is optional (empty = today). SecretPassword is only required when the
// date falls on a past day (backfill authorization).
type RecordProductionRequest struct {
	Date           string `json:"date"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	SecretPassword string `json:"secretPassword"`
}

// SyncProductionRequest body for POST /api/productions/sync.
// Corrects the production quantity for a day; always requires the secret.
type SyncProductionRequest struct {
	Date           string `json:"date" validate:"required,datetime=2006-01-02"`
	Quantity       int64  `json:"quantity" validate:"required,gt=0"`
	SecretPassword string `json:"secretPassword" validate:"required"`
}

// ProductionResponse wire form of a production record.
type ProductionResponse struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"date"`
	Quantity     int64     `json:"quantity"`
	SupervisorID string    `json:"supervisor,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
