package entity

import "time"

// Production is a daily production record entered by a supervisor.
// Records are never deleted; corrections go through the sync operation,
// which recomputes the settings delta.
type Production struct {
	ID           string
	Date         time.Time
	Quantity     int64
	SupervisorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
