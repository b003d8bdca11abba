package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order. It is only accepted when its quantity does not
// exceed the current total inventory.
type Order struct {
	ID           string
	Date         time.Time
	CustomerName string
	Quantity     int64
	Amount       decimal.Decimal
	SupervisorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
