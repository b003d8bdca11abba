package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is a salary payment record.
type Salary struct {
	ID           string
	Date         time.Time
	EmployeeName string
	Amount       decimal.Decimal
	SupervisorID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
