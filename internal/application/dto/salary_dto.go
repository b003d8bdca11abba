package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSalaryRequest body for POST /api/salaries.
type CreateSalaryRequest struct {
	Date         string          `json:"date"`
	EmployeeName string          `json:"employeeName" validate:"required"`
	Amount       decimal.Decimal `json:"amount"`
}

// SalaryResponse wire form of a salary record.
type SalaryResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	EmployeeName string          `json:"employeeName"`
	Amount       decimal.Decimal `json:"amount"`
	SupervisorID string          `json:"supervisor,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
