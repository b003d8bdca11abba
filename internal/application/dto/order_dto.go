package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceOrderRequest body for POST /api/orders.
// Date is optional (empty = today); past days require SecretPassword.
type PlaceOrderRequest struct {
	Date           string          `json:"date"`
	CustomerName   string          `json:"customerName" validate:"required"`
	Quantity       int64           `json:"quantity" validate:"required,gt=0"`
	Amount         decimal.Decimal `json:"amount"`
	SecretPassword string          `json:"secretPassword"`
}

// OrderResponse wire form of an order.
type OrderResponse struct {
	ID           string          `json:"id"`
	Date         time.Time       `json:"date"`
	CustomerName string          `json:"customerName"`
	Quantity     int64           `json:"quantity"`
	Amount       decimal.Decimal `json:"amount"`
	SupervisorID string          `json:"supervisor,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}
