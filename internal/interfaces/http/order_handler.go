package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/application/reconcile"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
)

// OrderHandler handles customer orders.
type OrderHandler struct {
	reconciler *reconcile.UseCase
	reports    *usecase.ReportUseCase
}

// NewOrderHandler builds the handler.
func NewOrderHandler(reconciler *reconcile.UseCase, reports *usecase.ReportUseCase) *OrderHandler {
	return &OrderHandler{reconciler: reconciler, reports: reports}
}

// Create godoc
// @Summary      Place a customer order
// @Description  Rejected when the quantity exceeds the current inventory.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PlaceOrderRequest  true  "customerName, quantity, amount, optional date"
// @Success      201   {object}  dto.OrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.PlaceOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "customerName and a positive quantity are required")
	}
	out, err := h.reconciler.PlaceOrder(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List orders
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "ISO date, inclusive"
// @Param        endDate    query  string  false  "ISO date, inclusive"
// @Success      200  {array}   dto.OrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	out, err := h.reports.ListOrders(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
