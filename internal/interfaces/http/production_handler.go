package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/application/reconcile"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
)

// ProductionHandler handles production records: creation and sync go through
// the reconciler, reads through the report use case.
type ProductionHandler struct {
	reconciler *reconcile.UseCase
	reports    *usecase.ReportUseCase
}

// NewProductionHandler builds the handler.
func NewProductionHandler(reconciler *reconcile.UseCase, reports *usecase.ReportUseCase) *ProductionHandler {
	return &ProductionHandler{reconciler: reconciler, reports: reports}
}

// Create godoc
// @Summary      Record daily production
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordProductionRequest  true  "quantity, optional date, secretPassword for past days"
// @Success      201   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/productions [post]
func (h *ProductionHandler) Create(c *fiber.Ctx) error {
	var in dto.RecordProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "quantity must be a positive number")
	}
	out, err := h.reconciler.RecordProduction(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Sync godoc
// @Summary      Correct the production of a day
// @Description  Upserts the day's record and applies the quantity delta to the running totals.
// @Tags         productions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SyncProductionRequest  true  "date, quantity, secretPassword"
// @Success      200   {object}  dto.ProductionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/productions/sync [post]
func (h *ProductionHandler) Sync(c *fiber.Ctx) error {
	var in dto.SyncProductionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "date, quantity and secretPassword are required")
	}
	out, err := h.reconciler.SyncProduction(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List production records
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "ISO date, inclusive"
// @Param        endDate    query  string  false  "ISO date, inclusive"
// @Success      200  {array}   dto.ProductionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productions [get]
func (h *ProductionHandler) List(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	out, err := h.reports.ListProductions(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByDate godoc
// @Summary      Production records of one day
// @Tags         productions
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "ISO date"
// @Success      200  {array}   dto.ProductionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productions/date/{date} [get]
func (h *ProductionHandler) GetByDate(c *fiber.Ctx) error {
	out, err := h.reports.ProductionsByDate(c.Context(), c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
