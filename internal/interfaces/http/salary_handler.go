package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
)

// SalaryHandler handles salary records.
type SalaryHandler struct {
	uc *usecase.SalaryUseCase
}

// NewSalaryHandler builds the handler.
func NewSalaryHandler(uc *usecase.SalaryUseCase) *SalaryHandler {
	return &SalaryHandler{uc: uc}
}

// Create godoc
// @Summary      Record a salary payment
// @Tags         salaries
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSalaryRequest  true  "employeeName, amount, optional date"
// @Success      201   {object}  dto.SalaryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/salaries [post]
func (h *SalaryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSalaryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "employeeName is required")
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List salary payments
// @Tags         salaries
// @Security     Bearer
// @Produce      json
// @Param        startDate  query  string  false  "ISO date, inclusive"
// @Param        endDate    query  string  false  "ISO date, inclusive"
// @Success      200  {array}   dto.SalaryResponse
// @Router       /api/salaries [get]
func (h *SalaryHandler) List(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return badRequest(c, "Invalid query parameters")
	}
	out, err := h.uc.List(c.Context(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
