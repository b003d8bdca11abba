package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/usecase"
)

// NotificationHandler handles notification listing and explicit mark-read.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler builds the handler.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// List godoc
// @Summary      List notifications
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// MarkCompleted godoc
// @Summary      Mark a notification as completed
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "notification id"
// @Success      200  {object}  dto.NotificationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/notifications/{id} [put]
func (h *NotificationHandler) MarkCompleted(c *fiber.Ctx) error {
	out, err := h.uc.MarkCompleted(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
