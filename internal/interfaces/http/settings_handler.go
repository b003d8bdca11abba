package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/application/usecase"
)

// SettingsHandler handles the shop-wide settings aggregate.
type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

// NewSettingsHandler builds the handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Current settings (secret excluded)
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SettingsResponse
// @Router       /api/settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// VerifySecret godoc
// @Summary      Verify the standalone secret password
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifySecretRequest  true  "secretPassword"
// @Success      200   {object}  dto.VerifySecretResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/settings/verify-secret [post]
func (h *SettingsHandler) VerifySecret(c *fiber.Ctx) error {
	var in dto.VerifySecretRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "secretPassword is required")
	}
	if err := h.uc.VerifySecret(c.Context(), in.SecretPassword); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.VerifySecretResponse{Success: true})
}

// Update godoc
// @Summary      Update settings (owner only)
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateSettingsRequest  true  "ownerSecretPassword and/or lowStockThreshold"
// @Success      200   {object}  dto.SettingsResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := dto.Validate(in); err != nil {
		return badRequest(c, "lowStockThreshold must not be negative")
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
