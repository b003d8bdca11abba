package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tanvirul/shopledger-api/internal/application/dto"
	"github.com/tanvirul/shopledger-api/internal/domain"
)

// respondError maps domain sentinels to the HTTP error contract:
// {"message": ...} with 400/401/403/404/500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Invalid request data"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Insufficient inventory stock"})
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "User already exists"})
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid username or password"})
	case errors.Is(err, domain.ErrInvalidSecret):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Message: "Invalid secret password"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Message: "Access denied"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: "Resource not found"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Message: "Server error"})
	}
}

// badRequest is the shorthand for body-parse and validation failures.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: message})
}
