package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/domain"
	"github.com/ANIKETSHETTY47/household-energy-calculator/internal/service"
)

// ErrorHandler renders every error as {"detail": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	detail := err.Error()

	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		code = fe.Code
		detail = fe.Message
	case errors.Is(err, domain.ErrInvalidPeriod):
		code = fiber.StatusBadRequest
		detail = "Período inválido"
	case errors.Is(err, service.ErrCloudDisabled):
		code = fiber.StatusServiceUnavailable
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("request failed")
	}
	return c.Status(code).JSON(fiber.Map{"detail": detail})
}
