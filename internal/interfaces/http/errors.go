package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicer/internal/application/dto"
	"github.com/jhoicas/invoicer/internal/domain"
)

// isValidation true para errores que el usuario puede corregir en el formulario.
func isValidation(err error) bool {
	return errors.Is(err, domain.ErrClientNameRequired) || errors.Is(err, domain.ErrInvalidInput)
}

// writeError traduce errores de dominio a HTTP + dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	if isValidation(err) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "the invoice could not be generated"})
}
