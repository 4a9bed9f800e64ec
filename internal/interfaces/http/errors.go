package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/domain"
)

// mapError traduce errores de dominio al contrato HTTP del frontend:
// 400 entrada inválida, 404 recurso inexistente, 409 conflicto de stock,
// 500 el resto con el mensaje de bajo nivel en detail.
func mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrPatientNotFound),
		errors.Is(err, domain.ErrVisitNotFound),
		errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock), errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Unauthorized"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:  "Error interno del servidor",
			Detail: err.Error(),
		})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo de la petición inválido"})
}

// nameQuery lee lastname/firstname/patronymic de la query string, los nombres
// de parámetro que usa el frontend. Admite también un único parámetro name
// ("Apellido Nombre [Patronímico]") como alternativa.
func nameQuery(c *fiber.Ctx) (lastName, firstName string, patronymic *string, err error) {
	lastName = c.Query("lastname")
	firstName = c.Query("firstname")
	if lastName == "" && firstName == "" {
		if name := c.Query("name"); name != "" {
			return dto.SplitFullName(name)
		}
	}
	if p := c.Query("patronymic"); p != "" {
		patronymic = &p
	}
	return lastName, firstName, patronymic, nil
}
