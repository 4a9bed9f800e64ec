package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/usecase"
)

// ServiceHandler catálogo de servicios dentales.
type ServiceHandler struct {
	uc *usecase.ServiceUseCase
}

// NewServiceHandler construye el handler.
func NewServiceHandler(uc *usecase.ServiceUseCase) *ServiceHandler {
	return &ServiceHandler{uc: uc}
}

// List godoc
// @Summary      Catálogo de servicios dentales
// @Tags         services
// @Produce      json
// @Success      200  {array}   dto.DentalServiceItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-dental-services [get]
func (h *ServiceHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}
