package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/usecase"
)

// EmployeeHandler maneja las peticiones de empleados y doctores.
type EmployeeHandler struct {
	uc *usecase.EmployeeUseCase
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase) *EmployeeHandler {
	return &EmployeeHandler{uc: uc}
}

// Add godoc
// @Summary      Alta de empleado con generación de agenda
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddEmployeeRequest  true  "ficha del empleado"
// @Success      200   {object}  dto.AddEmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /add-employee [post]
func (h *EmployeeHandler) Add(c *fiber.Ctx) error {
	var req dto.AddEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Add(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// List godoc
// @Summary      Listado de empleados
// @Tags         employees
// @Produce      json
// @Success      200  {array}   dto.EmployeeListItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-employees [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}

// ListDoctors godoc
// @Summary      Doctores para el selector de la agenda
// @Tags         employees
// @Produce      json
// @Success      200  {array}   dto.DoctorListItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-doctors [get]
func (h *EmployeeHandler) ListDoctors(c *fiber.Ctx) error {
	items, err := h.uc.ListDoctors()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}
