package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/usecase"
	"github.com/clinident/clinica-api/internal/domain"
)

// PatientHandler maneja las peticiones de la ficha de pacientes.
type PatientHandler struct {
	uc *usecase.PatientUseCase
}

// NewPatientHandler construye el handler.
func NewPatientHandler(uc *usecase.PatientUseCase) *PatientHandler {
	return &PatientHandler{uc: uc}
}

// List godoc
// @Summary      Listado de pacientes con visitas agregadas
// @Tags         patients
// @Produce      json
// @Success      200  {array}   dto.PatientListItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-patients [get]
func (h *PatientHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List()
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}

// Create godoc
// @Summary      Alta de paciente
// @Description  Crea el contrato, la ficha, las categorías y los documentos
//
//	adjuntos en una sola transacción.
//
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SavePatientRequest  true  "ficha del paciente"
// @Success      200   {object}  dto.SavePatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       / [post]
func (h *PatientHandler) Create(c *fiber.Ctx) error {
	var req dto.SavePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// Update godoc
// @Summary      Actualizar ficha de paciente
// @Tags         patients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SavePatientRequest  true  "ficha con id"
// @Success      200   {object}  dto.SavePatientResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /update-patient [put]
func (h *PatientHandler) Update(c *fiber.Ctx) error {
	var req dto.SavePatientRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.uc.Update(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// GetFull godoc
// @Summary      Ficha completa por nombre
// @Tags         patients
// @Produce      json
// @Param        lastname    query  string  true   "Apellido"
// @Param        firstname   query  string  true   "Nombre"
// @Param        patronymic  query  string  false  "Patronímico"
// @Success      200  {object}  dto.PatientFullResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get-patient-full [get]
func (h *PatientHandler) GetFull(c *fiber.Ctx) error {
	lastName, firstName, patronymic, err := nameQuery(c)
	if err != nil {
		return mapError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	resp, err := h.uc.GetFullByName(lastName, firstName, patronymic)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// GetID godoc
// @Summary      Id del paciente por nombre
// @Tags         patients
// @Produce      json
// @Param        lastname    query  string  true   "Apellido"
// @Param        firstname   query  string  true   "Nombre"
// @Param        patronymic  query  string  false  "Patronímico"
// @Success      200  {object}  dto.PatientIDResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /get-patient-id [get]
func (h *PatientHandler) GetID(c *fiber.Ctx) error {
	lastName, firstName, patronymic, err := nameQuery(c)
	if err != nil {
		return mapError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	resp, err := h.uc.GetIDByName(lastName, firstName, patronymic)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}
