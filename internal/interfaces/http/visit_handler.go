package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/dto"
	"github.com/clinident/clinica-api/internal/application/visits"
	"github.com/clinident/clinica-api/internal/domain"
)

// VisitHandler maneja el flujo de visitas: guardado transaccional, limpieza
// de duplicados y consulta del historial.
type VisitHandler struct {
	saveUC    *visits.SaveVisitUseCase
	cleanupUC *visits.CleanupDuplicatesUseCase
	infoUC    *visits.InfoUseCase
}

// NewVisitHandler construye el handler.
func NewVisitHandler(saveUC *visits.SaveVisitUseCase, cleanupUC *visits.CleanupDuplicatesUseCase, infoUC *visits.InfoUseCase) *VisitHandler {
	return &VisitHandler{saveUC: saveUC, cleanupUC: cleanupUC, infoUC: infoUC}
}

// SaveVisit godoc
// @Summary      Guardar visita (alta o edición)
// @Description  Upsert de la visita con reemplazo completo de líneas de servicio
//
//	y consumos de producto, ajustando stock, todo en una transacción.
//
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SaveVisitRequest  true  "visitId ausente crea; presente edita"
// @Success      200   {object}  dto.SaveVisitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /save-visit [post]
func (h *VisitHandler) SaveVisit(c *fiber.Ctx) error {
	var req dto.SaveVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	result, err := h.saveUC.Save(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	message := "Visita actualizada"
	if result.Created {
		message = "Visita creada"
	}
	return c.JSON(dto.SaveVisitResponse{
		Status:             "ok",
		Message:            message,
		VisitID:            result.VisitID,
		FinalServicesCount: result.ServicesCount,
		FinalProductsCount: result.ProductsCount,
	})
}

// CleanupDuplicates godoc
// @Summary      Eliminar líneas de servicio duplicadas de una visita
// @Tags         visits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CleanupDuplicatesRequest  true  "visitId"
// @Success      200   {object}  dto.CleanupDuplicatesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /cleanup-duplicates [post]
func (h *VisitHandler) CleanupDuplicates(c *fiber.Ctx) error {
	var req dto.CleanupDuplicatesRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	resp, err := h.cleanupUC.Cleanup(c.Context(), req)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(resp)
}

// GetVisitInfo godoc
// @Summary      Historial de visitas de un paciente
// @Tags         visits
// @Produce      json
// @Param        lastname    query  string  true   "Apellido"
// @Param        firstname   query  string  true   "Nombre"
// @Param        patronymic  query  string  false  "Patronímico"
// @Success      200  {array}   dto.VisitInfoItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /get-visit-info [get]
func (h *VisitHandler) GetVisitInfo(c *fiber.Ctx) error {
	lastName, firstName, patronymic, err := nameQuery(c)
	if err != nil {
		return mapError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
	}
	items, err := h.infoUC.ByPatientName(lastName, firstName, patronymic)
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}
