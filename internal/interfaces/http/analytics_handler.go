package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clinident/clinica-api/internal/application/usecase"
)

// AnalyticsHandler consultas agregadas para los paneles del frontend.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Revenue godoc
// @Summary      Ingresos de los últimos tres meses
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   dto.MonthRevenueItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-revenue-last-3-months [get]
func (h *AnalyticsHandler) Revenue(c *fiber.Ctx) error {
	items, err := h.uc.RevenueLastMonths(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}

// VisitsByEmployees godoc
// @Summary      Visitas atendidas por doctor
// @Tags         analytics
// @Produce      json
// @Success      200  {array}   dto.EmployeeVisitsItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /get-visits-by-employees [get]
func (h *AnalyticsHandler) VisitsByEmployees(c *fiber.Ctx) error {
	items, err := h.uc.VisitsByDoctor(c.Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(items)
}
