package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// DashboardHandler maneja los endpoints de agregados globales y desgloses
// por período.
type DashboardHandler struct {
	uc *usecase.MetricsUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *usecase.MetricsUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      KPIs globales del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.DashboardSummary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetDailySeries godoc
// @Summary      Serie diaria agregada entre productos
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  dto.DailyPointDTO
// @Router       /api/dashboard/daily-series [get]
func (h *DashboardHandler) GetDailySeries(c *fiber.Ctx) error {
	out, err := h.uc.DailySeries()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetMonthlyBreakdown godoc
// @Summary      Desglose mensual del libro de un producto
// @Tags         breakdown
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.MonthlyBucketDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/breakdown/monthly [get]
func (h *DashboardHandler) GetMonthlyBreakdown(c *fiber.Ctx) error {
	out, err := h.uc.MonthlyBreakdown(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetWeeklyBreakdown godoc
// @Summary      Desglose semanal del libro de un producto
// @Tags         breakdown
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {array}  dto.WeeklyBucketDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/breakdown/weekly [get]
func (h *DashboardHandler) GetWeeklyBreakdown(c *fiber.Ctx) error {
	out, err := h.uc.WeeklyBreakdown(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
