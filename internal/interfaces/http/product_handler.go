package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos y su libro diario.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto (siembra histórico diario)
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ComputedMetricResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos con métricas derivadas
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ComputedMetricResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto con métricas derivadas
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ComputedMetricResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateDetails godoc
// @Summary      Editar nombre, descripción y precio
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductDetailsRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.ComputedMetricResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) UpdateDetails(c *fiber.Ctx) error {
	var in dto.UpdateProductDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateDetails(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         products
// @Param        id  path  string  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UpsertDailyStat godoc
// @Summary      Registrar rendimiento de una fecha (sobrescribe si existe)
// @Tags         daily-stats
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpsertDailyStatRequest  true  "Datos del día"
// @Success      200   {object}  dto.ComputedMetricResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/daily-stats [put]
func (h *ProductHandler) UpsertDailyStat(c *fiber.Ctx) error {
	var in dto.UpsertDailyStatRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpsertDailyStat(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveDailyStat godoc
// @Summary      Eliminar la entrada de una fecha
// @Tags         daily-stats
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        date  path  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.ComputedMetricResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/daily-stats/{date} [delete]
func (h *ProductHandler) RemoveDailyStat(c *fiber.Ctx) error {
	out, err := h.uc.RemoveDailyStat(c.Params("id"), c.Params("date"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveAllDailyStats godoc
// @Summary      Vaciar el libro diario (con snapshot de deshacer)
// @Tags         daily-stats
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.ComputedMetricResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/daily-stats [delete]
func (h *ProductHandler) RemoveAllDailyStats(c *fiber.Ctx) error {
	out, err := h.uc.RemoveAllDailyStats(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RevertLastRemoval godoc
// @Summary      Revertir el último borrado masivo (slot único)
// @Tags         daily-stats
// @Produce      json
// @Success      200  {object}  dto.ComputedMetricResponse
// @Success      204  "No había snapshot que revertir"
// @Router       /api/daily-stats/revert [post]
func (h *ProductHandler) RevertLastRemoval(c *fiber.Ctx) error {
	out, err := h.uc.RevertLastRemoval()
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		// Revertir sin snapshot es un no-op definido, no un error.
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.JSON(out)
}

// AddExpense godoc
// @Summary      Registrar gasto puntual
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.AddExpenseRequest  true  "Datos del gasto"
// @Success      201   {object}  dto.ExpenseDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/expenses [post]
func (h *ProductHandler) AddExpense(c *fiber.Ctx) error {
	var in dto.AddExpenseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddExpense(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RemoveExpense godoc
// @Summary      Eliminar gasto por id (no-op si no existe)
// @Tags         expenses
// @Param        id         path  string  true  "ID del producto"
// @Param        expenseId  path  string  true  "ID del gasto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/expenses/{expenseId} [delete]
func (h *ProductHandler) RemoveExpense(c *fiber.Ctx) error {
	if err := h.uc.RemoveExpense(c.Params("id"), c.Params("expenseId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
