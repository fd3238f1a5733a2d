package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// TestingPlanHandler maneja las peticiones HTTP para planes de prueba.
type TestingPlanHandler struct {
	uc *usecase.TestingPlanUseCase
}

// NewTestingPlanHandler construye el handler.
func NewTestingPlanHandler(uc *usecase.TestingPlanUseCase) *TestingPlanHandler {
	return &TestingPlanHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar plan de prueba (estado inicial "ongoing")
// @Tags         testing-plans
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTestingPlanRequest  true  "Datos del plan"
// @Success      201   {object}  dto.TestingPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/testing-plans [post]
func (h *TestingPlanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTestingPlanRequest
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
// @Summary      Listar planes de prueba (más recientes primero)
// @Tags         testing-plans
// @Produce      json
// @Success      200  {array}  dto.TestingPlanResponse
// @Router       /api/testing-plans [get]
func (h *TestingPlanHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un plan
// @Tags         testing-plans
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.UpdatePlanStatusRequest  true  "Nuevo estado"
// @Success      200   {object}  dto.TestingPlanResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/testing-plans/{id}/status [patch]
func (h *TestingPlanHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdatePlanStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateStatus(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateNotes godoc
// @Summary      Actualizar notas de un plan
// @Tags         testing-plans
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del plan"
// @Param        body  body  dto.UpdatePlanNotesRequest  true  "Notas"
// @Success      200   {object}  dto.TestingPlanResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/testing-plans/{id}/notes [patch]
func (h *TestingPlanHandler) UpdateNotes(c *fiber.Ctx) error {
	var in dto.UpdatePlanNotesRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateNotes(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar plan de prueba
// @Tags         testing-plans
// @Param        id  path  string  true  "ID del plan"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/testing-plans/{id} [delete]
func (h *TestingPlanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
