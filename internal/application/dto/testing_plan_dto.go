package dto

import "time"

// CreateTestingPlanRequest entrada para registrar una idea de ad-set a probar.
// El plan nace con estado "ongoing".
type CreateTestingPlanRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	AdSetIdea   string `json:"ad_set_idea" validate:"required"`
	Notes       string `json:"notes"`
}

// UpdatePlanStatusRequest cambio de estado de un plan.
type UpdatePlanStatusRequest struct {
	Status string `json:"status" validate:"required"` // ongoing|successful|failed
}

// UpdatePlanNotesRequest actualización de notas de un plan.
type UpdatePlanNotesRequest struct {
	Notes string `json:"notes"`
}

// TestingPlanResponse salida de un plan de prueba.
type TestingPlanResponse struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	AdSetIdea   string    `json:"ad_set_idea"`
	Notes       string    `json:"notes"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
