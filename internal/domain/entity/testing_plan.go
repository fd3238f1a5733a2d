package entity

import "time"

// PlanStatus estado de un plan de prueba publicitario.
type PlanStatus string

const (
	PlanOngoing    PlanStatus = "ongoing"
	PlanSuccessful PlanStatus = "successful"
	PlanFailed     PlanStatus = "failed"
)

// Valid indica si el estado es uno de los tres valores permitidos.
func (s PlanStatus) Valid() bool {
	switch s {
	case PlanOngoing, PlanSuccessful, PlanFailed:
		return true
	}
	return false
}

// TestingPlan idea de ad-set a probar para un producto. Entidad independiente:
// no participa en el motor de métricas.
type TestingPlan struct {
	ID          string
	ProductName string
	AdSetIdea   string
	Notes       string
	Status      PlanStatus
	CreatedAt   time.Time
}
