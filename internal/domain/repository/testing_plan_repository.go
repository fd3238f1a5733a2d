package repository

import "github.com/jhoicas/Rentabilidad-api/internal/domain/entity"

// TestingPlanRepository define el puerto de persistencia para planes de
// prueba publicitarios (DIP). List devuelve los planes del más reciente al
// más antiguo.
type TestingPlanRepository interface {
	Create(plan *entity.TestingPlan) error
	GetByID(id string) (*entity.TestingPlan, error)
	List() ([]*entity.TestingPlan, error)
	Update(plan *entity.TestingPlan) error
	Delete(id string) error
}
