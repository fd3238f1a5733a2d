package usecase

import (
	"fmt"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/ports"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// TestingPlanUseCase CRUD de planes de prueba publicitarios. Entidad par del
// dashboard, sin acoplamiento con el motor de métricas.
type TestingPlanUseCase struct {
	repo  repository.TestingPlanRepository
	ids   ports.IDGenerator
	clock ports.Clock
}

// NewTestingPlanUseCase construye el caso de uso.
func NewTestingPlanUseCase(repo repository.TestingPlanRepository, ids ports.IDGenerator, clock ports.Clock) *TestingPlanUseCase {
	return &TestingPlanUseCase{repo: repo, ids: ids, clock: clock}
}

// Create registra un plan nuevo con estado "ongoing".
func (uc *TestingPlanUseCase) Create(in dto.CreateTestingPlanRequest) (*dto.TestingPlanResponse, error) {
	if in.ProductName == "" || in.AdSetIdea == "" {
		return nil, fmt.Errorf("%w: product_name y ad_set_idea son requeridos", domain.ErrInvalidInput)
	}
	plan := &entity.TestingPlan{
		ID:          uc.ids.NewID(),
		ProductName: in.ProductName,
		AdSetIdea:   in.AdSetIdea,
		Notes:       in.Notes,
		Status:      entity.PlanOngoing,
		CreatedAt:   uc.clock.Now(),
	}
	if err := uc.repo.Create(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// List devuelve todos los planes, más recientes primero.
func (uc *TestingPlanUseCase) List() ([]dto.TestingPlanResponse, error) {
	plans, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TestingPlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, *toPlanResponse(p))
	}
	return out, nil
}

// UpdateStatus cambia el estado de un plan.
func (uc *TestingPlanUseCase) UpdateStatus(id string, in dto.UpdatePlanStatusRequest) (*dto.TestingPlanResponse, error) {
	status := entity.PlanStatus(in.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, in.Status)
	}
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	plan.Status = status
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// UpdateNotes actualiza las notas de un plan.
func (uc *TestingPlanUseCase) UpdateNotes(id string, in dto.UpdatePlanNotesRequest) (*dto.TestingPlanResponse, error) {
	plan, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	plan.Notes = in.Notes
	if err := uc.repo.Update(plan); err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

// Delete elimina un plan por id.
func (uc *TestingPlanUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toPlanResponse(p *entity.TestingPlan) *dto.TestingPlanResponse {
	return &dto.TestingPlanResponse{
		ID:          p.ID,
		ProductName: p.ProductName,
		AdSetIdea:   p.AdSetIdea,
		Notes:       p.Notes,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}
