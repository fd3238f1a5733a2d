package memory

import (
	"sync"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// TestingPlanStore implementación en memoria de repository.TestingPlanRepository.
// Los planes nuevos se anteponen: List devuelve del más reciente al más antiguo.
type TestingPlanStore struct {
	mu    sync.RWMutex
	plans []*entity.TestingPlan
}

// NewTestingPlanStore construye el store vacío.
func NewTestingPlanStore() *TestingPlanStore {
	return &TestingPlanStore{}
}

// Create antepone el plan a la lista.
func (s *TestingPlanStore) Create(plan *entity.TestingPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *plan
	s.plans = append([]*entity.TestingPlan{&cp}, s.plans...)
	return nil
}

// GetByID busca un plan por id.
func (s *TestingPlanStore) GetByID(id string) (*entity.TestingPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.plans {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve copias de todos los planes, más recientes primero.
func (s *TestingPlanStore) List() ([]*entity.TestingPlan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.TestingPlan, 0, len(s.plans))
	for _, p := range s.plans {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Update reemplaza el plan con el mismo id.
func (s *TestingPlanStore) Update(plan *entity.TestingPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.plans {
		if p.ID == plan.ID {
			cp := *plan
			s.plans[i] = &cp
			return nil
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el plan por id.
func (s *TestingPlanStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.plans {
		if p.ID == id {
			s.plans = append(s.plans[:i], s.plans[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
