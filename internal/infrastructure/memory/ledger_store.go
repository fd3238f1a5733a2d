// Package memory implementa los puertos de persistencia sobre colecciones en
// memoria. El motor de métricas está especificado contra un libro en memoria;
// la carga/persistencia durable es responsabilidad de un colaborador externo.
package memory

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/ledger"
)

// undoSnapshot respaldo del libro completo de un producto, tomado justo antes
// de un borrado masivo. Slot único a nivel de store: una segunda captura lo
// sobrescribe sin aviso, incluso si es de otro producto. Limitación conocida
// y deliberada; ver LedgerStore.
type undoSnapshot struct {
	productID string
	stats     []entity.DailyStat
}

// LedgerStore implementación en memoria de repository.LedgerRepository.
//
// Un único RWMutex serializa todas las mutaciones (el dataset esperado es
// pequeño); los totales derivados nunca se observan fuera de sincronía con el
// libro que resumen. El slot de deshacer comparte el mismo mutex, así que
// capturas y reversiones se serializan con las mutaciones del libro.
type LedgerStore struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	order    []string // ids en orden de creación, para listados estables
	undo     *undoSnapshot
}

// NewLedgerStore construye el store vacío.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{products: make(map[string]*entity.Product)}
}

// CreateProduct registra un producto nuevo. El llamador ya generó el id y
// sembró el libro inicial.
func (s *LedgerStore) CreateProduct(p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; ok {
		return domain.ErrConflict
	}
	s.products[p.ID] = p.Clone()
	s.order = append(s.order, p.ID)
	return nil
}

// GetProduct devuelve una copia profunda del producto.
func (s *LedgerStore) GetProduct(id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

// ListProducts devuelve copias de todos los productos en orden de creación.
func (s *LedgerStore) ListProducts() ([]*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.products[id].Clone())
	}
	return out, nil
}

// DeleteProduct elimina el producto y todo su libro.
func (s *LedgerStore) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.products, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// UpdateProductDetails actualiza nombre, descripción y precio. Un cambio de
// precio reescribe el revenue de todo el libro; el gasto diario no se toca.
func (s *LedgerStore) UpdateProductDetails(id, name, description string, price decimal.Decimal) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	priceChanged := !p.Price.Equal(price)
	p.Name = name
	p.Description = description
	p.Price = price
	if priceChanged {
		ledger.RepriceDailyStats(p)
	}
	return p.Clone(), nil
}

// UpsertDailyStat inserta o reemplaza la entrada de la fecha dada y deja los
// totales cacheados iguales a la suma del libro resultante.
func (s *LedgerStore) UpsertDailyStat(productID string, date time.Time, adSpend decimal.Decimal, sales int) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ledger.UpsertDailyStat(p, date, adSpend, sales)
	return p.Clone(), nil
}

// RemoveDailyStat elimina la entrada de la fecha dada; si no existe es un
// no-op, no un error.
func (s *LedgerStore) RemoveDailyStat(productID string, date time.Time) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	ledger.RemoveDailyStat(p, date)
	return p.Clone(), nil
}

// RemoveAllDailyStats vacía el libro del producto, capturando antes el
// snapshot de deshacer. Con el libro ya vacío no hay nada que capturar ni
// borrar.
func (s *LedgerStore) RemoveAllDailyStats(productID string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if len(p.DailyStats) > 0 {
		s.undo = &undoSnapshot{
			productID: p.ID,
			stats:     append([]entity.DailyStat(nil), p.DailyStats...),
		}
		p.DailyStats = nil
		ledger.RecalcTotals(p)
	}
	return p.Clone(), nil
}

// RevertLastRemoval restaura el libro capturado y consume el snapshot: una
// segunda reversión sin nueva captura es imposible. Sin snapshot devuelve
// (nil, nil). Si el producto fue eliminado después de la captura, el snapshot
// se descarta igualmente.
func (s *LedgerStore) RevertLastRemoval() (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.undo == nil {
		return nil, nil
	}
	snap := s.undo
	s.undo = nil
	p, ok := s.products[snap.productID]
	if !ok {
		return nil, nil
	}
	p.DailyStats = snap.stats
	ledger.RecalcTotals(p)
	return p.Clone(), nil
}

// AddExpense agrega el gasto manteniendo la colección ordenada descendente
// por fecha.
func (s *LedgerStore) AddExpense(productID string, e *entity.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	ledger.InsertExpense(p, *e)
	return nil
}

// RemoveExpense elimina por id; un id desconocido es un no-op.
func (s *LedgerStore) RemoveExpense(productID, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	ledger.RemoveExpense(p, expenseID)
	return nil
}
