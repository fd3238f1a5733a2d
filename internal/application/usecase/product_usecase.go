package usecase

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/ports"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/ledger"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/metrics"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// ProductUseCase comandos sobre el Ledger Store y la proyección de métricas
// por producto. Valida defensivamente las entradas (montos negativos, fechas
// malformadas) antes de tocar el store: el store nunca recibe un campo
// numérico negativo.
type ProductUseCase struct {
	repo     repository.LedgerRepository
	ids      ports.IDGenerator
	clock    ports.Clock
	seedDays int

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewProductUseCase construye el caso de uso. seedDays ≤ 0 usa la ventana
// por defecto de 370 días; rng alimenta la siembra de histórico (los tests
// pasan una semilla fija).
func NewProductUseCase(repo repository.LedgerRepository, ids ports.IDGenerator, clock ports.Clock, seedDays int, rng *rand.Rand) *ProductUseCase {
	if seedDays <= 0 {
		seedDays = ledger.SeedWindowDays
	}
	return &ProductUseCase{repo: repo, ids: ids, clock: clock, seedDays: seedDays, rng: rng}
}

// Create crea un producto y siembra su histórico diario: los totales dados se
// distribuyen pseudoaleatoriamente sobre la ventana histórica, de modo que
// los desgloses por período y las comparaciones YoY tienen datos desde el
// primer día.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ComputedMetricResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price.Sign() < 0 || in.AdSpend.Sign() < 0 || in.Clicks < 0 || in.Conversions < 0 {
		return nil, fmt.Errorf("%w: los valores no pueden ser negativos", domain.ErrInvalidInput)
	}

	now := uc.clock.Now()
	revenue := in.Price.Mul(decimal.NewFromInt(int64(in.Conversions)))

	uc.rngMu.Lock()
	stats := ledger.SeedDailyHistory(in.AdSpend, revenue, in.Conversions, uc.seedDays, now, uc.rng)
	uc.rngMu.Unlock()

	p := &entity.Product{
		ID:          uc.ids.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Clicks:      in.Clicks,
		DailyStats:  stats,
	}
	// La siembra suma exactamente los totales dados; recalcular desde el
	// libro deja los cacheados consistentes con el invariante del store.
	ledger.RecalcTotals(p)

	if err := uc.repo.CreateProduct(p); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	return uc.toResponse(p, now), nil
}

// GetByID devuelve el producto con sus métricas derivadas.
func (uc *ProductUseCase) GetByID(id string) (*dto.ComputedMetricResponse, error) {
	p, err := uc.repo.GetProduct(id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p, uc.clock.Now()), nil
}

// List devuelve todos los productos con sus métricas derivadas, recalculadas
// en esta lectura.
func (uc *ProductUseCase) List() ([]dto.ComputedMetricResponse, error) {
	products, err := uc.repo.ListProducts()
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	out := make([]dto.ComputedMetricResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *uc.toResponse(p, now))
	}
	return out, nil
}

// UpdateDetails edita nombre, descripción y precio.
func (uc *ProductUseCase) UpdateDetails(id string, in dto.UpdateProductDetailsRequest) (*dto.ComputedMetricResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.Price.Sign() < 0 {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	p, err := uc.repo.UpdateProductDetails(id, in.Name, in.Description, in.Price)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p, uc.clock.Now()), nil
}

// Delete elimina el producto y su libro.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.DeleteProduct(id)
}

// UpsertDailyStat registra el rendimiento de una fecha (sobrescribe si ya existe).
func (uc *ProductUseCase) UpsertDailyStat(productID string, in dto.UpsertDailyStatRequest) (*dto.ComputedMetricResponse, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.AdSpend.Sign() < 0 || in.Sales < 0 {
		return nil, fmt.Errorf("%w: los valores no pueden ser negativos", domain.ErrInvalidInput)
	}
	p, err := uc.repo.UpsertDailyStat(productID, date, in.AdSpend, in.Sales)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p, uc.clock.Now()), nil
}

// RemoveDailyStat elimina la entrada de una fecha (no-op si no existe).
func (uc *ProductUseCase) RemoveDailyStat(productID, dateStr string) (*dto.ComputedMetricResponse, error) {
	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.RemoveDailyStat(productID, date)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p, uc.clock.Now()), nil
}

// RemoveAllDailyStats vacía el libro del producto capturando el snapshot de
// deshacer. La ventana de reversión la administra la UI; el motor no impone
// plazo.
func (uc *ProductUseCase) RemoveAllDailyStats(productID string) (*dto.ComputedMetricResponse, error) {
	p, err := uc.repo.RemoveAllDailyStats(productID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(p, uc.clock.Now()), nil
}

// RevertLastRemoval restaura el último borrado masivo. Devuelve (nil, nil)
// si no había snapshot: revertir sin respaldo es un no-op, no un error.
func (uc *ProductUseCase) RevertLastRemoval() (*dto.ComputedMetricResponse, error) {
	p, err := uc.repo.RevertLastRemoval()
	if err != nil || p == nil {
		return nil, err
	}
	return uc.toResponse(p, uc.clock.Now()), nil
}

// AddExpense registra un gasto puntual (monto estrictamente positivo).
func (uc *ProductUseCase) AddExpense(productID string, in dto.AddExpenseRequest) (*dto.ExpenseDTO, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description es requerida", domain.ErrInvalidInput)
	}
	if in.Amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: el monto debe ser mayor que cero", domain.ErrInvalidInput)
	}
	e := &entity.Expense{
		ID:          uc.ids.NewID(),
		ProductID:   productID,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
	}
	if err := uc.repo.AddExpense(productID, e); err != nil {
		return nil, err
	}
	return &dto.ExpenseDTO{
		ID:          e.ID,
		ProductID:   e.ProductID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        dto.FormatDate(e.Date),
	}, nil
}

// RemoveExpense elimina un gasto por id (no-op si el id no existe).
func (uc *ProductUseCase) RemoveExpense(productID, expenseID string) error {
	return uc.repo.RemoveExpense(productID, expenseID)
}

func (uc *ProductUseCase) toResponse(p *entity.Product, now time.Time) *dto.ComputedMetricResponse {
	resp := dto.ToComputedMetricResponse(metrics.Compute(p, now))
	return &resp
}

func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(dto.DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: fecha inválida %q", domain.ErrInvalidInput, s)
	}
	return d, nil
}
