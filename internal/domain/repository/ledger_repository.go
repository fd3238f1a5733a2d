package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// LedgerRepository define el puerto del Ledger Store: la colección mutable de
// productos con su libro diario y gastos (DIP, la implementación vive en
// infrastructure). Toda operación de escritura recalcula los totales cacheados
// del producto afectado antes de retornar; no hay escrituras parciales: una
// búsqueda fallida aborta sin mutar nada.
//
// Las lecturas devuelven copias profundas. Las operaciones sobre un producto
// desconocido fallan con domain.ErrNotFound; borrar una fecha o un gasto
// inexistente es un no-op, no un error.
type LedgerRepository interface {
	CreateProduct(p *entity.Product) error
	GetProduct(id string) (*entity.Product, error)
	ListProducts() ([]*entity.Product, error)
	DeleteProduct(id string) error

	// UpdateProductDetails actualiza nombre, descripción y precio. Si el
	// precio cambia, reescribe Revenue = precio × ventas en todo el libro.
	UpdateProductDetails(id, name, description string, price decimal.Decimal) (*entity.Product, error)

	// UpsertDailyStat inserta o reemplaza la entrada del libro para la fecha
	// dada (una entrada por fecha) y recalcula los totales cacheados.
	UpsertDailyStat(productID string, date time.Time, adSpend decimal.Decimal, sales int) (*entity.Product, error)
	RemoveDailyStat(productID string, date time.Time) (*entity.Product, error)

	// RemoveAllDailyStats vacía el libro capturando antes un snapshot de
	// deshacer (slot único global). No-op sin snapshot si el libro ya está vacío.
	RemoveAllDailyStats(productID string) (*entity.Product, error)

	// RevertLastRemoval restaura el último libro capturado y consume el
	// snapshot; devuelve (nil, nil) si no hay nada que revertir.
	RevertLastRemoval() (*entity.Product, error)

	AddExpense(productID string, e *entity.Expense) error
	RemoveExpense(productID, expenseID string) error
}
