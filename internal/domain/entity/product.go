package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto anunciado y su libro diario de rendimiento.
// AdSpend y Conversions son totales cacheados: siempre deben ser iguales a la
// suma sobre DailyStats (invariante central del store, se recalculan en cada escritura).
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta unitario
	AdSpend     decimal.Decimal // total cacheado = Σ DailyStats[].AdSpend
	Clicks      int
	Conversions int         // total cacheado = Σ DailyStats[].Sales
	DailyStats  []DailyStat // ordenado ascendente por fecha, máximo una entrada por fecha
	Expenses    []Expense   // ordenado descendente por fecha
}

// DailyStat registro diario de rendimiento publicitario.
// Revenue se congela al momento de escritura como Price × Sales; si el precio
// del producto cambia, el store lo reescribe para todo el libro.
type DailyStat struct {
	Date    time.Time // fecha calendario UTC, sin componente horario
	AdSpend decimal.Decimal
	Revenue decimal.Decimal
	Sales   int
}

// Expense gasto puntual asociado a un producto (suscripciones, herramientas, etc.).
type Expense struct {
	ID          string
	ProductID   string
	Description string
	Amount      decimal.Decimal
	Date        time.Time
}

// Clone devuelve una copia profunda del producto.
// El store entrega siempre copias para que los cálculos puros nunca
// observen un libro a mitad de mutación.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	cp := *p
	cp.DailyStats = append([]DailyStat(nil), p.DailyStats...)
	cp.Expenses = append([]Expense(nil), p.Expenses...)
	return &cp
}

// TotalExpenses suma los montos de todos los gastos del producto.
func (p *Product) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, e := range p.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
