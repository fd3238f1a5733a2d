// Package ledger contiene los servicios de dominio que mantienen los
// invariantes del libro diario de un producto: una entrada por fecha, orden
// ascendente, y totales cacheados siempre iguales a la suma del libro.
package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// NormalizeDate trunca un instante a fecha calendario UTC (sin hora).
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// UpsertDailyStat inserta o reemplaza la entrada del libro para la fecha dada.
// Revenue se deriva del precio vigente del producto (Price × Sales). Tras la
// escritura el libro queda ordenado y los totales cacheados recalculados.
func UpsertDailyStat(p *entity.Product, date time.Time, adSpend decimal.Decimal, sales int) {
	date = NormalizeDate(date)
	stat := entity.DailyStat{
		Date:    date,
		AdSpend: adSpend,
		Revenue: p.Price.Mul(decimal.NewFromInt(int64(sales))),
		Sales:   sales,
	}

	replaced := false
	for i := range p.DailyStats {
		if p.DailyStats[i].Date.Equal(date) {
			p.DailyStats[i] = stat
			replaced = true
			break
		}
	}
	if !replaced {
		p.DailyStats = append(p.DailyStats, stat)
		sort.Slice(p.DailyStats, func(i, j int) bool {
			return p.DailyStats[i].Date.Before(p.DailyStats[j].Date)
		})
	}

	RecalcTotals(p)
}

// RemoveDailyStat elimina la entrada de la fecha dada y recalcula totales.
// Devuelve false (sin error) si la fecha no existe.
func RemoveDailyStat(p *entity.Product, date time.Time) bool {
	date = NormalizeDate(date)
	for i := range p.DailyStats {
		if p.DailyStats[i].Date.Equal(date) {
			p.DailyStats = append(p.DailyStats[:i], p.DailyStats[i+1:]...)
			RecalcTotals(p)
			return true
		}
	}
	return false
}

// RecalcTotals reestablece el invariante central: los totales cacheados del
// producto son la suma sobre el libro actual.
func RecalcTotals(p *entity.Product) {
	spend := decimal.Zero
	sales := 0
	for _, s := range p.DailyStats {
		spend = spend.Add(s.AdSpend)
		sales += s.Sales
	}
	p.AdSpend = spend
	p.Conversions = sales
}

// RepriceDailyStats reescribe Revenue = Price × Sales en todo el libro.
// Se invoca cuando cambia el precio del producto; AdSpend no se toca.
func RepriceDailyStats(p *entity.Product) {
	for i := range p.DailyStats {
		p.DailyStats[i].Revenue = p.Price.Mul(decimal.NewFromInt(int64(p.DailyStats[i].Sales)))
	}
}

// InsertExpense agrega un gasto manteniendo la colección ordenada
// descendente por fecha (los más recientes primero).
func InsertExpense(p *entity.Product, e entity.Expense) {
	e.Date = NormalizeDate(e.Date)
	p.Expenses = append(p.Expenses, e)
	sort.SliceStable(p.Expenses, func(i, j int) bool {
		return p.Expenses[i].Date.After(p.Expenses[j].Date)
	})
}

// RemoveExpense elimina un gasto por id. Devuelve false si no existe.
func RemoveExpense(p *entity.Product, expenseID string) bool {
	for i := range p.Expenses {
		if p.Expenses[i].ID == expenseID {
			p.Expenses = append(p.Expenses[:i], p.Expenses[i+1:]...)
			return true
		}
	}
	return false
}
