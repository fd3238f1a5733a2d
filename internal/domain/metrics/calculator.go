// Package metrics implementa el motor de métricas derivadas: transformaciones
// puras de un producto y su libro diario a indicadores financieros. Ninguna
// función de este paquete muta estado; el "hoy" de referencia siempre llega
// como parámetro para que los cálculos sean deterministas y testeables.
package metrics

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/ledger"
)

// ComputedMetric producto más sus indicadores derivados. Nunca se almacena:
// se recalcula desde el producto en cada lectura.
//
// Los ratios son float64 porque el crecimiento usa +Inf como centinela de
// "nueva ganancia sin base de comparación"; ese valor es parte del contrato
// del motor y la capa de presentación decide cómo mostrarlo.
type ComputedMetric struct {
	entity.Product

	Revenue       decimal.Decimal // Price × Conversions
	Profit        decimal.Decimal // Revenue − AdSpend − TotalExpenses
	TotalExpenses decimal.Decimal

	CPC           float64 // AdSpend / Clicks (0 si Clicks = 0)
	CPA           float64 // AdSpend / Conversions (0 si Conversions = 0)
	ROAS          float64 // Revenue / AdSpend (0 si AdSpend = 0)
	ROI           float64 // Profit / AdSpend × 100 (0 si AdSpend = 0)
	ProfitPerSale float64 // Profit / Conversions (0 si Conversions = 0)
	Margin        float64 // Profit / Revenue × 100 (0 si Revenue = 0)

	MoMProfitGrowth float64
	YoYProfitGrowth float64
}

// Compute deriva todas las métricas de un producto. today ancla las ventanas
// de crecimiento MoM/YoY y se trunca a fecha calendario UTC.
func Compute(p *entity.Product, today time.Time) ComputedMetric {
	today = ledger.NormalizeDate(today)

	totalExpenses := p.TotalExpenses()
	revenue := p.Price.Mul(decimal.NewFromInt(int64(p.Conversions)))
	profit := revenue.Sub(p.AdSpend).Sub(totalExpenses)

	m := ComputedMetric{
		Product:       *p.Clone(),
		Revenue:       revenue,
		Profit:        profit,
		TotalExpenses: totalExpenses,
		CPC:           safeDiv(p.AdSpend.InexactFloat64(), float64(p.Clicks)),
		CPA:           safeDiv(p.AdSpend.InexactFloat64(), float64(p.Conversions)),
		ROAS:          safeDiv(revenue.InexactFloat64(), p.AdSpend.InexactFloat64()),
		ROI:           safeDiv(profit.InexactFloat64(), p.AdSpend.InexactFloat64()) * 100,
		ProfitPerSale: safeDiv(profit.InexactFloat64(), float64(p.Conversions)),
		Margin:        safeDiv(profit.InexactFloat64(), revenue.InexactFloat64()) * 100,
	}

	m.MoMProfitGrowth = momGrowth(p, today)
	m.YoYProfitGrowth = yoyGrowth(p, today)
	return m
}

// momGrowth compara la ganancia del mes en curso [día 1, hoy] contra el mes
// anterior truncado al mismo número de días transcurridos, para no comparar
// un mes incompleto contra uno completo.
func momGrowth(p *entity.Product, today time.Time) float64 {
	currentStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	prevLastDay := currentStart.AddDate(0, 0, -1)
	prevStart := time.Date(prevLastDay.Year(), prevLastDay.Month(), 1, 0, 0, 0, 0, time.UTC)

	endDay := today.Day()
	if prevLastDay.Day() < endDay {
		endDay = prevLastDay.Day()
	}
	prevEnd := time.Date(prevLastDay.Year(), prevLastDay.Month(), endDay, 0, 0, 0, 0, time.UTC)

	current := periodProfit(p, currentStart, today)
	previous := periodProfit(p, prevStart, prevEnd)
	return GrowthRate(current, previous)
}

// yoyGrowth compara [1 ene, hoy] contra [1 ene año anterior, mismo mes/día un año atrás].
func yoyGrowth(p *entity.Product, today time.Time) float64 {
	currentStart := time.Date(today.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	prevStart := time.Date(today.Year()-1, 1, 1, 0, 0, 0, 0, time.UTC)
	prevEnd := time.Date(today.Year()-1, today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	current := periodProfit(p, currentStart, today)
	previous := periodProfit(p, prevStart, prevEnd)
	return GrowthRate(current, previous)
}

// periodProfit ganancia de un período cerrado [from, to]:
// Σ(revenue − adSpend) de las entradas del libro menos Σ amount de los gastos
// cuya fecha cae dentro del período.
func periodProfit(p *entity.Product, from, to time.Time) decimal.Decimal {
	profit := decimal.Zero
	for _, s := range p.DailyStats {
		if inRange(s.Date, from, to) {
			profit = profit.Add(s.Revenue.Sub(s.AdSpend))
		}
	}
	for _, e := range p.Expenses {
		if inRange(e.Date, from, to) {
			profit = profit.Sub(e.Amount)
		}
	}
	return profit
}

// GrowthRate regla de tres vías para ratios de crecimiento:
//   - base ≠ 0            → (actual − base) / |base| × 100
//   - base = 0, actual > 0 → +Inf ("nueva ganancia, sin base")
//   - base = 0, actual ≤ 0 → 0
func GrowthRate(current, previous decimal.Decimal) float64 {
	if !previous.IsZero() {
		return current.Sub(previous).Div(previous.Abs()).InexactFloat64() * 100
	}
	if current.Sign() > 0 {
		return math.Inf(1)
	}
	return 0
}

func inRange(d, from, to time.Time) bool {
	return !d.Before(from) && !d.After(to)
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
