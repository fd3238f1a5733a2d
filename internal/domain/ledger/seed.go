package ledger

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// SeedWindowDays ventana histórica sembrada al crear un producto. 370 días
// para que las comparaciones año-contra-año tengan datos en ambos períodos.
const SeedWindowDays = 370

// SeedDailyHistory distribuye los totales iniciales de un producto sobre la
// ventana histórica terminando en today. Cada día no final toma un tramo
// pseudoaleatorio del 1%–11% del total, acotado por lo que queda; el día más
// reciente recibe el remanente exacto. Garantías: las sumas coinciden
// exactamente con los totales dados y ningún valor diario es negativo.
//
// La forma de la distribución es una conveniencia de arranque, no un modelo
// estadístico; solo importan esas dos garantías.
func SeedDailyHistory(totalSpend, totalRevenue decimal.Decimal, totalSales, days int, today time.Time, rng *rand.Rand) []entity.DailyStat {
	today = NormalizeDate(today)
	if days <= 0 {
		days = SeedWindowDays
	}

	// Ingreso por venta para los días intermedios; el remanente del día
	// final absorbe cualquier resto por redondeo.
	unitRevenue := decimal.Zero
	if totalSales > 0 {
		unitRevenue = totalRevenue.Div(decimal.NewFromInt(int64(totalSales))).Round(2)
	}

	remainingSpend := totalSpend
	remainingRevenue := totalRevenue
	remainingSales := totalSales

	stats := make([]entity.DailyStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		var daySpend, dayRevenue decimal.Decimal
		var daySales int
		if i == 0 {
			daySpend = remainingSpend
			dayRevenue = remainingRevenue
			daySales = remainingSales
		} else {
			factor := decimal.NewFromFloat(0.01 + rng.Float64()*0.10)
			daySpend = decimal.Min(remainingSpend, totalSpend.Mul(factor).Round(2))
			daySales = min(remainingSales, int(factor.InexactFloat64()*float64(totalSales)))
			dayRevenue = decimal.Min(remainingRevenue, unitRevenue.Mul(decimal.NewFromInt(int64(daySales))))
		}

		remainingSpend = remainingSpend.Sub(daySpend)
		remainingRevenue = remainingRevenue.Sub(dayRevenue)
		remainingSales -= daySales

		stats = append(stats, entity.DailyStat{
			Date:    date,
			AdSpend: daySpend,
			Revenue: dayRevenue,
			Sales:   daySales,
		})
	}
	return stats
}
