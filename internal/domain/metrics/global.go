package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// GlobalTotals reducción de las métricas de todos los productos para las
// tarjetas KPI del dashboard.
type GlobalTotals struct {
	TotalSpend        decimal.Decimal
	TotalRevenue      decimal.Decimal
	TotalMiscExpenses decimal.Decimal
	TotalProfit       decimal.Decimal
	GlobalROAS        float64 // TotalRevenue / TotalSpend (0 si TotalSpend = 0)
}

// DailyPoint una fila de la serie diaria agregada entre productos.
type DailyPoint struct {
	Date    time.Time
	AdSpend decimal.Decimal
	Revenue decimal.Decimal
	Sales   int
}

// GlobalSummary reduce las métricas ya computadas de todos los productos.
func GlobalSummary(products []ComputedMetric) GlobalTotals {
	g := GlobalTotals{
		TotalSpend:        decimal.Zero,
		TotalRevenue:      decimal.Zero,
		TotalMiscExpenses: decimal.Zero,
		TotalProfit:       decimal.Zero,
	}
	for _, m := range products {
		g.TotalSpend = g.TotalSpend.Add(m.AdSpend)
		g.TotalRevenue = g.TotalRevenue.Add(m.Revenue)
		g.TotalMiscExpenses = g.TotalMiscExpenses.Add(m.TotalExpenses)
		g.TotalProfit = g.TotalProfit.Add(m.Profit)
	}
	if g.TotalSpend.Sign() > 0 {
		g.GlobalROAS = g.TotalRevenue.Div(g.TotalSpend).InexactFloat64()
	}
	return g
}

// AggregatedDailySeries suma gasto, ingreso y ventas de todos los productos
// que comparten fecha: una fila por fecha distinta, ascendente. Alimenta la
// gráfica de tendencia global del dashboard.
func AggregatedDailySeries(products []*entity.Product) []DailyPoint {
	byDate := make(map[time.Time]*DailyPoint)
	for _, p := range products {
		for _, s := range p.DailyStats {
			pt, ok := byDate[s.Date]
			if !ok {
				pt = &DailyPoint{Date: s.Date, AdSpend: decimal.Zero, Revenue: decimal.Zero}
				byDate[s.Date] = pt
			}
			pt.AdSpend = pt.AdSpend.Add(s.AdSpend)
			pt.Revenue = pt.Revenue.Add(s.Revenue)
			pt.Sales += s.Sales
		}
	}

	series := make([]DailyPoint, 0, len(byDate))
	for _, pt := range byDate {
		series = append(series, *pt)
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}
