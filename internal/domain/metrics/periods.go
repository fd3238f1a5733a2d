package metrics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// MonthlyBucket agregado de un mes calendario del libro de un producto.
// ProfitChange solo existe entre meses consecutivos verificados; un hueco en
// los datos (mes sin entradas) deja al bucket sin valor de cambio. +Inf en
// ProfitChange significa "nueva ganancia sin base", igual que en el cálculo
// de crecimiento MoM/YoY.
type MonthlyBucket struct {
	Month         string // ej. "January 2024"
	Year          int
	MonthIndex    int // 0–11
	TotalSales    int
	TotalAdSpend  decimal.Decimal
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	ROI           float64
	ProfitChange  *float64
}

// WeeklyBucket agregado de una semana calendario (lunes a domingo).
type WeeklyBucket struct {
	Week          string    // ej. "Week of Jan 1, 2024"
	WeekStart     time.Time // lunes de la semana
	TotalSales    int
	TotalAdSpend  decimal.Decimal
	TotalRevenue  decimal.Decimal
	TotalExpenses decimal.Decimal
	NetProfit     decimal.Decimal
	ROI           float64
	ProfitChange  *float64
}

type periodTotals struct {
	sales    int
	adSpend  decimal.Decimal
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

// MonthlyBreakdown agrupa libro y gastos por mes calendario. Solo produce
// buckets para meses con al menos una entrada o gasto (no sintetiza meses
// vacíos intermedios) y los ordena del más reciente al más antiguo.
func MonthlyBreakdown(p *entity.Product) []MonthlyBucket {
	if len(p.DailyStats) == 0 && len(p.Expenses) == 0 {
		return []MonthlyBucket{}
	}

	// Clave lineal año×12+mes: hace trivial la verificación de adyacencia
	// incluyendo el salto diciembre → enero.
	totals := make(map[int]*periodTotals)
	bucketFor := func(d time.Time) *periodTotals {
		key := d.Year()*12 + int(d.Month()) - 1
		t, ok := totals[key]
		if !ok {
			t = &periodTotals{adSpend: decimal.Zero, revenue: decimal.Zero, expenses: decimal.Zero}
			totals[key] = t
		}
		return t
	}

	for _, s := range p.DailyStats {
		t := bucketFor(s.Date)
		t.sales += s.Sales
		t.adSpend = t.adSpend.Add(s.AdSpend)
		t.revenue = t.revenue.Add(s.Revenue)
	}
	for _, e := range p.Expenses {
		t := bucketFor(e.Date)
		t.expenses = t.expenses.Add(e.Amount)
	}

	keys := make([]int, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	buckets := make([]MonthlyBucket, 0, len(keys))
	for _, k := range keys {
		t := totals[k]
		year, monthIdx := k/12, k%12
		netProfit := t.revenue.Sub(t.adSpend).Sub(t.expenses)
		roi := 0.0
		if t.adSpend.Sign() > 0 {
			roi = netProfit.Div(t.adSpend).InexactFloat64() * 100
		}
		buckets = append(buckets, MonthlyBucket{
			Month:         fmt.Sprintf("%s %d", time.Month(monthIdx+1), year),
			Year:          year,
			MonthIndex:    monthIdx,
			TotalSales:    t.sales,
			TotalAdSpend:  t.adSpend,
			TotalRevenue:  t.revenue,
			TotalExpenses: t.expenses,
			NetProfit:     netProfit,
			ROI:           roi,
		})
	}

	// Cambio período-a-período solo entre buckets adyacentes en el calendario;
	// keys[i] y keys[i+1] son consecutivos si difieren exactamente en 1.
	for i := 0; i < len(buckets)-1; i++ {
		if keys[i] == keys[i+1]+1 {
			change := GrowthRate(buckets[i].NetProfit, buckets[i+1].NetProfit)
			buckets[i].ProfitChange = &change
		}
	}
	return buckets
}

// WeeklyBreakdown agrupa libro y gastos por semana calendario iniciada en
// lunes, con las mismas reglas de orden, adyacencia y cambio que el mensual.
func WeeklyBreakdown(p *entity.Product) []WeeklyBucket {
	if len(p.DailyStats) == 0 && len(p.Expenses) == 0 {
		return []WeeklyBucket{}
	}

	totals := make(map[time.Time]*periodTotals)
	bucketFor := func(d time.Time) *periodTotals {
		start := weekStart(d)
		t, ok := totals[start]
		if !ok {
			t = &periodTotals{adSpend: decimal.Zero, revenue: decimal.Zero, expenses: decimal.Zero}
			totals[start] = t
		}
		return t
	}

	for _, s := range p.DailyStats {
		t := bucketFor(s.Date)
		t.sales += s.Sales
		t.adSpend = t.adSpend.Add(s.AdSpend)
		t.revenue = t.revenue.Add(s.Revenue)
	}
	for _, e := range p.Expenses {
		t := bucketFor(e.Date)
		t.expenses = t.expenses.Add(e.Amount)
	}

	starts := make([]time.Time, 0, len(totals))
	for s := range totals {
		starts = append(starts, s)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].After(starts[j]) })

	buckets := make([]WeeklyBucket, 0, len(starts))
	for _, start := range starts {
		t := totals[start]
		netProfit := t.revenue.Sub(t.adSpend).Sub(t.expenses)
		roi := 0.0
		if t.adSpend.Sign() > 0 {
			roi = netProfit.Div(t.adSpend).InexactFloat64() * 100
		}
		buckets = append(buckets, WeeklyBucket{
			Week:          "Week of " + start.Format("Jan 2, 2006"),
			WeekStart:     start,
			TotalSales:    t.sales,
			TotalAdSpend:  t.adSpend,
			TotalRevenue:  t.revenue,
			TotalExpenses: t.expenses,
			NetProfit:     netProfit,
			ROI:           roi,
		})
	}

	for i := 0; i < len(buckets)-1; i++ {
		if starts[i].Equal(starts[i+1].AddDate(0, 0, 7)) {
			change := GrowthRate(buckets[i].NetProfit, buckets[i+1].NetProfit)
			buckets[i].ProfitChange = &change
		}
	}
	return buckets
}

// weekStart devuelve el lunes (UTC, medianoche) de la semana de d.
func weekStart(d time.Time) time.Time {
	offset := (int(d.Weekday()) + 6) % 7 // lunes = 0
	d = d.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
