package metrics_test

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/ledger"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// productWithStats construye un producto con el libro dado y los totales
// cacheados ya consistentes.
func productWithStats(price decimal.Decimal, stats []entity.DailyStat) *entity.Product {
	p := &entity.Product{
		ID:         "p1",
		Name:       "Producto de prueba",
		Price:      price,
		DailyStats: stats,
	}
	ledger.RecalcTotals(p)
	return p
}

// TestCompute_EscenarioReferencia valida el escenario de referencia completo:
// precio 500, dos entradas (100/1 y 200/2), sin gastos.
func TestCompute_EscenarioReferencia(t *testing.T) {
	p := productWithStats(money("500"), []entity.DailyStat{
		{Date: date(2024, 1, 1), AdSpend: money("100"), Revenue: money("500"), Sales: 1},
		{Date: date(2024, 2, 1), AdSpend: money("200"), Revenue: money("1000"), Sales: 2},
	})
	p.Clicks = 30

	m := metrics.Compute(p, date(2024, 2, 15))

	assert.True(t, m.Revenue.Equal(money("1500")), "revenue = precio × conversiones = 500 × 3")
	assert.True(t, m.Profit.Equal(money("1200")), "profit = 1500 − 300 − 0")
	assert.InDelta(t, 100.0, m.CPA, 1e-9, "cpa = 300/3")
	assert.InDelta(t, 400.0, m.ROI, 1e-9, "roi = 1200/300 × 100")
	assert.InDelta(t, 10.0, m.CPC, 1e-9, "cpc = 300/30")
	assert.InDelta(t, 5.0, m.ROAS, 1e-9, "roas = 1500/300")
	assert.InDelta(t, 400.0, m.ProfitPerSale, 1e-9)
	assert.InDelta(t, 80.0, m.Margin, 1e-9, "margin = 1200/1500 × 100")
}

// TestCompute_DenominadoresCero todos los ratios valen 0 para un producto sin
// clicks, conversiones ni gasto: nunca NaN ni error.
func TestCompute_DenominadoresCero(t *testing.T) {
	p := productWithStats(money("500"), nil)

	m := metrics.Compute(p, date(2024, 6, 1))

	for name, v := range map[string]float64{
		"cpc": m.CPC, "cpa": m.CPA, "roas": m.ROAS, "roi": m.ROI,
		"profit_per_sale": m.ProfitPerSale, "margin": m.Margin,
	} {
		assert.Zerof(t, v, "%s debe ser 0 con denominador cero", name)
		assert.Falsef(t, math.IsNaN(v), "%s nunca debe ser NaN", name)
	}
}

// TestCompute_GastosRestanDelProfit los gastos puntuales reducen la ganancia
// pero no afectan el ROAS (que solo mira revenue/adSpend).
func TestCompute_GastosRestanDelProfit(t *testing.T) {
	p := productWithStats(money("500"), []entity.DailyStat{
		{Date: date(2024, 1, 1), AdSpend: money("100"), Revenue: money("500"), Sales: 1},
	})
	p.Expenses = []entity.Expense{
		{ID: "e1", ProductID: "p1", Description: "Software", Amount: money("50"), Date: date(2024, 1, 15)},
	}

	m := metrics.Compute(p, date(2024, 1, 20))

	assert.True(t, m.TotalExpenses.Equal(money("50")))
	assert.True(t, m.Profit.Equal(money("350")), "profit = 500 − 100 − 50")
	assert.InDelta(t, 5.0, m.ROAS, 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crecimiento MoM
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_MoMVentanaTruncada el mes anterior se compara solo hasta el
// mismo día del mes transcurrido: una entrada posterior al corte no cuenta.
func TestCompute_MoMVentanaTruncada(t *testing.T) {
	p := productWithStats(money("500"), []entity.DailyStat{
		// Enero: 400 de ganancia dentro de la ventana, 600 fuera de ella
		{Date: date(2024, 1, 10), AdSpend: money("100"), Revenue: money("500"), Sales: 1},
		{Date: date(2024, 1, 25), AdSpend: money("400"), Revenue: money("1000"), Sales: 2},
		// Febrero (mes en curso al día 15): ganancia 800
		{Date: date(2024, 2, 1), AdSpend: money("200"), Revenue: money("1000"), Sales: 2},
	})

	m := metrics.Compute(p, date(2024, 2, 15))

	// Ventana previa = [1 ene, 15 ene]: solo la entrada del 10 de enero.
	// growth = (800 − 400) / 400 × 100 = 100
	assert.InDelta(t, 100.0, m.MoMProfitGrowth, 1e-9)
}

// TestCompute_MoMCentinelaNuevaGanancia base cero y ganancia actual positiva
// produce +Inf, el centinela de "nueva ganancia sin base".
func TestCompute_MoMCentinelaNuevaGanancia(t *testing.T) {
	p := productWithStats(money("500"), []entity.DailyStat{
		{Date: date(2024, 2, 5), AdSpend: money("500"), Revenue: money("1000"), Sales: 2},
	})

	m := metrics.Compute(p, date(2024, 2, 15))

	require.True(t, math.IsInf(m.MoMProfitGrowth, 1), "base 0 y actual > 0 debe dar +Inf")
}

// TestCompute_MoMAmbosCero base cero y actual cero (o negativo) da crecimiento
// 0 exacto, no NaN ni centinela.
func TestCompute_MoMAmbosCero(t *testing.T) {
	p := productWithStats(money("500"), nil)

	m := metrics.Compute(p, date(2024, 2, 15))

	assert.Zero(t, m.MoMProfitGrowth)
	assert.Zero(t, m.YoYProfitGrowth)
}

// TestCompute_MoMBaseNegativa con base negativa el divisor es |base|, de modo
// que pasar de pérdida a ganancia da crecimiento positivo.
func TestCompute_MoMBaseNegativa(t *testing.T) {
	p := productWithStats(money("500"), []entity.DailyStat{
		// Enero: pérdida de 200
		{Date: date(2024, 1, 5), AdSpend: money("700"), Revenue: money("500"), Sales: 1},
		// Febrero: ganancia de 300
		{Date: date(2024, 2, 5), AdSpend: money("200"), Revenue: money("500"), Sales: 1},
	})

	m := metrics.Compute(p, date(2024, 2, 15))

	// (300 − (−200)) / |−200| × 100 = 250
	assert.InDelta(t, 250.0, m.MoMProfitGrowth, 1e-9)
}

// ──────────────────────────────────────────────────────────────────────────────
// Crecimiento YoY
// ──────────────────────────────────────────────────────────────────────────────

// TestCompute_YoYComparaMismoTramo el año anterior se compara desde el 1 de
// enero hasta el mismo mes/día un año atrás.
func TestCompute_YoYComparaMismoTramo(t *testing.T) {
	p := productWithStats(money("500"), []entity.DailyStat{
		// 2023: 500 dentro del tramo comparado, 900 después del corte (15 jun)
		{Date: date(2023, 3, 1), AdSpend: money("500"), Revenue: money("1000"), Sales: 2},
		{Date: date(2023, 9, 1), AdSpend: money("100"), Revenue: money("1000"), Sales: 2},
		// 2024 hasta el 15 de junio: ganancia 1000
		{Date: date(2024, 2, 1), AdSpend: money("500"), Revenue: money("1500"), Sales: 3},
	})

	m := metrics.Compute(p, date(2024, 6, 15))

	// previo = [1 ene 2023, 15 jun 2023] → 500; actual = 1000
	// growth = (1000 − 500) / 500 × 100 = 100
	assert.InDelta(t, 100.0, m.YoYProfitGrowth, 1e-9)
}

// TestGrowthRate_ReglaDeTresVias tabla de la regla de crecimiento.
func TestGrowthRate_ReglaDeTresVias(t *testing.T) {
	cases := []struct {
		name     string
		current  string
		previous string
		want     float64
		infinite bool
	}{
		{name: "base positiva", current: "150", previous: "100", want: 50},
		{name: "base negativa", current: "50", previous: "-100", want: 150},
		{name: "caida a perdida", current: "-50", previous: "100", want: -150},
		{name: "nueva ganancia", current: "500", previous: "0", infinite: true},
		{name: "ambos cero", current: "0", previous: "0", want: 0},
		{name: "base cero actual negativo", current: "-10", previous: "0", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := metrics.GrowthRate(money(tc.current), money(tc.previous))
			if tc.infinite {
				assert.True(t, math.IsInf(got, 1))
				return
			}
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}
