package ledger_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/ledger"
)

// TestSeedDailyHistory_SumasExactas la garantía principal de la siembra: las
// sumas diarias igualan exactamente los totales pedidos, sin importar la
// semilla del generador.
func TestSeedDailyHistory_SumasExactas(t *testing.T) {
	today := date(2024, 6, 15)
	totalSpend := money("3500")
	totalRevenue := money("8982")
	totalSales := 18

	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		stats := ledger.SeedDailyHistory(totalSpend, totalRevenue, totalSales, 30, today, rng)

		require.Len(t, stats, 30)

		sumSpend, sumRevenue, sumSales := decimal.Zero, decimal.Zero, 0
		for _, s := range stats {
			sumSpend = sumSpend.Add(s.AdSpend)
			sumRevenue = sumRevenue.Add(s.Revenue)
			sumSales += s.Sales
		}
		assert.True(t, sumSpend.Equal(totalSpend), "semilla %d: Σ adSpend = %s", seed, sumSpend)
		assert.True(t, sumRevenue.Equal(totalRevenue), "semilla %d: Σ revenue = %s", seed, sumRevenue)
		assert.Equal(t, totalSales, sumSales, "semilla %d", seed)
	}
}

// TestSeedDailyHistory_SinValoresNegativos ningún día puede quedar con gasto,
// ingreso o ventas negativas aunque los tramos aleatorios agoten el total antes
// del final de la ventana.
func TestSeedDailyHistory_SinValoresNegativos(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	stats := ledger.SeedDailyHistory(money("100"), money("200"), 3, 120, date(2024, 6, 15), rng)

	for _, s := range stats {
		assert.GreaterOrEqual(t, s.AdSpend.Sign(), 0)
		assert.GreaterOrEqual(t, s.Revenue.Sign(), 0)
		assert.GreaterOrEqual(t, s.Sales, 0)
	}
}

// TestSeedDailyHistory_VentanaTerminaHoy fechas ascendentes, una por día,
// terminando exactamente en today normalizado.
func TestSeedDailyHistory_VentanaTerminaHoy(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	today := time.Date(2024, 6, 15, 17, 45, 0, 0, time.UTC)
	stats := ledger.SeedDailyHistory(money("1000"), money("2000"), 10, 14, today, rng)

	require.Len(t, stats, 14)
	assert.Equal(t, date(2024, 6, 2), stats[0].Date)
	assert.Equal(t, date(2024, 6, 15), stats[len(stats)-1].Date, "el último día es hoy, sin componente horario")
	for i := 1; i < len(stats); i++ {
		assert.Equal(t, stats[i-1].Date.AddDate(0, 0, 1), stats[i].Date, "días consecutivos sin huecos")
	}
}

// TestSeedDailyHistory_TotalesCero con totales en cero la ventana se genera
// igual pero todos los días quedan en cero.
func TestSeedDailyHistory_TotalesCero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stats := ledger.SeedDailyHistory(decimal.Zero, decimal.Zero, 0, 10, date(2024, 6, 15), rng)

	require.Len(t, stats, 10)
	for _, s := range stats {
		assert.True(t, s.AdSpend.IsZero())
		assert.True(t, s.Revenue.IsZero())
		assert.Zero(t, s.Sales)
	}
}

// TestSeedDailyHistory_DiasPorDefecto días ≤ 0 cae en la ventana estándar.
func TestSeedDailyHistory_DiasPorDefecto(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	stats := ledger.SeedDailyHistory(money("1000"), money("2000"), 10, 0, date(2024, 6, 15), rng)

	assert.Len(t, stats, ledger.SeedWindowDays)
}
