package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/application/ports"
	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Rentabilidad-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp construye la aplicación Fiber completa con stores en memoria,
// reloj congelado (2024-06-15), ids secuenciales y ventana de siembra corta.
func buildTestApp() *fiber.App {
	clock := ports.ClockFunc(func() time.Time {
		return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	})
	n := 0
	ids := ports.IDFunc(func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	})

	ledgerStore := memory.NewLedgerStore()
	planStore := memory.NewTestingPlanStore()
	rng := rand.New(rand.NewSource(42))

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(ledgerStore, ids, clock, 10, rng),
		MetricsUC:     usecase.NewMetricsUseCase(ledgerStore, clock),
		TestingPlanUC: usecase.NewTestingPlanUseCase(planStore, ids, clock),
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON opcional y decodifica la respuesta.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, out any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

// createProduct helper que crea un producto y devuelve su respuesta decodificada.
func createProduct(t *testing.T, app *fiber.App, name string) map[string]any {
	t.Helper()
	var out map[string]any
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{
		"name":        name,
		"description": "producto de test",
		"price":       "499",
		"ad_spend":    "3500",
		"clicks":      450,
		"conversions": 18,
	}, &out)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductsAPI_CrearYListar(t *testing.T) {
	app := buildTestApp()

	created := createProduct(t, app, "E-Book")
	assert.Equal(t, "id-1", created["id"])
	assert.Equal(t, "8982", created["revenue"], "revenue = 499 × 18")
	assert.Len(t, created["daily_stats"], 10, "el histórico se siembra al crear")

	var list []map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/products", nil, &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)
	assert.Equal(t, "E-Book", list[0]["name"])
}

func TestProductsAPI_CrearSinNombre_Retorna400(t *testing.T) {
	app := buildTestApp()

	var errResp map[string]any
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]any{"price": "10"}, &errResp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errResp["code"])
}

func TestProductsAPI_GetInexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	var errResp map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/products/zzz", nil, &errResp)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errResp["code"])
}

func TestProductsAPI_ActualizarYEliminar(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	var updated map[string]any
	resp := doJSON(t, app, http.MethodPut, "/api/products/"+id, map[string]any{
		"name":  "E-Book v2",
		"price": "599",
	}, &updated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "E-Book v2", updated["name"])

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/products/"+id, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro diario y reversión
// ──────────────────────────────────────────────────────────────────────────────

func TestDailyStatsAPI_UpsertBorrarYRevertir(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	// Registrar el rendimiento de una fecha.
	var out map[string]any
	resp := doJSON(t, app, http.MethodPut, "/api/products/"+id+"/daily-stats", map[string]any{
		"date":     "2024-06-10",
		"ad_spend": "150",
		"sales":    2,
	}, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Vaciar el libro completo.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+id+"/daily-stats", nil, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, out["daily_stats"])
	assert.Equal(t, "0", out["ad_spend"])

	// Revertir: el libro vuelve.
	resp = doJSON(t, app, http.MethodPost, "/api/daily-stats/revert", nil, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, out["daily_stats"])

	// Sin snapshot pendiente la reversión responde 204.
	resp = doJSON(t, app, http.MethodPost, "/api/daily-stats/revert", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestDailyStatsAPI_FechaMalformada_Retorna400(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	var errResp map[string]any
	resp := doJSON(t, app, http.MethodPut, "/api/products/"+id+"/daily-stats", map[string]any{
		"date":     "10/06/2024",
		"ad_spend": "150",
		"sales":    2,
	}, &errResp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errResp["code"])
}

func TestDailyStatsAPI_BorrarFechaPuntual(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	var out map[string]any
	resp := doJSON(t, app, http.MethodDelete, "/api/products/"+id+"/daily-stats/2024-06-15", nil, &out)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, out["daily_stats"], 9, "la ventana sembrada pierde el día borrado")
}

// ──────────────────────────────────────────────────────────────────────────────
// Gastos
// ──────────────────────────────────────────────────────────────────────────────

func TestExpensesAPI_AgregarYEliminar(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	var exp map[string]any
	resp := doJSON(t, app, http.MethodPost, "/api/products/"+id+"/expenses", map[string]any{
		"description": "Hosting",
		"amount":      "25",
		"date":        "2024-06-10",
	}, &exp)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Hosting", exp["description"])

	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+id+"/expenses/"+exp["id"].(string), nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Id desconocido: no-op, también 204.
	resp = doJSON(t, app, http.MethodDelete, "/api/products/"+id+"/expenses/no-existe", nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestExpensesAPI_MontoCero_Retorna400(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	var errResp map[string]any
	resp := doJSON(t, app, http.MethodPost, "/api/products/"+id+"/expenses", map[string]any{
		"description": "x",
		"amount":      "0",
		"date":        "2024-06-10",
	}, &errResp)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errResp["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Dashboard y desgloses
// ──────────────────────────────────────────────────────────────────────────────

func TestDashboardAPI_SummaryYSeries(t *testing.T) {
	app := buildTestApp()
	createProduct(t, app, "E-Book")

	var sum map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/dashboard/summary", nil, &sum)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), sum["product_count"])
	assert.Equal(t, "3500", sum["total_spend"])
	assert.Equal(t, "8982", sum["total_revenue"])

	var series []map[string]any
	resp = doJSON(t, app, http.MethodGet, "/api/dashboard/daily-series", nil, &series)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, series, 10)
}

func TestBreakdownAPI_MensualYSemanal(t *testing.T) {
	app := buildTestApp()
	created := createProduct(t, app, "E-Book")
	id := created["id"].(string)

	var monthly []map[string]any
	resp := doJSON(t, app, http.MethodGet, "/api/products/"+id+"/breakdown/monthly", nil, &monthly)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, monthly)
	assert.Equal(t, "June 2024", monthly[0]["month"], "el bucket más reciente primero")

	var weekly []map[string]any
	resp = doJSON(t, app, http.MethodGet, "/api/products/"+id+"/breakdown/weekly", nil, &weekly)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, weekly)
}

// ──────────────────────────────────────────────────────────────────────────────
// Planes de prueba
// ──────────────────────────────────────────────────────────────────────────────

func TestTestingPlansAPI_CicloCompleto(t *testing.T) {
	app := buildTestApp()

	var plan map[string]any
	resp := doJSON(t, app, http.MethodPost, "/api/testing-plans", map[string]any{
		"product_name": "E-Book",
		"ad_set_idea":  "Video UGC",
	}, &plan)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "ongoing", plan["status"])
	id := plan["id"].(string)

	resp = doJSON(t, app, http.MethodPatch, "/api/testing-plans/"+id+"/status", map[string]any{
		"status": "successful",
	}, &plan)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "successful", plan["status"])

	var errResp map[string]any
	resp = doJSON(t, app, http.MethodPatch, "/api/testing-plans/"+id+"/status", map[string]any{
		"status": "paused",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errResp["code"])

	resp = doJSON(t, app, http.MethodDelete, "/api/testing-plans/"+id, nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	var list []map[string]any
	resp = doJSON(t, app, http.MethodGet, "/api/testing-plans", nil, &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, list)
}
