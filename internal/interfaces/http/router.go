package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	MetricsUC     *usecase.MetricsUseCase
	TestingPlanUC *usecase.TestingPlanUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Productos y su libro diario
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.UpdateDetails)
	products.Delete("/:id", productHandler.Delete)
	products.Put("/:id/daily-stats", productHandler.UpsertDailyStat)
	products.Delete("/:id/daily-stats", productHandler.RemoveAllDailyStats)
	products.Delete("/:id/daily-stats/:date", productHandler.RemoveDailyStat)
	products.Post("/:id/expenses", productHandler.AddExpense)
	products.Delete("/:id/expenses/:expenseId", productHandler.RemoveExpense)

	// Reversión del último borrado masivo (slot único global)
	api.Post("/daily-stats/revert", productHandler.RevertLastRemoval)

	// Dashboard y desgloses por período
	dashboardHandler := NewDashboardHandler(deps.MetricsUC)
	products.Get("/:id/breakdown/monthly", dashboardHandler.GetMonthlyBreakdown)
	products.Get("/:id/breakdown/weekly", dashboardHandler.GetWeeklyBreakdown)
	dashboard := api.Group("/dashboard")
	dashboard.Get("/summary", dashboardHandler.GetSummary)
	dashboard.Get("/daily-series", dashboardHandler.GetDailySeries)

	// Planes de prueba publicitarios
	plans := api.Group("/testing-plans")
	planHandler := NewTestingPlanHandler(deps.TestingPlanUC)
	plans.Get("/", planHandler.List)
	plans.Post("/", planHandler.Create)
	plans.Patch("/:id/status", planHandler.UpdateStatus)
	plans.Patch("/:id/notes", planHandler.UpdateNotes)
	plans.Delete("/:id", planHandler.Delete)
}
