package usecase

import (
	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/application/ports"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/metrics"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// MetricsUseCase consultas de solo lectura sobre el motor de métricas:
// desgloses por período de un producto y agregados globales del dashboard.
// Todo se recalcula desde el libro en cada petición; no hay caché entre
// peticiones.
type MetricsUseCase struct {
	repo  repository.LedgerRepository
	clock ports.Clock
}

// NewMetricsUseCase construye el caso de uso.
func NewMetricsUseCase(repo repository.LedgerRepository, clock ports.Clock) *MetricsUseCase {
	return &MetricsUseCase{repo: repo, clock: clock}
}

// MonthlyBreakdown desglose mensual del producto, más reciente primero.
func (uc *MetricsUseCase) MonthlyBreakdown(productID string) ([]dto.MonthlyBucketDTO, error) {
	p, err := uc.repo.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	return dto.ToMonthlyBucketDTOs(metrics.MonthlyBreakdown(p)), nil
}

// WeeklyBreakdown desglose semanal del producto, más reciente primero.
func (uc *MetricsUseCase) WeeklyBreakdown(productID string) ([]dto.WeeklyBucketDTO, error) {
	p, err := uc.repo.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	return dto.ToWeeklyBucketDTOs(metrics.WeeklyBreakdown(p)), nil
}

// DashboardSummary KPIs globales: reducción de las métricas de todos los
// productos.
func (uc *MetricsUseCase) DashboardSummary() (*dto.DashboardSummaryDTO, error) {
	products, err := uc.repo.ListProducts()
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	computed := make([]metrics.ComputedMetric, 0, len(products))
	for _, p := range products {
		computed = append(computed, metrics.Compute(p, now))
	}
	g := metrics.GlobalSummary(computed)
	return &dto.DashboardSummaryDTO{
		TotalSpend:        g.TotalSpend,
		TotalRevenue:      g.TotalRevenue,
		TotalMiscExpenses: g.TotalMiscExpenses,
		TotalProfit:       g.TotalProfit,
		GlobalROAS:        g.GlobalROAS,
		ProductCount:      len(products),
	}, nil
}

// DailySeries serie diaria agregada entre todos los productos, ascendente
// por fecha.
func (uc *MetricsUseCase) DailySeries() ([]dto.DailyPointDTO, error) {
	products, err := uc.repo.ListProducts()
	if err != nil {
		return nil, err
	}
	return dto.ToDailyPointDTOs(metrics.AggregatedDailySeries(products)), nil
}
