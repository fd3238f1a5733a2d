package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/metrics"
)

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// KPIs globales reducidos sobre las métricas de todos los productos.
type DashboardSummaryDTO struct {
	TotalSpend        decimal.Decimal `json:"total_spend"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalMiscExpenses decimal.Decimal `json:"total_misc_expenses"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	GlobalROAS        float64         `json:"global_roas"`
	ProductCount      int             `json:"product_count"`
}

// DailyPointDTO una fila de la serie diaria agregada entre productos, para
// la gráfica de tendencia global.
type DailyPointDTO struct {
	Date    string          `json:"date"`
	AdSpend decimal.Decimal `json:"ad_spend"`
	Revenue decimal.Decimal `json:"revenue"`
	Sales   int             `json:"sales"`
}

// ToDailyPointDTOs mapea la serie del motor al DTO de salida.
func ToDailyPointDTOs(series []metrics.DailyPoint) []DailyPointDTO {
	out := make([]DailyPointDTO, 0, len(series))
	for _, p := range series {
		out = append(out, DailyPointDTO{
			Date:    FormatDate(p.Date),
			AdSpend: p.AdSpend,
			Revenue: p.Revenue,
			Sales:   p.Sales,
		})
	}
	return out
}
