package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/metrics"
)

// ComputedMetricResponse producto con todos sus indicadores derivados.
// Es una proyección de solo lectura: se recalcula desde el libro en cada
// petición, nunca se almacena.
type ComputedMetricResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	AdSpend     decimal.Decimal `json:"ad_spend"`
	Clicks      int             `json:"clicks"`
	Conversions int             `json:"conversions"`

	Revenue       decimal.Decimal `json:"revenue"`
	Profit        decimal.Decimal `json:"profit"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	CPC           float64         `json:"cpc"`
	CPA           float64         `json:"cpa"`
	ROAS          float64         `json:"roas"`
	ROI           float64         `json:"roi"`
	ProfitPerSale float64         `json:"profit_per_sale"`
	Margin        float64         `json:"margin"`

	MoMProfitGrowth GrowthDTO `json:"mom_profit_growth"`
	YoYProfitGrowth GrowthDTO `json:"yoy_profit_growth"`

	DailyStats []DailyStatDTO `json:"daily_stats"`
	Expenses   []ExpenseDTO   `json:"expenses"`
}

// ToComputedMetricResponse mapea el tipo del motor al DTO de salida.
func ToComputedMetricResponse(m metrics.ComputedMetric) ComputedMetricResponse {
	stats := make([]DailyStatDTO, 0, len(m.DailyStats))
	for _, s := range m.DailyStats {
		stats = append(stats, DailyStatDTO{
			Date:    FormatDate(s.Date),
			AdSpend: s.AdSpend,
			Revenue: s.Revenue,
			Sales:   s.Sales,
		})
	}
	expenses := make([]ExpenseDTO, 0, len(m.Product.Expenses))
	for _, e := range m.Product.Expenses {
		expenses = append(expenses, ExpenseDTO{
			ID:          e.ID,
			ProductID:   e.ProductID,
			Description: e.Description,
			Amount:      e.Amount,
			Date:        FormatDate(e.Date),
		})
	}
	return ComputedMetricResponse{
		ID:              m.Product.ID,
		Name:            m.Product.Name,
		Description:     m.Product.Description,
		Price:           m.Product.Price,
		AdSpend:         m.Product.AdSpend,
		Clicks:          m.Product.Clicks,
		Conversions:     m.Product.Conversions,
		Revenue:         m.Revenue,
		Profit:          m.Profit,
		TotalExpenses:   m.TotalExpenses,
		CPC:             m.CPC,
		CPA:             m.CPA,
		ROAS:            m.ROAS,
		ROI:             m.ROI,
		ProfitPerSale:   m.ProfitPerSale,
		Margin:          m.Margin,
		MoMProfitGrowth: NewGrowthDTO(m.MoMProfitGrowth),
		YoYProfitGrowth: NewGrowthDTO(m.YoYProfitGrowth),
		DailyStats:      stats,
		Expenses:        expenses,
	}
}
