package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/metrics"
)

// MonthlyBucketDTO agregado mensual del libro de un producto. ProfitChange es
// nulo cuando el mes anterior no tiene datos (hueco en el calendario).
type MonthlyBucketDTO struct {
	Month         string          `json:"month"`
	Year          int             `json:"year"`
	MonthIndex    int             `json:"month_index"`
	TotalSales    int             `json:"total_sales"`
	TotalAdSpend  decimal.Decimal `json:"total_ad_spend"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROI           float64         `json:"roi"`
	ProfitChange  *GrowthDTO      `json:"profit_change"`
}

// WeeklyBucketDTO agregado semanal (semanas de lunes a domingo).
type WeeklyBucketDTO struct {
	Week          string          `json:"week"`
	WeekStart     string          `json:"week_start"`
	TotalSales    int             `json:"total_sales"`
	TotalAdSpend  decimal.Decimal `json:"total_ad_spend"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ROI           float64         `json:"roi"`
	ProfitChange  *GrowthDTO      `json:"profit_change"`
}

// ToMonthlyBucketDTOs mapea los buckets del motor a DTOs de salida.
func ToMonthlyBucketDTOs(buckets []metrics.MonthlyBucket) []MonthlyBucketDTO {
	out := make([]MonthlyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MonthlyBucketDTO{
			Month:         b.Month,
			Year:          b.Year,
			MonthIndex:    b.MonthIndex,
			TotalSales:    b.TotalSales,
			TotalAdSpend:  b.TotalAdSpend,
			TotalRevenue:  b.TotalRevenue,
			TotalExpenses: b.TotalExpenses,
			NetProfit:     b.NetProfit,
			ROI:           b.ROI,
			ProfitChange:  growthPtr(b.ProfitChange),
		})
	}
	return out
}

// ToWeeklyBucketDTOs mapea los buckets semanales del motor a DTOs de salida.
func ToWeeklyBucketDTOs(buckets []metrics.WeeklyBucket) []WeeklyBucketDTO {
	out := make([]WeeklyBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, WeeklyBucketDTO{
			Week:          b.Week,
			WeekStart:     FormatDate(b.WeekStart),
			TotalSales:    b.TotalSales,
			TotalAdSpend:  b.TotalAdSpend,
			TotalRevenue:  b.TotalRevenue,
			TotalExpenses: b.TotalExpenses,
			NetProfit:     b.NetProfit,
			ROI:           b.ROI,
			ProfitChange:  growthPtr(b.ProfitChange),
		})
	}
	return out
}

func growthPtr(v *float64) *GrowthDTO {
	if v == nil {
		return nil
	}
	g := NewGrowthDTO(*v)
	return &g
}
