package dto

import (
	"math"
	"time"
)

// DateLayout formato de fecha calendario usado en toda la API.
const DateLayout = "2006-01-02"

// FormatDate serializa una fecha calendario (sin hora).
func FormatDate(t time.Time) string { return t.Format(DateLayout) }

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// GrowthDTO codificación JSON-segura de un ratio de crecimiento. El motor
// usa +Inf como centinela de "nueva ganancia sin base de comparación", pero
// encoding/json no puede emitir infinitos: aquí el centinela viaja como
// new_profit=true con value nulo.
type GrowthDTO struct {
	Value     *float64 `json:"value"`
	NewProfit bool     `json:"new_profit"`
}

// NewGrowthDTO convierte el float64 del motor (posiblemente +Inf) al DTO.
func NewGrowthDTO(v float64) GrowthDTO {
	if math.IsInf(v, 1) {
		return GrowthDTO{NewProfit: true}
	}
	return GrowthDTO{Value: &v}
}
