package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear un producto. Los totales dados se
// distribuyen sobre la ventana histórica sembrada al crearlo.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	AdSpend     decimal.Decimal `json:"ad_spend"`
	Clicks      int             `json:"clicks"`
	Conversions int             `json:"conversions"`
}

// UpdateProductDetailsRequest entrada para editar nombre, descripción y precio.
// Un cambio de precio reescribe el revenue de todo el libro diario.
type UpdateProductDetailsRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// UpsertDailyStatRequest entrada para registrar (o sobrescribir) el
// rendimiento de una fecha. Revenue se deriva del precio del producto.
type UpsertDailyStatRequest struct {
	Date    string          `json:"date" validate:"required"` // YYYY-MM-DD
	AdSpend decimal.Decimal `json:"ad_spend"`
	Sales   int             `json:"sales"`
}

// AddExpenseRequest entrada para registrar un gasto puntual.
type AddExpenseRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`                  // > 0
	Date        string          `json:"date" validate:"required"` // YYYY-MM-DD
}

// DailyStatDTO una entrada del libro diario.
type DailyStatDTO struct {
	Date    string          `json:"date"`
	AdSpend decimal.Decimal `json:"ad_spend"`
	Revenue decimal.Decimal `json:"revenue"`
	Sales   int             `json:"sales"`
}

// ExpenseDTO un gasto puntual.
type ExpenseDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}
