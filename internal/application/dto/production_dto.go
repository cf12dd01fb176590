package dto

import "github.com/shopspring/decimal"

// ProductForecastDTO sugerencia de producción de un producto.
type ProductForecastDTO struct {
	ProductID    int    `json:"product_id"`
	ProductName  string `json:"product_name"`
	AvgSale      int    `json:"avg_sale"`
	Suggested    int    `json:"suggested"`
	HistoryCount int    `json:"history_count"`
	Status       string `json:"status"` // OK | NO_DATA
}

// MaterialRequirementDTO insumo acumulado contra stock, con presentación
// normalizada (kg/L cuando la cantidad base supera 1000).
type MaterialRequirementDTO struct {
	IngredientID int             `json:"ingredient_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	TotalNeeded  decimal.Decimal `json:"total_needed"`  // en unidad base
	CurrentStock decimal.Decimal `json:"current_stock"` // en unidad base
	Shortfall    decimal.Decimal `json:"shortfall"`
	Status       string          `json:"status"` // OK | FALTA

	DisplayNeeded decimal.Decimal `json:"display_needed"`
	DisplayUnit   string          `json:"display_unit"`
}

// ProductionPlanDTO respuesta de GET /api/production/forecast.
type ProductionPlanDTO struct {
	TargetDate  string                   `json:"target_date"` // YYYY-MM-DD
	Weekday     string                   `json:"weekday"`
	Forecasts   []ProductForecastDTO     `json:"forecasts"`
	Materials   []MaterialRequirementDTO `json:"materials"`
	CanProduce  bool                     `json:"can_produce"`
}

// ConfirmProductionRequest cuerpo de POST /api/production/confirm.
type ConfirmProductionRequest struct {
	TargetDate string `json:"target_date" validate:"required,datetime=2006-01-02"`
}
