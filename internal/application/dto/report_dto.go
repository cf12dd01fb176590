package dto

import "github.com/shopspring/decimal"

// SellerStatDTO acumulado del día de un vendedor.
type SellerStatDTO struct {
	SellerID   int             `json:"seller_id"`
	Name       string          `json:"name"`
	Dispatched int             `json:"dispatched"`
	Returned   int             `json:"returned"`
	NetSold    int             `json:"net_sold"`
	Money      decimal.Decimal `json:"money"`
	Efficiency decimal.Decimal `json:"efficiency"` // %
}

// TopProductDTO entrada del ranking de despachos del día.
type TopProductDTO struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DailyReportDTO respuesta de GET /api/reports/daily.
type DailyReportDTO struct {
	Date        string          `json:"date"`
	Sellers     []SellerStatDTO `json:"sellers"`
	TopProducts []TopProductDTO `json:"top_products"`
	GlobalTotal decimal.Decimal `json:"global_total"`
}
