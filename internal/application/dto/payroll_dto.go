package dto

import "github.com/shopspring/decimal"

// PayrollLineDTO recibo de nómina de un vendedor.
// Commissioned=false marca a los de sueldo fijo: aparecen sin cifras.
type PayrollLineDTO struct {
	SellerID     int    `json:"seller_id"`
	SellerName   string `json:"seller_name"`
	RouteName    string `json:"route_name"`
	Commissioned bool   `json:"commissioned"`

	NetSale       decimal.Decimal `json:"net_sale"`
	ReturnRate    decimal.Decimal `json:"return_rate"` // %
	CommissionPay decimal.Decimal `json:"commission_pay"`
	BonusEarned   bool            `json:"bonus_earned"`
	BonusPay      decimal.Decimal `json:"bonus_pay"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	Total         decimal.Decimal `json:"total"`
}

// PayrollResponse respuesta de GET /api/payroll.
type PayrollResponse struct {
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Lines     []PayrollLineDTO `json:"lines"`
}

// PayrollRequest query params de GET /api/payroll. Fechas vacías = semana
// actual (lunes a domingo).
type PayrollRequest struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
