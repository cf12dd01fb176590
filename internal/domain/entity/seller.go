package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Seller es un vendedor o ruta de reparto.
// Balance es el saldo firmado: positivo = el vendedor le debe a la organización.
// La configuración de comisión vive en el propio vendedor; si CommissionActive
// es false el vendedor es de sueldo fijo y la nómina no lo calcula.
type Seller struct {
	ID             int
	OrganizationID string
	Name           string
	RouteName      string
	Balance        decimal.Decimal

	CommissionActive bool
	BaseSalary       decimal.Decimal
	CommissionRate   decimal.Decimal // porcentaje sobre venta neta
	BonusThreshold   decimal.Decimal // % máximo de devolución para ganar bono
	BonusAmount      decimal.Decimal

	CreatedAt time.Time
}
