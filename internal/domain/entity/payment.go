package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Clases de pago. CORTE liquida la ruta del día; VENTA registra el cobro de
// una venta de mostrador.
const (
	PaymentCorte = "CORTE"
	PaymentVenta = "VENTA"
)

// Payment es un evento de cobro en efectivo.
// Invariante del flujo de corte: máximo un pago CORTE por vendedor por día
// calendario, reforzado con un índice único parcial en la capa de persistencia.
// Los pagos VENTA no tienen esa restricción.
type Payment struct {
	ID             int64
	OrganizationID string
	SellerID       int
	Kind           string
	Amount         decimal.Decimal
	Notes          string
	CreatedAt      time.Time
}
