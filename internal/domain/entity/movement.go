package entity

import "time"

// Tipos de movimiento de producto. El ledger es append-only: las correcciones
// se hacen con movimientos compensatorios, nunca editando o borrando.
const (
	MovementSalida     = "SALIDA"     // despacho / venta
	MovementDevolucion = "DEVOLUCION" // devolución / merma
)

// Movement es un evento inmutable del ledger de producto: un vendedor se lleva
// (SALIDA) o regresa (DEVOLUCION) una cantidad de un producto.
type Movement struct {
	ID             int64
	OrganizationID string
	SellerID       int
	ProductID      int
	Quantity       int // siempre positivo; el tipo da el signo
	Type           string
	CreatedAt      time.Time
}
