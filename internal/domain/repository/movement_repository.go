package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// PricedMovementRow es un movimiento con el precio actual del producto unido
// (consulta de nómina: solo lo estrictamente necesario).
type PricedMovementRow struct {
	SellerID int
	Type     string
	Quantity int
	Price    decimal.Decimal
}

// DayMovementRow es un movimiento del día con vendedor y producto unidos
// (consulta del reporte diario).
type DayMovementRow struct {
	SellerID    int
	SellerName  string
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	Type        string
}

// DispatchRow es una salida del día de un vendedor con su producto unido
// (base del corte de caja).
type DispatchRow struct {
	ProductID   int
	ProductName string
	Price       decimal.Decimal
	Quantity    int
}

// MovementRepository define el puerto del ledger de movimientos.
// El ledger es append-only: no hay Update ni Delete.
type MovementRepository interface {
	// CreateBatch inserta un lote de movimientos (carrito de caja, despacho de
	// ruta o devoluciones de un corte) en una sola operación.
	CreateBatch(movements []*entity.Movement) error
	// ListByOrganization trae el historial completo (snapshot del pronóstico).
	ListByOrganization(ctx context.Context, organizationID string) ([]*entity.Movement, error)
	// ListPricedInRange trae los movimientos del rango con precio actual unido.
	ListPricedInRange(ctx context.Context, organizationID string, from, to time.Time) ([]PricedMovementRow, error)
	// ListDayDetailed trae los movimientos del día con vendedor y producto.
	ListDayDetailed(ctx context.Context, organizationID string, day time.Time) ([]DayMovementRow, error)
	// ListSellerDispatchOn trae las SALIDAs del vendedor en el día indicado.
	ListSellerDispatchOn(ctx context.Context, organizationID string, sellerID int, day time.Time) ([]DispatchRow, error)
}
