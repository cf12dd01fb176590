package repository

import (
	"context"
	"time"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// PaymentRepository define el puerto de persistencia para pagos (cortes de caja).
// Append-only; la unicidad (vendedor, día) la refuerza un índice único en la DB.
type PaymentRepository interface {
	// Create inserta el pago. Para pagos CORTE devuelve
	// domain.ErrRouteAlreadyClosed si ya existe un corte del vendedor en ese
	// día (violación del índice único parcial).
	Create(payment *entity.Payment) error
	// ExistsForSellerOn informa si el vendedor ya tiene un corte en el día dado.
	ExistsForSellerOn(ctx context.Context, organizationID string, sellerID int, day time.Time) (bool, error)
}
