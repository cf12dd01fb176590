package dispatch

import (
	"context"

	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		movementRepo repository.MovementRepository,
		paymentRepo repository.PaymentRepository,
		sellerRepo repository.SellerRepository,
	) error) error
}
