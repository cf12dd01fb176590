package checkout

import (
	"context"

	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La venta de mostrador registra salidas y
// cobro como una sola unidad atómica.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		movementRepo repository.MovementRepository,
		paymentRepo repository.PaymentRepository,
		sellerRepo repository.SellerRepository,
	) error) error
}
