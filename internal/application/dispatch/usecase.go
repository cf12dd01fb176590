// Package dispatch implementa la carga de ruta: el vendedor se lleva producto
// en consignación y cada línea queda como SALIDA en el ledger.
package dispatch

import (
	"context"
	"time"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase registra el despacho de un vendedor. No mueve dinero: el cobro
// ocurre hasta el corte de caja.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, sellerRepo repository.SellerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, sellerRepo: sellerRepo}
}

// Dispatch valida vendedor y productos y escribe el lote de SALIDAs.
func (uc *UseCase) Dispatch(ctx context.Context, organizationID string, req dto.DispatchRequest) error {
	if _, err := uc.sellerRepo.GetByID(organizationID, req.SellerID); err != nil {
		return err
	}
	for _, item := range req.Items {
		if _, err := uc.productRepo.GetByID(organizationID, item.ProductID); err != nil {
			return err
		}
	}

	now := time.Now()
	return uc.txRunner.RunSales(ctx, func(
		movementRepo repository.MovementRepository,
		_ repository.PaymentRepository,
		_ repository.SellerRepository,
	) error {
		movements := make([]*entity.Movement, 0, len(req.Items))
		for _, item := range req.Items {
			movements = append(movements, &entity.Movement{
				OrganizationID: organizationID,
				SellerID:       req.SellerID,
				ProductID:      item.ProductID,
				Quantity:       item.Quantity,
				Type:           entity.MovementSalida,
				CreatedAt:      now,
			})
		}
		return movementRepo.CreateBatch(movements)
	})
}
