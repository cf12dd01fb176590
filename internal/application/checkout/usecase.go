// Package checkout implementa la venta de mostrador: el carrito se cobra en
// el momento y genera sus SALIDAs y su pago en una sola transacción.
package checkout

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase cobra un carrito en mostrador.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	sellerRepo  repository.SellerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, sellerRepo repository.SellerRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, sellerRepo: sellerRepo}
}

// Checkout valida el carrito, calcula el total a precio vigente y registra
// las SALIDAs junto con el pago VENTA de forma atómica. El número de ticket
// es un folio corto para el papel, no un identificador del sistema.
func (uc *UseCase) Checkout(ctx context.Context, organizationID string, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if _, err := uc.sellerRepo.GetByID(organizationID, req.SellerID); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, item := range req.Items {
		product, err := uc.productRepo.GetByID(organizationID, item.ProductID)
		if err != nil {
			return nil, err
		}
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if req.AmountPaid.LessThan(total) {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	ticket := fmt.Sprintf("%d", 1000+rand.Intn(9000))

	err := uc.txRunner.RunSales(ctx, func(
		movementRepo repository.MovementRepository,
		paymentRepo repository.PaymentRepository,
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
		if err := movementRepo.CreateBatch(movements); err != nil {
			return err
		}
		return paymentRepo.Create(&entity.Payment{
			OrganizationID: organizationID,
			SellerID:       req.SellerID,
			Kind:           entity.PaymentVenta,
			Amount:         total,
			Notes:          fmt.Sprintf("Venta Mostrador. Ticket #%s", ticket),
			CreatedAt:      now,
		})
	})
	if err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		Ticket: ticket,
		Total:  total,
		Change: req.AmountPaid.Sub(total),
	}, nil
}
