// Package settlement implementa el corte de caja: la liquidación diaria de la
// ruta de un vendedor contra lo que se llevó en el despacho.
package settlement

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/ports"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase ejecuta el corte de caja de un vendedor.
//
// Regla dura: un solo corte por vendedor por día. La primera línea de defensa
// es ExistsForSellerOn; la definitiva es el índice único parcial en payments,
// que convierte la carrera de dos cortes simultáneos en ErrRouteAlreadyClosed
// para el perdedor.
type UseCase struct {
	txRunner     TxRunner
	sellerRepo   repository.SellerRepository
	movementRepo repository.MovementRepository
	paymentRepo  repository.PaymentRepository
	notifier     ports.Notifier
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	sellerRepo repository.SellerRepository,
	movementRepo repository.MovementRepository,
	paymentRepo repository.PaymentRepository,
	notifier ports.Notifier,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		sellerRepo:   sellerRepo,
		movementRepo: movementRepo,
		paymentRepo:  paymentRepo,
		notifier:     notifier,
	}
}

// Preview devuelve el estado del corte sin ejecutarlo: si la ruta ya cerró,
// el saldo arrastrado y las salidas del día pendientes de liquidar.
func (uc *UseCase) Preview(ctx context.Context, organizationID string, sellerID int) (*dto.SettlementPreviewDTO, error) {
	today := time.Now()

	closed, err := uc.paymentRepo.ExistsForSellerOn(ctx, organizationID, sellerID, today)
	if err != nil {
		return nil, fmt.Errorf("corte: verificar cierre: %w", err)
	}
	seller, err := uc.sellerRepo.GetByID(organizationID, sellerID)
	if err != nil {
		return nil, err
	}
	dispatches, err := uc.movementRepo.ListSellerDispatchOn(ctx, organizationID, sellerID, today)
	if err != nil {
		return nil, fmt.Errorf("corte: salidas del día: %w", err)
	}

	preview := &dto.SettlementPreviewDTO{
		SellerID:        sellerID,
		RouteClosed:     closed,
		PreviousBalance: seller.Balance,
		Dispatches:      make([]dto.DispatchedItemDTO, 0, len(dispatches)),
	}
	for _, d := range dispatches {
		preview.Dispatches = append(preview.Dispatches, dto.DispatchedItemDTO{
			ProductID:   d.ProductID,
			ProductName: d.ProductName,
			Price:       d.Price,
			Quantity:    d.Quantity,
		})
	}
	return preview, nil
}

// Settle liquida la ruta del vendedor para hoy.
//
// venta del día  = Σ por producto de max(0, despachado - devuelto) * precio
// total a pagar  = venta del día + saldo arrastrado
// saldo nuevo    = total a pagar - efectivo recibido
//
// En una sola transacción: inserta las DEVOLUCIONes declaradas, el pago CORTE
// y el saldo nuevo del vendedor. El aviso por WhatsApp sale después del commit
// y nunca afecta el resultado.
func (uc *UseCase) Settle(ctx context.Context, organizationID string, req dto.SettlementRequest) (*dto.SettlementResponse, error) {
	today := time.Now()

	closed, err := uc.paymentRepo.ExistsForSellerOn(ctx, organizationID, req.SellerID, today)
	if err != nil {
		return nil, fmt.Errorf("corte: verificar cierre: %w", err)
	}
	if closed {
		return nil, domain.ErrRouteAlreadyClosed
	}

	seller, err := uc.sellerRepo.GetByID(organizationID, req.SellerID)
	if err != nil {
		return nil, err
	}
	dispatches, err := uc.movementRepo.ListSellerDispatchOn(ctx, organizationID, req.SellerID, today)
	if err != nil {
		return nil, fmt.Errorf("corte: salidas del día: %w", err)
	}

	dispatchedByProduct := make(map[int]int, len(dispatches))
	priceByProduct := make(map[int]decimal.Decimal, len(dispatches))
	for _, d := range dispatches {
		dispatchedByProduct[d.ProductID] += d.Quantity
		priceByProduct[d.ProductID] = d.Price
	}

	// Las devoluciones solo aplican sobre lo despachado hoy.
	returnedByProduct := make(map[int]int, len(req.Returns))
	for _, r := range req.Returns {
		returnedByProduct[r.ProductID] += r.Quantity
	}
	for productID, returned := range returnedByProduct {
		if returned > dispatchedByProduct[productID] {
			return nil, domain.ErrInvalidInput
		}
	}

	dailySale := decimal.Zero
	for productID, dispatched := range dispatchedByProduct {
		sold := dispatched - returnedByProduct[productID]
		if sold <= 0 {
			continue
		}
		dailySale = dailySale.Add(priceByProduct[productID].Mul(decimal.NewFromInt(int64(sold))))
	}

	grandTotal := dailySale.Add(seller.Balance)
	remaining := grandTotal.Sub(req.CashReceived)

	err = uc.txRunner.RunSales(ctx, func(
		movementRepo repository.MovementRepository,
		paymentRepo repository.PaymentRepository,
		sellerRepo repository.SellerRepository,
	) error {
		returns := make([]*entity.Movement, 0, len(req.Returns))
		for productID, returned := range returnedByProduct {
			if returned <= 0 {
				continue
			}
			returns = append(returns, &entity.Movement{
				OrganizationID: organizationID,
				SellerID:       req.SellerID,
				ProductID:      productID,
				Quantity:       returned,
				Type:           entity.MovementDevolucion,
				CreatedAt:      today,
			})
		}
		if len(returns) > 0 {
			if err := movementRepo.CreateBatch(returns); err != nil {
				return err
			}
		}
		if err := paymentRepo.Create(&entity.Payment{
			OrganizationID: organizationID,
			SellerID:       req.SellerID,
			Kind:           entity.PaymentCorte,
			Amount:         req.CashReceived,
			Notes:          fmt.Sprintf("Corte del día %s", today.Format("2006-01-02")),
			CreatedAt:      today,
		}); err != nil {
			return err
		}
		return sellerRepo.UpdateBalance(organizationID, req.SellerID, remaining)
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Send(ctx, fmt.Sprintf(
		"✅ Corte de %s (%s)\nVenta del día: $%s\nSaldo anterior: $%s\nRecibido: $%s\nSaldo nuevo: $%s",
		seller.Name, seller.RouteName,
		dailySale.StringFixed(2), seller.Balance.StringFixed(2),
		req.CashReceived.StringFixed(2), remaining.StringFixed(2),
	))

	return &dto.SettlementResponse{
		DailySaleTotal:   dailySale,
		PreviousBalance:  seller.Balance,
		GrandTotal:       grandTotal,
		CashReceived:     req.CashReceived,
		RemainingBalance: remaining,
	}, nil
}
