// Package payroll contiene el caso de uso de la nómina semanal de vendedores.
package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	payrollcalc "github.com/amasasystem/amasa-api/internal/domain/payroll"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase arma el recibo de nómina del periodo: trae roster y movimientos con
// precio actual en paralelo y delega el cálculo al motor puro.
type UseCase struct {
	sellerRepo   repository.SellerRepository
	movementRepo repository.MovementRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(sellerRepo repository.SellerRepository, movementRepo repository.MovementRepository) *UseCase {
	return &UseCase{sellerRepo: sellerRepo, movementRepo: movementRepo}
}

// Compute calcula la nómina del rango [from, to]. Con fechas cero usa la
// semana en curso (lunes a domingo).
func (uc *UseCase) Compute(ctx context.Context, organizationID string, from, to time.Time) (*dto.PayrollResponse, error) {
	if from.IsZero() || to.IsZero() {
		from, to = payrollcalc.WeekRange(time.Now())
	}

	type sellersResult struct {
		sellers []*entity.Seller
		err     error
	}
	type movementsResult struct {
		rows []repository.PricedMovementRow
		err  error
	}

	sellersCh := make(chan sellersResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		sellers, err := uc.sellerRepo.ListByOrganization(organizationID)
		sellersCh <- sellersResult{sellers, err}
	}()
	go func() {
		rows, err := uc.movementRepo.ListPricedInRange(ctx, organizationID, from, to)
		movementsCh <- movementsResult{rows, err}
	}()

	sellers := <-sellersCh
	movements := <-movementsCh

	if sellers.err != nil {
		return nil, fmt.Errorf("nómina: vendedores: %w", sellers.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("nómina: movimientos: %w", movements.err)
	}

	priced := make([]payrollcalc.PricedMovement, 0, len(movements.rows))
	for _, row := range movements.rows {
		priced = append(priced, payrollcalc.PricedMovement{
			SellerID: row.SellerID,
			Type:     row.Type,
			Quantity: row.Quantity,
			Price:    row.Price,
		})
	}

	lines := payrollcalc.Compute(sellers.sellers, priced)

	resp := &dto.PayrollResponse{
		StartDate: from.Format("2006-01-02"),
		EndDate:   to.Format("2006-01-02"),
		Lines:     make([]dto.PayrollLineDTO, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.PayrollLineDTO{
			SellerID:      l.SellerID,
			SellerName:    l.SellerName,
			RouteName:     l.RouteName,
			Commissioned:  l.Commissioned,
			NetSale:       l.NetSale,
			ReturnRate:    l.ReturnRate,
			CommissionPay: l.CommissionPay,
			BonusEarned:   l.BonusEarned,
			BonusPay:      l.BonusPay,
			BaseSalary:    l.BaseSalary,
			Total:         l.Total,
		})
	}
	return resp, nil
}
