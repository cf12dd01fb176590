// Package reporting contiene el caso de uso del reporte diario de operación.
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/report"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase arma el resumen del día: todos los vendedores del roster (aunque no
// hayan movido nada), top de productos despachados y total global. También
// expone la bitácora reciente de la organización.
type UseCase struct {
	sellerRepo   repository.SellerRepository
	movementRepo repository.MovementRepository
	auditRepo    repository.AuditLogRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(sellerRepo repository.SellerRepository, movementRepo repository.MovementRepository, auditRepo repository.AuditLogRepository) *UseCase {
	return &UseCase{sellerRepo: sellerRepo, movementRepo: movementRepo, auditRepo: auditRepo}
}

// RecentActivity devuelve las últimas entradas de la bitácora.
func (uc *UseCase) RecentActivity(organizationID string, limit int) ([]*entity.AuditLog, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.auditRepo.ListRecent(organizationID, limit)
}

// Daily construye el reporte del día indicado (fecha cero = hoy).
func (uc *UseCase) Daily(ctx context.Context, organizationID string, day time.Time) (*dto.DailyReportDTO, error) {
	if day.IsZero() {
		day = time.Now()
	}

	type sellersResult struct {
		sellers []*entity.Seller
		err     error
	}
	type movementsResult struct {
		rows []repository.DayMovementRow
		err  error
	}

	sellersCh := make(chan sellersResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		sellers, err := uc.sellerRepo.ListByOrganization(organizationID)
		sellersCh <- sellersResult{sellers, err}
	}()
	go func() {
		rows, err := uc.movementRepo.ListDayDetailed(ctx, organizationID, day)
		movementsCh <- movementsResult{rows, err}
	}()

	sellers := <-sellersCh
	movements := <-movementsCh

	if sellers.err != nil {
		return nil, fmt.Errorf("reporte diario: vendedores: %w", sellers.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("reporte diario: movimientos: %w", movements.err)
	}

	dayMovs := make([]report.DayMovement, 0, len(movements.rows))
	for _, row := range movements.rows {
		dayMovs = append(dayMovs, report.DayMovement{
			SellerID:    row.SellerID,
			SellerName:  row.SellerName,
			ProductName: row.ProductName,
			Price:       row.Price,
			Quantity:    row.Quantity,
			Type:        row.Type,
		})
	}

	summary := report.Summarize(sellers.sellers, dayMovs, report.DefaultTopN)

	resp := &dto.DailyReportDTO{
		Date:        day.Format("2006-01-02"),
		Sellers:     make([]dto.SellerStatDTO, 0, len(summary.Sellers)),
		TopProducts: make([]dto.TopProductDTO, 0, len(summary.TopProducts)),
		GlobalTotal: summary.GlobalTotal,
	}
	for _, s := range summary.Sellers {
		resp.Sellers = append(resp.Sellers, dto.SellerStatDTO{
			SellerID:   s.SellerID,
			Name:       s.Name,
			Dispatched: s.Dispatched,
			Returned:   s.Returned,
			NetSold:    s.NetSold,
			Money:      s.Money,
			Efficiency: s.Efficiency,
		})
	}
	for _, p := range summary.TopProducts {
		resp.TopProducts = append(resp.TopProducts, dto.TopProductDTO{
			Name:     p.Name,
			Quantity: p.Quantity,
		})
	}
	return resp, nil
}
