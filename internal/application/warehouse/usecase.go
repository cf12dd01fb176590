// Package warehouse implementa las entradas de almacén: compras de insumo que
// incrementan el stock en unidad base.
package warehouse

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

// CaptureMayor indica que la cantidad llega en denominación mayor (kg o L)
// y debe convertirse x1000 a la unidad base antes de persistir.
const CaptureMayor = "MAYOR"

// UseCase registra entradas de insumo con bloqueo de fila.
type UseCase struct {
	txRunner       TxRunner
	ingredientRepo repository.IngredientRepository
	notifier       ports.Notifier
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, ingredientRepo repository.IngredientRepository, notifier ports.Notifier) *UseCase {
	return &UseCase{txRunner: txRunner, ingredientRepo: ingredientRepo, notifier: notifier}
}

// AddStock suma la cantidad al stock del insumo. Con captura MAYOR convierte
// kg→gramos o L→ml; la conversión solo aplica a unidades convertibles.
// La fila se bloquea (SELECT FOR UPDATE) y la compra queda en bitácora.
func (uc *UseCase) AddStock(ctx context.Context, organizationID string, req dto.AddStockRequest) (*dto.IngredientDTO, error) {
	if !req.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}

	ing, err := uc.ingredientRepo.GetByID(organizationID, req.IngredientID)
	if err != nil {
		return nil, err
	}

	amount := req.Amount
	if req.CaptureUnit == CaptureMayor {
		if !entity.ConvertibleUnit(ing.Unit) {
			return nil, domain.ErrInvalidInput
		}
		amount = amount.Mul(decimal.NewFromInt(1000))
	}

	var updated *entity.Ingredient
	err = uc.txRunner.RunProduction(ctx, func(
		ingredientRepo repository.IngredientRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		locked, err := ingredientRepo.GetForUpdate(organizationID, req.IngredientID)
		if err != nil {
			return err
		}
		newStock := locked.CurrentStock.Add(amount)
		if err := ingredientRepo.UpdateStock(organizationID, locked.ID, newStock); err != nil {
			return err
		}
		locked.CurrentStock = newStock
		updated = locked
		return auditRepo.Create(&entity.AuditLog{
			OrganizationID: organizationID,
			Action:         "Compra Insumo",
			Details:        fmt.Sprintf("%s: +%s %s", locked.Name, amount.String(), locked.Unit),
			CreatedAt:      time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	displayQty, displayUnit := entity.DisplayQuantity(updated.CurrentStock, updated.Unit)
	uc.notifier.Send(ctx, fmt.Sprintf(
		"📦 Entrada de almacén\n%s: +%s %s\nStock actual: %s %s",
		updated.Name, amount.String(), updated.Unit, displayQty.String(), displayUnit,
	))

	return &dto.IngredientDTO{
		ID:           updated.ID,
		Name:         updated.Name,
		Unit:         updated.Unit,
		CurrentStock: updated.CurrentStock,
		DisplayStock: displayQty,
		DisplayUnit:  displayUnit,
	}, nil
}
