package warehouse

import (
	"context"

	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La entrada de insumo y su registro en
// bitácora se confirman juntos.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
