package production

import (
	"context"

	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el descuento de insumos y la
// bitácora se confirmen juntos o no se confirme nada.
type TxRunner interface {
	RunProduction(ctx context.Context, fn func(
		ingredientRepo repository.IngredientRepository,
		auditRepo repository.AuditLogRepository,
	) error) error
}
