package tenant

import (
	"context"

	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. El alta de un tenant siembra organización,
// usuario administrador y catálogo plantilla: o queda todo o no queda nada.
type TxRunner interface {
	RunProvision(ctx context.Context, fn func(
		orgRepo repository.OrganizationRepository,
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		sellerRepo repository.SellerRepository,
	) error) error
}
