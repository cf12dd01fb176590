package repository

import "github.com/amasasystem/amasa-api/internal/domain/entity"

// RecipeRepository define el puerto de persistencia para líneas de receta.
type RecipeRepository interface {
	Create(line *entity.RecipeLine) error
	ListByProduct(organizationID string, productID int) ([]*entity.RecipeLine, error)
	ListByOrganization(organizationID string) ([]*entity.RecipeLine, error)
	Delete(organizationID string, id int) error
}
