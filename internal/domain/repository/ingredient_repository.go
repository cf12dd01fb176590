package repository

import (
	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// IngredientRepository define el puerto de persistencia para insumos y su stock.
type IngredientRepository interface {
	Create(ing *entity.Ingredient) error
	GetByID(organizationID string, id int) (*entity.Ingredient, error)
	ListByOrganization(organizationID string) ([]*entity.Ingredient, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una tx.
	GetForUpdate(organizationID string, id int) (*entity.Ingredient, error)
	UpdateStock(organizationID string, id int, newStock decimal.Decimal) error
	Delete(organizationID string, id int) error
}
