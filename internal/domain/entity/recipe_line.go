package entity

import "github.com/shopspring/decimal"

// RecipeLine relaciona un producto con un insumo: cantidad de insumo (en unidad
// base) necesaria para producir UNA unidad del producto. La receta completa de
// un producto es el conjunto de sus líneas.
type RecipeLine struct {
	ID             int
	OrganizationID string
	ProductID      int
	IngredientID   int
	Quantity       decimal.Decimal // por unidad producida
}
