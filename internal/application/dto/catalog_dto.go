package dto

import "github.com/shopspring/decimal"

// CreateProductRequest alta de producto. El ID se asigna dentro del rango
// de la familia indicada.
type CreateProductRequest struct {
	Name   string          `json:"name" validate:"required,min=2,max=120"`
	Family string          `json:"family" validate:"required"`
	Price  decimal.Decimal `json:"price"`
}

// UpdateProductRequest modificación de producto.
type UpdateProductRequest struct {
	Name  string          `json:"name" validate:"required,min=2,max=120"`
	Price decimal.Decimal `json:"price"`
}

// ProductDTO producto del catálogo.
type ProductDTO struct {
	ID     int             `json:"id"`
	Name   string          `json:"name"`
	Family string          `json:"family"`
	Price  decimal.Decimal `json:"price"`
}

// CreateIngredientRequest alta de insumo.
type CreateIngredientRequest struct {
	Name         string          `json:"name" validate:"required,min=2,max=120"`
	Unit         string          `json:"unit" validate:"required,oneof=gramos ml pzas"`
	InitialStock decimal.Decimal `json:"initial_stock"`
}

// IngredientDTO insumo con stock en unidad base y presentación normalizada.
type IngredientDTO struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	DisplayStock decimal.Decimal `json:"display_stock"`
	DisplayUnit  string          `json:"display_unit"`
}

// RecipeLineRequest una línea de receta (insumo por pieza producida).
type RecipeLineRequest struct {
	IngredientID int             `json:"ingredient_id" validate:"required,gt=0"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// SetRecipeRequest reemplaza la receta completa de un producto.
type SetRecipeRequest struct {
	Lines []RecipeLineRequest `json:"lines" validate:"required,min=1,dive"`
}

// RecipeLineDTO línea de receta resuelta con nombre de insumo.
type RecipeLineDTO struct {
	IngredientID int             `json:"ingredient_id"`
	Name         string          `json:"name"`
	Unit         string          `json:"unit"`
	Quantity     decimal.Decimal `json:"quantity"`
}

// CreateSellerRequest alta de vendedor / ruta.
type CreateSellerRequest struct {
	Name      string `json:"name" validate:"required,min=2,max=120"`
	RouteName string `json:"route_name" validate:"required,min=2,max=120"`
}

// UpdateCommissionRequest esquema de pago de un vendedor.
type UpdateCommissionRequest struct {
	CommissionActive bool            `json:"commission_active"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	BonusThreshold   decimal.Decimal `json:"bonus_threshold"`
	BonusAmount      decimal.Decimal `json:"bonus_amount"`
}

// SellerDTO vendedor con su saldo pendiente.
type SellerDTO struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	RouteName        string          `json:"route_name"`
	Balance          decimal.Decimal `json:"balance"`
	CommissionActive bool            `json:"commission_active"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	CommissionRate   decimal.Decimal `json:"commission_rate"`
	BonusThreshold   decimal.Decimal `json:"bonus_threshold"`
	BonusAmount      decimal.Decimal `json:"bonus_amount"`
}
