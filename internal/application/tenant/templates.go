package tenant

import (
	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// Catálogos plantilla por giro. El ID de producto respeta la convención de
// familias por rango (100/200/300/400) para que el siguiente producto manual
// continúe la numeración.

type productSeed struct {
	id    int
	name  string
	price string
}

type ingredientSeed struct {
	name  string
	unit  string
	stock string
}

type recipeSeed struct {
	productID  int
	ingredient string // por nombre, se resuelve al sembrar
	quantity   string
}

type sellerSeed struct {
	name  string
	route string
}

type template struct {
	products    []productSeed
	ingredients []ingredientSeed
	recipes     []recipeSeed
	sellers     []sellerSeed
}

func templateFor(businessType string) template {
	switch businessType {
	case entity.BusinessTortilleria:
		return template{
			products: []productSeed{
				{100, "Tortilla de Maíz (kg)", "22.00"},
				{101, "Tortilla de Harina (docena)", "35.00"},
				{200, "Masa (kg)", "16.00"},
				{300, "Totopos (bolsa)", "25.00"},
			},
			ingredients: []ingredientSeed{
				{"Maíz nixtamalizado", entity.UnitGramos, "50000"},
				{"Harina de trigo", entity.UnitGramos, "25000"},
				{"Cal", entity.UnitGramos, "2000"},
				{"Agua purificada", entity.UnitML, "100000"},
			},
			recipes: []recipeSeed{
				{100, "Maíz nixtamalizado", "950"},
				{100, "Agua purificada", "150"},
				{200, "Maíz nixtamalizado", "980"},
				{101, "Harina de trigo", "600"},
			},
			sellers: []sellerSeed{
				{"Mostrador", "Mostrador"},
				{"Reparto Centro", "Centro"},
			},
		}
	case entity.BusinessPizzeria:
		return template{
			products: []productSeed{
				{100, "Pizza Margarita", "120.00"},
				{101, "Pizza Pepperoni", "140.00"},
				{200, "Pizza Especial de la Casa", "180.00"},
				{300, "Orden de Pan de Ajo", "45.00"},
				{400, "Refresco 600ml", "20.00"},
			},
			ingredients: []ingredientSeed{
				{"Harina 000", entity.UnitGramos, "30000"},
				{"Queso mozzarella", entity.UnitGramos, "15000"},
				{"Salsa de tomate", entity.UnitML, "10000"},
				{"Pepperoni", entity.UnitGramos, "5000"},
			},
			recipes: []recipeSeed{
				{100, "Harina 000", "250"},
				{100, "Queso mozzarella", "180"},
				{100, "Salsa de tomate", "90"},
				{101, "Harina 000", "250"},
				{101, "Queso mozzarella", "160"},
				{101, "Pepperoni", "60"},
			},
			sellers: []sellerSeed{
				{"Mostrador", "Mostrador"},
				{"Reparto Moto 1", "Zona Norte"},
			},
		}
	default: // panaderia
		return template{
			products: []productSeed{
				{100, "Bolillo", "2.50"},
				{101, "Telera", "2.50"},
				{200, "Concha Vainilla", "8.00"},
				{201, "Concha Chocolate", "8.00"},
				{300, "Dona Azucarada", "10.00"},
				{400, "Cuerno", "9.00"},
			},
			ingredients: []ingredientSeed{
				{"Harina de trigo", entity.UnitGramos, "50000"},
				{"Azúcar", entity.UnitGramos, "20000"},
				{"Levadura", entity.UnitGramos, "3000"},
				{"Mantequilla", entity.UnitGramos, "10000"},
				{"Leche", entity.UnitML, "20000"},
				{"Huevo", entity.UnitPiezas, "120"},
			},
			recipes: []recipeSeed{
				{100, "Harina de trigo", "80"},
				{100, "Levadura", "2"},
				{200, "Harina de trigo", "60"},
				{200, "Azúcar", "25"},
				{200, "Mantequilla", "15"},
				{300, "Harina de trigo", "55"},
				{300, "Azúcar", "30"},
				{400, "Harina de trigo", "50"},
				{400, "Mantequilla", "30"},
			},
			sellers: []sellerSeed{
				{"Mostrador", "Mostrador"},
				{"Ruta 1", "Colonia Centro"},
				{"Ruta 2", "Mercado"},
			},
		}
	}
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
