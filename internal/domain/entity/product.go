package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product es un producto terminado del catálogo.
// El ID entero codifica la familia por convención de rango (ej. Pan Salado 100–199):
// el ID se asigna dentro del [Base, Max] de la familia elegida al crear el producto.
type Product struct {
	ID             int
	OrganizationID string
	Name           string
	Price          decimal.Decimal // precio de venta actual (no se versiona por movimiento)
	CreatedAt      time.Time
}

// ProductFamily define un rango de IDs reservado para una familia de productos.
type ProductFamily struct {
	Label string
	Base  int
	Max   int
}

// FamiliesForBusiness devuelve el catálogo de familias según el tipo de negocio.
// Los rangos replican la convención 100/200/300/400 de la numeración de productos.
func FamiliesForBusiness(businessType string) []ProductFamily {
	switch businessType {
	case BusinessTortilleria:
		return []ProductFamily{
			{Label: "Tortilla", Base: 100, Max: 199},
			{Label: "Masa", Base: 200, Max: 299},
			{Label: "Totopos/Otros", Base: 300, Max: 399},
			{Label: "Bebidas", Base: 400, Max: 499},
		}
	case BusinessPizzeria:
		return []ProductFamily{
			{Label: "Clásicas", Base: 100, Max: 199},
			{Label: "Especiales", Base: 200, Max: 299},
			{Label: "Complementos", Base: 300, Max: 399},
			{Label: "Bebidas", Base: 400, Max: 499},
		}
	default: // panaderia
		return []ProductFamily{
			{Label: "Pan Salado", Base: 100, Max: 199},
			{Label: "Conchas", Base: 200, Max: 299},
			{Label: "Donas", Base: 300, Max: 399},
			{Label: "Hojaldre", Base: 400, Max: 499},
		}
	}
}

// FamilyFor busca la familia a la que pertenece un ID de producto.
func FamilyFor(businessType string, productID int) (ProductFamily, bool) {
	for _, f := range FamiliesForBusiness(businessType) {
		if productID >= f.Base && productID <= f.Max {
			return f, true
		}
	}
	return ProductFamily{}, false
}
