package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unidades de insumo. Las convertibles (gramos, ml) se almacenan SIEMPRE en la
// denominación mínima; kg y litros existen solo como presentación.
const (
	UnitGramos = "gramos"
	UnitML     = "ml"
	UnitPiezas = "pzas"
)

// Ingredient es un insumo (materia prima) con su stock actual en unidad base.
type Ingredient struct {
	ID             int
	OrganizationID string
	Name           string
	Unit           string          // gramos | ml | pzas
	CurrentStock   decimal.Decimal // en unidad base (gramos, ml o piezas)
	CreatedAt      time.Time
}

// ConvertibleUnit informa si la unidad admite captura en denominación mayor (kg o L).
func ConvertibleUnit(unit string) bool {
	return unit == UnitGramos || unit == UnitML
}

// DisplayQuantity normaliza una cantidad para presentación: gramos≥1000 en kg
// y ml≥1000 en litros. El valor almacenado y calculado no cambia nunca.
func DisplayQuantity(qty decimal.Decimal, unit string) (decimal.Decimal, string) {
	thousand := decimal.NewFromInt(1000)
	if ConvertibleUnit(unit) && qty.GreaterThanOrEqual(thousand) {
		if unit == UnitGramos {
			return qty.Div(thousand).Round(2), "kg"
		}
		return qty.Div(thousand).Round(2), "L"
	}
	return qty, unit
}
