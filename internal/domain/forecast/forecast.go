// Package forecast implementa el oráculo de producción: sugiere cuánto
// producir de cada producto para una fecha futura a partir del historial de
// ventas del mismo día de la semana, y cruza la sugerencia con las recetas
// para determinar si el inventario de insumos alcanza.
package forecast

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// SafetyMargin es el colchón fijo sobre el promedio histórico (15% extra).
const SafetyMargin = 1.15

// Estados de la predicción por producto.
const (
	StatusOK     = "OK"
	StatusNoData = "NO_DATA"
)

// Estados del requerimiento de insumos.
const (
	MaterialOK    = "OK"
	MaterialFalta = "FALTA"
)

// ProductForecast es la sugerencia de producción para un producto.
type ProductForecast struct {
	ProductID    int
	ProductName  string
	AvgSale      int // promedio de venta real por ocurrencia del día
	Suggested    int // avg * margen de seguridad, redondeado hacia arriba
	HistoryCount int // ocurrencias pasadas del mismo día de la semana
	Status       string
}

// MaterialRequirement es el insumo acumulado contra el stock actual.
type MaterialRequirement struct {
	IngredientID int
	Name         string
	Unit         string
	TotalNeeded  decimal.Decimal
	CurrentStock decimal.Decimal
	Status       string // OK | FALTA
}

// Shortfall devuelve cuánto falta para cubrir el requerimiento (cero si alcanza).
func (m MaterialRequirement) Shortfall() decimal.Decimal {
	diff := m.TotalNeeded.Sub(m.CurrentStock)
	if diff.IsNegative() {
		return decimal.Zero
	}
	return diff
}

// MaterialPlan es el rollup de materia prima del plan completo.
// CanProduce es true solo si TODOS los insumos alcanzan: un solo faltante
// bloquea la confirmación (no se modela producción parcial).
type MaterialPlan struct {
	Items      []MaterialRequirement
	CanProduce bool
}

// SuggestProduction calcula la sugerencia por producto para targetDate.
//
// Por producto: se toman todos los movimientos históricos cuyo timestamp cae en
// el mismo día de la semana que la fecha objetivo, se agrupan por fecha
// calendario (local), y por grupo la venta real es max(0, salidas - devoluciones).
// El promedio es ceil(total / grupos) y la sugerencia ceil(promedio * 1.15).
// Sin ocurrencias históricas la sugerencia es 0 con estado NO_DATA (no es error).
func SuggestProduction(targetDate time.Time, products []*entity.Product, movements []*entity.Movement) []ProductForecast {
	targetDay := targetDate.Weekday()

	// Índice: producto -> fecha local -> neto salidas/devoluciones del día
	type dayNet struct {
		salidas      int
		devoluciones int
	}
	byProduct := make(map[int]map[string]*dayNet)
	for _, m := range movements {
		if m.CreatedAt.Weekday() != targetDay {
			continue
		}
		days := byProduct[m.ProductID]
		if days == nil {
			days = make(map[string]*dayNet)
			byProduct[m.ProductID] = days
		}
		key := m.CreatedAt.Format("2006-01-02")
		net := days[key]
		if net == nil {
			net = &dayNet{}
			days[key] = net
		}
		switch m.Type {
		case entity.MovementSalida:
			net.salidas += m.Quantity
		case entity.MovementDevolucion:
			net.devoluciones += m.Quantity
		}
	}

	out := make([]ProductForecast, 0, len(products))
	for _, p := range products {
		days := byProduct[p.ID]
		if len(days) == 0 {
			out = append(out, ProductForecast{
				ProductID:   p.ID,
				ProductName: p.Name,
				Status:      StatusNoData,
			})
			continue
		}

		// La venta real nunca es negativa por grupo: el piso se aplica ANTES
		// de sumar, no sobre el total.
		totalSold := 0
		for _, net := range days {
			realSale := net.salidas - net.devoluciones
			if realSale > 0 {
				totalSold += realSale
			}
		}

		avgSale := ceilDiv(totalSold, len(days))
		suggested := int(math.Ceil(float64(avgSale) * SafetyMargin))

		out = append(out, ProductForecast{
			ProductID:    p.ID,
			ProductName:  p.Name,
			AvgSale:      avgSale,
			Suggested:    suggested,
			HistoryCount: len(days),
			Status:       StatusOK,
		})
	}
	return out
}

// PlanMaterials acumula el requerimiento de insumos de todas las sugerencias
// positivas y lo compara contra el stock actual.
//
// requerimiento(insumo) = Σ sobre productos de (sugerido * cantidad por unidad).
// Un insumo con requerimiento > stock queda en FALTA y bloquea todo el plan.
func PlanMaterials(forecasts []ProductForecast, recipes []*entity.RecipeLine, ingredients []*entity.Ingredient) MaterialPlan {
	ingByID := make(map[int]*entity.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		ingByID[ing.ID] = ing
	}
	suggestedByProduct := make(map[int]int, len(forecasts))
	for _, f := range forecasts {
		if f.Suggested > 0 {
			suggestedByProduct[f.ProductID] = f.Suggested
		}
	}

	totals := make(map[int]*MaterialRequirement)
	for _, line := range recipes {
		suggested, ok := suggestedByProduct[line.ProductID]
		if !ok {
			continue
		}
		ing := ingByID[line.IngredientID]
		if ing == nil {
			continue
		}
		needed := decimal.NewFromInt(int64(suggested)).Mul(line.Quantity)
		req := totals[ing.ID]
		if req == nil {
			req = &MaterialRequirement{
				IngredientID: ing.ID,
				Name:         ing.Name,
				Unit:         ing.Unit,
				CurrentStock: ing.CurrentStock,
				Status:       MaterialOK,
			}
			totals[ing.ID] = req
		}
		req.TotalNeeded = req.TotalNeeded.Add(needed)
	}

	plan := MaterialPlan{CanProduce: true}
	for _, req := range totals {
		if req.TotalNeeded.GreaterThan(req.CurrentStock) {
			req.Status = MaterialFalta
			plan.CanProduce = false
		}
		plan.Items = append(plan.Items, *req)
	}
	sort.Slice(plan.Items, func(i, j int) bool {
		return plan.Items[i].IngredientID < plan.Items[j].IngredientID
	})
	return plan
}

// ceilDiv divide enteros redondeando hacia arriba (nunca sub-producir).
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
