// Package report agrega los movimientos de un día en un resumen por vendedor
// y por producto (top de más vendidos), en una sola pasada.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// DefaultTopN es el tamaño del ranking de productos más despachados.
const DefaultTopN = 5

// DayMovement es un movimiento del día con nombre y precio actual del producto
// ya unidos, más el nombre del vendedor por si éste ya no existe en el roster.
type DayMovement struct {
	SellerID    int
	SellerName  string
	ProductName string
	Price       decimal.Decimal
	Quantity    int
	Type        string
}

// SellerStat es el acumulado del día de un vendedor.
type SellerStat struct {
	SellerID   int
	Name       string
	Dispatched int             // unidades llevadas
	Returned   int             // unidades devueltas
	NetSold    int             // max(0, llevado - devuelto)
	Money      decimal.Decimal // salidas$ - devoluciones$ (firmado)
	Efficiency decimal.Decimal // % vendido sobre llevado (0 si no llevó nada)
}

// TopProduct es una entrada del ranking de despachos.
type TopProduct struct {
	Name     string
	Quantity int
}

// DailySummary es el reporte del día completo.
type DailySummary struct {
	Sellers     []SellerStat
	TopProducts []TopProduct
	GlobalTotal decimal.Decimal // Σ de los totales firmados de cada vendedor
}

// Summarize recorre los movimientos del día una sola vez.
//
// El acumulador se siembra con el roster completo: un vendedor activo sin
// movimientos aparece igual con cifras en cero, garantizando visibilidad en
// días sin venta. Un vendedor presente en el historial pero ausente del roster
// (borrado) se materializa al vuelo para no perder su dinero del total global.
func Summarize(sellers []*entity.Seller, movements []DayMovement, topN int) DailySummary {
	if topN <= 0 {
		topN = DefaultTopN
	}

	statBySeller := make(map[int]*SellerStat, len(sellers))
	order := make([]int, 0, len(sellers))
	for _, s := range sellers {
		statBySeller[s.ID] = &SellerStat{SellerID: s.ID, Name: s.Name}
		order = append(order, s.ID)
	}

	productQty := make(map[string]int)
	for _, m := range movements {
		stat := statBySeller[m.SellerID]
		if stat == nil {
			name := m.SellerName
			if name == "" {
				name = "Ex-Vendedor"
			}
			stat = &SellerStat{SellerID: m.SellerID, Name: name}
			statBySeller[m.SellerID] = stat
			order = append(order, m.SellerID)
		}

		amount := decimal.NewFromInt(int64(m.Quantity)).Mul(m.Price)
		switch m.Type {
		case entity.MovementSalida:
			stat.Dispatched += m.Quantity
			stat.Money = stat.Money.Add(amount)
			productQty[m.ProductName] += m.Quantity
		case entity.MovementDevolucion:
			stat.Returned += m.Quantity
			stat.Money = stat.Money.Sub(amount)
		}
	}

	summary := DailySummary{Sellers: make([]SellerStat, 0, len(order))}
	for _, id := range order {
		stat := statBySeller[id]
		stat.NetSold = stat.Dispatched - stat.Returned
		if stat.NetSold < 0 {
			stat.NetSold = 0
		}
		if stat.Dispatched > 0 {
			stat.Efficiency = decimal.NewFromInt(int64(stat.NetSold)).
				Div(decimal.NewFromInt(int64(stat.Dispatched))).
				Mul(decimal.NewFromInt(100))
		}
		summary.GlobalTotal = summary.GlobalTotal.Add(stat.Money)
		summary.Sellers = append(summary.Sellers, *stat)
	}

	tops := make([]TopProduct, 0, len(productQty))
	for name, qty := range productQty {
		tops = append(tops, TopProduct{Name: name, Quantity: qty})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Quantity != tops[j].Quantity {
			return tops[i].Quantity > tops[j].Quantity
		}
		return tops[i].Name < tops[j].Name
	})
	if len(tops) > topN {
		tops = tops[:topN]
	}
	summary.TopProducts = tops

	return summary
}
