// Package payroll calcula la nómina semanal de vendedores comisionados:
// venta neta, porcentaje de devolución, comisión, bono y total a pagar.
package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// PricedMovement es un movimiento del rango de nómina con el precio ACTUAL del
// producto ya unido (el sistema no versiona precios por movimiento).
type PricedMovement struct {
	SellerID int
	Type     string
	Quantity int
	Price    decimal.Decimal
}

// Line es el resultado de nómina de un vendedor.
// Los no comisionados aparecen con Commissioned=false y sin cifras: son de
// sueldo fijo y se pagan fuera de este sistema, pero no se omiten del reporte.
type Line struct {
	SellerID     int
	SellerName   string
	RouteName    string
	Commissioned bool

	NetSale       decimal.Decimal // salidas$ - devoluciones$
	ReturnRate    decimal.Decimal // % devuelto sobre lo despachado (0 si no despachó)
	CommissionPay decimal.Decimal
	BonusEarned   bool
	BonusPay      decimal.Decimal
	BaseSalary    decimal.Decimal
	Total         decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Compute recorre los movimientos UNA sola vez acumulando dinero despachado y
// devuelto por vendedor, y deriva la nómina de cada vendedor comisionado:
//
//	ventaNeta   = salidas$ - devoluciones$
//	%devolución = devoluciones$ / salidas$ * 100 (0 si salidas$ = 0)
//	comisión    = ventaNeta * tasa/100
//	bono        = monto configurado si %devolución <= umbral Y salidas$ > 0
//	total       = sueldo base + comisión + bono
//
// Sin movimientos en el rango, los comisionados activos igual aparecen con
// total = sueldo base.
func Compute(sellers []*entity.Seller, movements []PricedMovement) []Line {
	type money struct {
		salida     decimal.Decimal
		devolucion decimal.Decimal
	}
	totals := make(map[int]*money, len(sellers))
	for _, s := range sellers {
		totals[s.ID] = &money{}
	}

	for _, m := range movements {
		acc := totals[m.SellerID]
		if acc == nil {
			// Movimiento de un vendedor fuera del roster: se ignora, la nómina
			// solo reporta vendedores vigentes.
			continue
		}
		amount := decimal.NewFromInt(int64(m.Quantity)).Mul(m.Price)
		switch m.Type {
		case entity.MovementSalida:
			acc.salida = acc.salida.Add(amount)
		case entity.MovementDevolucion:
			acc.devolucion = acc.devolucion.Add(amount)
		}
	}

	lines := make([]Line, 0, len(sellers))
	for _, s := range sellers {
		line := Line{
			SellerID:   s.ID,
			SellerName: s.Name,
			RouteName:  s.RouteName,
		}
		if !s.CommissionActive {
			lines = append(lines, line)
			continue
		}
		acc := totals[s.ID]

		line.Commissioned = true
		line.NetSale = acc.salida.Sub(acc.devolucion)
		if acc.salida.GreaterThan(decimal.Zero) {
			line.ReturnRate = acc.devolucion.Div(acc.salida).Mul(hundred)
		}
		line.CommissionPay = line.NetSale.Mul(s.CommissionRate).Div(hundred)
		line.BonusEarned = line.ReturnRate.LessThanOrEqual(s.BonusThreshold) && acc.salida.GreaterThan(decimal.Zero)
		if line.BonusEarned {
			line.BonusPay = s.BonusAmount
		}
		line.BaseSalary = s.BaseSalary
		line.Total = s.BaseSalary.Add(line.CommissionPay).Add(line.BonusPay)

		lines = append(lines, line)
	}
	return lines
}

// WeekRange devuelve el lunes y domingo de la semana de ref (rango por defecto
// del cálculo de nómina), ambos a medianoche local.
func WeekRange(ref time.Time) (start, end time.Time) {
	offset := int(ref.Weekday())
	if offset == 0 {
		offset = 7 // domingo cierra la semana, no la abre
	}
	monday := ref.AddDate(0, 0, 1-offset)
	start = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
	end = start.AddDate(0, 0, 6)
	return start, end
}
