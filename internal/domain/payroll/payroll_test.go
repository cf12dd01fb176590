package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

func commissionedSeller(id int, name string) *entity.Seller {
	return &entity.Seller{
		ID:               id,
		Name:             name,
		CommissionActive: true,
		BaseSalary:       decimal.NewFromInt(500),
		CommissionRate:   decimal.NewFromInt(8),
		BonusThreshold:   decimal.NewFromInt(10),
		BonusAmount:      decimal.NewFromInt(200),
	}
}

// Caso de referencia: $1000 despachado, $50 devuelto (5%), umbral 10%,
// tasa 8%, bono $200, base $500 → comisión $76, bono ganado, total $776.
func TestCompute_CasoReferencia(t *testing.T) {
	sellers := []*entity.Seller{commissionedSeller(1, "Ruta Centro")}
	movements := []PricedMovement{
		{SellerID: 1, Type: entity.MovementSalida, Quantity: 100, Price: decimal.NewFromInt(10)},
		{SellerID: 1, Type: entity.MovementDevolucion, Quantity: 5, Price: decimal.NewFromInt(10)},
	}

	lines := Compute(sellers, movements)
	require.Len(t, lines, 1)
	l := lines[0]

	assert.True(t, l.Commissioned)
	assert.True(t, l.NetSale.Equal(decimal.NewFromInt(950)), "venta neta = 1000 - 50")
	assert.True(t, l.ReturnRate.Equal(decimal.NewFromInt(5)), "5% de devolución")
	assert.True(t, l.CommissionPay.Equal(decimal.NewFromInt(76)), "comisión = 950 * 8%")
	assert.True(t, l.BonusEarned, "5% <= umbral 10% con despacho > 0")
	assert.True(t, l.BonusPay.Equal(decimal.NewFromInt(200)))
	assert.True(t, l.Total.Equal(decimal.NewFromInt(776)), "500 + 76 + 200")
}

func TestCompute_BonoPerdidoPorMermaAlta(t *testing.T) {
	sellers := []*entity.Seller{commissionedSeller(1, "Ruta Centro")}
	movements := []PricedMovement{
		{SellerID: 1, Type: entity.MovementSalida, Quantity: 100, Price: decimal.NewFromInt(10)},
		// 15% de devolución > umbral 10%
		{SellerID: 1, Type: entity.MovementDevolucion, Quantity: 15, Price: decimal.NewFromInt(10)},
	}

	lines := Compute(sellers, movements)
	require.Len(t, lines, 1)
	assert.False(t, lines[0].BonusEarned)
	assert.True(t, lines[0].BonusPay.IsZero())
	// total = 500 + 850*0.08 = 568
	assert.True(t, lines[0].Total.Equal(decimal.NewFromInt(568)))
}

func TestCompute_SinMovimientosPagaSoloSueldoBase(t *testing.T) {
	sellers := []*entity.Seller{commissionedSeller(1, "Ruta Centro")}

	lines := Compute(sellers, nil)
	require.Len(t, lines, 1)
	l := lines[0]

	assert.True(t, l.NetSale.IsZero())
	assert.True(t, l.ReturnRate.IsZero(), "sin despacho no hay división por cero")
	assert.False(t, l.BonusEarned, "sin despacho no hay bono aunque la merma sea 0%")
	assert.True(t, l.Total.Equal(decimal.NewFromInt(500)))
}

func TestCompute_NoComisionadoApareceSinCalculo(t *testing.T) {
	fixed := &entity.Seller{ID: 2, Name: "Mostrador", CommissionActive: false}
	sellers := []*entity.Seller{commissionedSeller(1, "Ruta Centro"), fixed}
	movements := []PricedMovement{
		// El mostrador vende muchísimo, pero es sueldo fijo: sin línea calculada
		{SellerID: 2, Type: entity.MovementSalida, Quantity: 500, Price: decimal.NewFromInt(20)},
	}

	lines := Compute(sellers, movements)
	require.Len(t, lines, 2)

	var mostrador *Line
	for i := range lines {
		if lines[i].SellerID == 2 {
			mostrador = &lines[i]
		}
	}
	require.NotNil(t, mostrador, "el no comisionado se reporta, no se omite")
	assert.False(t, mostrador.Commissioned)
	assert.True(t, mostrador.Total.IsZero())
}

func TestWeekRange_LunesADomingo(t *testing.T) {
	// Jueves 2026-08-27 → semana del lunes 24 al domingo 30
	ref := time.Date(2026, 8, 27, 15, 30, 0, 0, time.Local)
	start, end := WeekRange(ref)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, time.Sunday, end.Weekday())
	assert.Equal(t, 24, start.Day())
	assert.Equal(t, 30, end.Day())

	// Un domingo pertenece a la semana que ese día cierra
	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
	start2, end2 := WeekRange(sunday)
	assert.Equal(t, start, start2)
	assert.Equal(t, end, end2)
}
