package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

func roster() []*entity.Seller {
	return []*entity.Seller{
		{ID: 1, Name: "Ruta Centro"},
		{ID: 2, Name: "Mostrador"},
	}
}

func TestSummarize_AcumuladosPorVendedor(t *testing.T) {
	movements := []DayMovement{
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromFloat(2.5), Quantity: 100, Type: entity.MovementSalida},
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromFloat(2.5), Quantity: 20, Type: entity.MovementDevolucion},
		{SellerID: 2, ProductName: "Concha", Price: decimal.NewFromInt(8), Quantity: 30, Type: entity.MovementSalida},
	}

	sum := Summarize(roster(), movements, 0)
	require.Len(t, sum.Sellers, 2)

	ruta := sum.Sellers[0]
	assert.Equal(t, 100, ruta.Dispatched)
	assert.Equal(t, 20, ruta.Returned)
	assert.Equal(t, 80, ruta.NetSold)
	assert.True(t, ruta.Money.Equal(decimal.NewFromInt(200)), "250$ llevado - 50$ devuelto")
	assert.True(t, ruta.Efficiency.Equal(decimal.NewFromInt(80)))

	mostrador := sum.Sellers[1]
	assert.Equal(t, 30, mostrador.NetSold)
	assert.True(t, mostrador.Money.Equal(decimal.NewFromInt(240)))
	assert.True(t, mostrador.Efficiency.Equal(decimal.NewFromInt(100)))
}

func TestSummarize_VendedorSinMovimientosApareceEnCeros(t *testing.T) {
	movements := []DayMovement{
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromInt(3), Quantity: 10, Type: entity.MovementSalida},
	}

	sum := Summarize(roster(), movements, 0)
	require.Len(t, sum.Sellers, 2, "todo el roster aparece aunque no haya vendido")

	mostrador := sum.Sellers[1]
	assert.Zero(t, mostrador.Dispatched)
	assert.True(t, mostrador.Money.IsZero())
	assert.True(t, mostrador.Efficiency.IsZero(), "eficiencia 0 sin división por cero")
}

func TestSummarize_VendedorBorradoSeMaterializa(t *testing.T) {
	movements := []DayMovement{
		{SellerID: 99, SellerName: "Don Chuy", ProductName: "Dona", Price: decimal.NewFromInt(12), Quantity: 5, Type: entity.MovementSalida},
	}

	sum := Summarize(roster(), movements, 0)
	require.Len(t, sum.Sellers, 3)
	assert.Equal(t, "Don Chuy", sum.Sellers[2].Name)
	assert.True(t, sum.GlobalTotal.Equal(decimal.NewFromInt(60)), "su dinero cuenta en el total global")
}

func TestSummarize_TopProductosDescendente(t *testing.T) {
	movements := []DayMovement{
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromInt(3), Quantity: 40, Type: entity.MovementSalida},
		{SellerID: 1, ProductName: "Concha", Price: decimal.NewFromInt(8), Quantity: 60, Type: entity.MovementSalida},
		{SellerID: 2, ProductName: "Bolillo", Price: decimal.NewFromInt(3), Quantity: 30, Type: entity.MovementSalida},
		// Las devoluciones no restan del ranking: mide lo despachado
		{SellerID: 1, ProductName: "Concha", Price: decimal.NewFromInt(8), Quantity: 50, Type: entity.MovementDevolucion},
	}

	sum := Summarize(roster(), movements, 2)
	require.Len(t, sum.TopProducts, 2)
	assert.Equal(t, TopProduct{Name: "Bolillo", Quantity: 70}, sum.TopProducts[0])
	assert.Equal(t, TopProduct{Name: "Concha", Quantity: 60}, sum.TopProducts[1])
}

func TestSummarize_TotalGlobalCuadraConVendedores(t *testing.T) {
	movements := []DayMovement{
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromFloat(2.5), Quantity: 100, Type: entity.MovementSalida},
		{SellerID: 2, ProductName: "Concha", Price: decimal.NewFromInt(8), Quantity: 25, Type: entity.MovementSalida},
		{SellerID: 2, ProductName: "Concha", Price: decimal.NewFromInt(8), Quantity: 5, Type: entity.MovementDevolucion},
	}

	sum := Summarize(roster(), movements, 0)

	var check decimal.Decimal
	for _, s := range sum.Sellers {
		check = check.Add(s.Money)
	}
	assert.True(t, sum.GlobalTotal.Equal(check), "el global es exactamente la suma por vendedor")
}

func TestSummarize_EsIdempotenteSobreElMismoSnapshot(t *testing.T) {
	movements := []DayMovement{
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromInt(3), Quantity: 12, Type: entity.MovementSalida},
		{SellerID: 1, ProductName: "Bolillo", Price: decimal.NewFromInt(3), Quantity: 2, Type: entity.MovementDevolucion},
	}

	first := Summarize(roster(), movements, 0)
	second := Summarize(roster(), movements, 0)
	assert.Equal(t, first, second)
}
