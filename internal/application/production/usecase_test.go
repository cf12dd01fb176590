package production_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amasasystem/amasa-api/internal/application/production"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

const testOrgID = "org-produccion-test"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
}

func (r *fakeProductRepo) Create(_ *entity.Product) error { return nil }
func (r *fakeProductRepo) GetByID(_ string, _ int) (*entity.Product, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeProductRepo) ListByOrganization(_ string) ([]*entity.Product, error) {
	return r.products, nil
}
func (r *fakeProductRepo) Update(_ *entity.Product) error               { return nil }
func (r *fakeProductRepo) Delete(_ string, _ int) error                 { return nil }
func (r *fakeProductRepo) MaxIDInRange(_ string, _, _ int) (int, error) { return 0, nil }

type fakeMovementRepo struct {
	movements []*entity.Movement
}

func (r *fakeMovementRepo) CreateBatch(_ []*entity.Movement) error { return nil }
func (r *fakeMovementRepo) ListByOrganization(_ context.Context, _ string) ([]*entity.Movement, error) {
	return r.movements, nil
}
func (r *fakeMovementRepo) ListPricedInRange(_ context.Context, _ string, _, _ time.Time) ([]repository.PricedMovementRow, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListDayDetailed(_ context.Context, _ string, _ time.Time) ([]repository.DayMovementRow, error) {
	return nil, nil
}
func (r *fakeMovementRepo) ListSellerDispatchOn(_ context.Context, _ string, _ int, _ time.Time) ([]repository.DispatchRow, error) {
	return nil, nil
}

type fakeRecipeRepo struct {
	lines []*entity.RecipeLine
}

func (r *fakeRecipeRepo) Create(_ *entity.RecipeLine) error { return nil }
func (r *fakeRecipeRepo) ListByProduct(_ string, _ int) ([]*entity.RecipeLine, error) {
	return nil, nil
}
func (r *fakeRecipeRepo) ListByOrganization(_ string) ([]*entity.RecipeLine, error) {
	return r.lines, nil
}
func (r *fakeRecipeRepo) Delete(_ string, _ int) error { return nil }

type fakeIngredientRepo struct {
	ingredients  map[int]*entity.Ingredient
	stockUpdates map[int]decimal.Decimal
	// lockedStock simula que otro proceso consumió insumo entre el cálculo y el
	// SELECT FOR UPDATE: si está poblado, GetForUpdate devuelve este stock.
	lockedStock map[int]decimal.Decimal
}

func newFakeIngredientRepo(ingredients ...*entity.Ingredient) *fakeIngredientRepo {
	r := &fakeIngredientRepo{
		ingredients:  make(map[int]*entity.Ingredient),
		stockUpdates: make(map[int]decimal.Decimal),
		lockedStock:  make(map[int]decimal.Decimal),
	}
	for _, ing := range ingredients {
		r.ingredients[ing.ID] = ing
	}
	return r
}

func (r *fakeIngredientRepo) Create(_ *entity.Ingredient) error { return nil }
func (r *fakeIngredientRepo) GetByID(_ string, id int) (*entity.Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ing, nil
}
func (r *fakeIngredientRepo) ListByOrganization(_ string) ([]*entity.Ingredient, error) {
	out := make([]*entity.Ingredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		out = append(out, ing)
	}
	return out, nil
}
func (r *fakeIngredientRepo) GetForUpdate(_ string, id int) (*entity.Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if locked, ok := r.lockedStock[id]; ok {
		copia := *ing
		copia.CurrentStock = locked
		return &copia, nil
	}
	return ing, nil
}
func (r *fakeIngredientRepo) UpdateStock(_ string, id int, newStock decimal.Decimal) error {
	r.stockUpdates[id] = newStock
	return nil
}
func (r *fakeIngredientRepo) Delete(_ string, _ int) error { return nil }

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Create(entry *entity.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}
func (r *fakeAuditRepo) ListRecent(_ string, _ int) ([]*entity.AuditLog, error) { return nil, nil }

type stubTxRunner struct {
	ingredientRepo *fakeIngredientRepo
	auditRepo      *fakeAuditRepo
	runs           int
}

func (s *stubTxRunner) RunProduction(_ context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	s.runs++
	return fn(s.ingredientRepo, s.auditRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
//
// Fecha objetivo: sábado 2026-09-05. Historial de dos sábados previos para el
// Bolillo: 22-ago SALIDA 20; 29-ago SALIDA 20 y DEVOLUCION 10 (neto 10).
// total 30 / 2 ocurrencias = 15 promedio; sugerido = ceil(15 * 1.15) = 18.
// Receta: 50 g de harina por bolillo → requerimiento 900 g.
// ──────────────────────────────────────────────────────────────────────────────

var targetSaturday = time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)

func buildProductionFixture(harinaStock decimal.Decimal) (*production.UseCase, *stubTxRunner, *fakeIngredientRepo) {
	productRepo := &fakeProductRepo{products: []*entity.Product{
		{ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
		{ID: 200, OrganizationID: testOrgID, Name: "Concha Vainilla", Price: dec("8")},
	}}
	movementRepo := &fakeMovementRepo{movements: []*entity.Movement{
		{OrganizationID: testOrgID, SellerID: 1, ProductID: 100, Quantity: 20,
			Type: entity.MovementSalida, CreatedAt: time.Date(2026, 8, 22, 9, 0, 0, 0, time.Local)},
		{OrganizationID: testOrgID, SellerID: 1, ProductID: 100, Quantity: 20,
			Type: entity.MovementSalida, CreatedAt: time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)},
		{OrganizationID: testOrgID, SellerID: 1, ProductID: 100, Quantity: 10,
			Type: entity.MovementDevolucion, CreatedAt: time.Date(2026, 8, 29, 18, 0, 0, 0, time.Local)},
	}}
	recipeRepo := &fakeRecipeRepo{lines: []*entity.RecipeLine{
		{ID: 1, OrganizationID: testOrgID, ProductID: 100, IngredientID: 1, Quantity: dec("50")},
	}}
	ingredientRepo := newFakeIngredientRepo(&entity.Ingredient{
		ID: 1, OrganizationID: testOrgID, Name: "Harina", Unit: entity.UnitGramos,
		CurrentStock: harinaStock,
	})
	auditRepo := &fakeAuditRepo{}
	tx := &stubTxRunner{ingredientRepo: ingredientRepo, auditRepo: auditRepo}

	uc := production.NewUseCase(tx, productRepo, movementRepo, recipeRepo, ingredientRepo)
	return uc, tx, ingredientRepo
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Forecast
// ──────────────────────────────────────────────────────────────────────────────

func TestForecast_SugerenciaConMargen(t *testing.T) {
	uc, _, _ := buildProductionFixture(dec("1000"))

	plan, err := uc.Forecast(context.Background(), testOrgID, targetSaturday)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-05", plan.TargetDate)
	assert.Equal(t, "Sábado", plan.Weekday)

	require.Len(t, plan.Forecasts, 2)
	bolillo := plan.Forecasts[0]
	assert.Equal(t, 100, bolillo.ProductID)
	assert.Equal(t, 15, bolillo.AvgSale, "promedio: (20 + 10) / 2 sábados")
	assert.Equal(t, 18, bolillo.Suggested, "sugerido: ceil(15 * 1.15)")
	assert.Equal(t, 2, bolillo.HistoryCount)
	assert.Equal(t, "OK", bolillo.Status)
}

func TestForecast_ProductoSinHistorial_NoData(t *testing.T) {
	uc, _, _ := buildProductionFixture(dec("1000"))

	plan, err := uc.Forecast(context.Background(), testOrgID, targetSaturday)
	require.NoError(t, err)

	concha := plan.Forecasts[1]
	assert.Equal(t, 200, concha.ProductID)
	assert.Equal(t, "NO_DATA", concha.Status, "sin sábados en el historial el estado es NO_DATA")
	assert.Zero(t, concha.Suggested)
}

func TestForecast_InsumosAlcanzan(t *testing.T) {
	uc, _, _ := buildProductionFixture(dec("1000"))

	plan, err := uc.Forecast(context.Background(), testOrgID, targetSaturday)
	require.NoError(t, err)

	assert.True(t, plan.CanProduce)
	require.Len(t, plan.Materials, 1)
	harina := plan.Materials[0]
	assert.True(t, harina.TotalNeeded.Equal(dec("900")), "requerimiento: 18 bolillos * 50 g")
	assert.Equal(t, "OK", harina.Status)
	assert.True(t, harina.Shortfall.Equal(decimal.Zero))
}

func TestForecast_InsumoFaltante_BloqueaPlan(t *testing.T) {
	uc, _, _ := buildProductionFixture(dec("500"))

	plan, err := uc.Forecast(context.Background(), testOrgID, targetSaturday)
	require.NoError(t, err, "el pronóstico con faltante sigue siendo consultable")

	assert.False(t, plan.CanProduce)
	require.Len(t, plan.Materials, 1)
	assert.Equal(t, "FALTA", plan.Materials[0].Status)
	assert.True(t, plan.Materials[0].Shortfall.Equal(dec("400")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Confirm
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirm_DescuentaInsumosYAudita(t *testing.T) {
	uc, tx, ingredientRepo := buildProductionFixture(dec("1000"))

	plan, err := uc.Confirm(context.Background(), testOrgID, targetSaturday)
	require.NoError(t, err)

	assert.True(t, plan.CanProduce)
	assert.Equal(t, 1, tx.runs, "la confirmación corre en una sola transacción")
	assert.True(t, ingredientRepo.stockUpdates[1].Equal(dec("100")),
		"stock nuevo: 1000 - 900 de requerimiento")

	require.Len(t, tx.auditRepo.entries, 1)
	assert.Equal(t, "Producción Confirmada", tx.auditRepo.entries[0].Action)
	assert.Contains(t, tx.auditRepo.entries[0].Details, "2026-09-05")
}

func TestConfirm_InsumoInsuficiente_RetornaError(t *testing.T) {
	uc, tx, ingredientRepo := buildProductionFixture(dec("500"))

	_, err := uc.Confirm(context.Background(), testOrgID, targetSaturday)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 0, tx.runs, "con faltante no debe abrirse transacción")
	assert.Empty(t, ingredientRepo.stockUpdates)
}

func TestConfirm_StockConsumidoEnCarrera_RetornaError(t *testing.T) {
	// El snapshot ve 1000 g pero al bloquear la fila solo quedan 800:
	// la re-verificación dentro de la tx debe abortar todo.
	uc, tx, ingredientRepo := buildProductionFixture(dec("1000"))
	ingredientRepo.lockedStock[1] = dec("800")

	_, err := uc.Confirm(context.Background(), testOrgID, targetSaturday)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 1, tx.runs)
	assert.Empty(t, ingredientRepo.stockUpdates, "la tx abortada no debe dejar stock actualizado")
	assert.Empty(t, tx.auditRepo.entries)
}
