package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amasasystem/amasa-api/internal/application/catalog"
	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

const testOrgID = "org-catalogo-test"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeOrgRepo struct {
	org *entity.Organization
}

func (r *fakeOrgRepo) Create(_ *entity.Organization) error { return nil }
func (r *fakeOrgRepo) GetByID(_ string) (*entity.Organization, error) {
	if r.org == nil {
		return nil, domain.ErrNotFound
	}
	return r.org, nil
}
func (r *fakeOrgRepo) List(_, _ int) ([]*entity.Organization, error) { return nil, nil }
func (r *fakeOrgRepo) UpdatePlan(_, _ string) error                  { return nil }

type fakeProductRepo struct {
	products map[int]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[int]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(_ string, id int) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (r *fakeProductRepo) ListByOrganization(_ string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}
func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(_ string, id int) error  { delete(r.products, id); return nil }
func (r *fakeProductRepo) MaxIDInRange(_ string, base, max int) (int, error) {
	maxUsed := 0
	for id := range r.products {
		if id >= base && id <= max && id > maxUsed {
			maxUsed = id
		}
	}
	return maxUsed, nil
}

type fakeIngredientRepo struct {
	ingredients map[int]*entity.Ingredient
	nextID      int
	deleted     []int
}

func newFakeIngredientRepo(ingredients ...*entity.Ingredient) *fakeIngredientRepo {
	r := &fakeIngredientRepo{ingredients: make(map[int]*entity.Ingredient), nextID: 1}
	for _, ing := range ingredients {
		r.ingredients[ing.ID] = ing
		if ing.ID >= r.nextID {
			r.nextID = ing.ID + 1
		}
	}
	return r
}

func (r *fakeIngredientRepo) Create(ing *entity.Ingredient) error {
	ing.ID = r.nextID
	r.nextID++
	r.ingredients[ing.ID] = ing
	return nil
}
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
func (r *fakeIngredientRepo) GetForUpdate(orgID string, id int) (*entity.Ingredient, error) {
	return r.GetByID(orgID, id)
}
func (r *fakeIngredientRepo) UpdateStock(_ string, _ int, _ decimal.Decimal) error { return nil }
func (r *fakeIngredientRepo) Delete(_ string, id int) error {
	delete(r.ingredients, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type fakeRecipeRepo struct {
	lines  map[int]*entity.RecipeLine
	nextID int
}

func newFakeRecipeRepo(lines ...*entity.RecipeLine) *fakeRecipeRepo {
	r := &fakeRecipeRepo{lines: make(map[int]*entity.RecipeLine), nextID: 1}
	for _, line := range lines {
		r.lines[line.ID] = line
		if line.ID >= r.nextID {
			r.nextID = line.ID + 1
		}
	}
	return r
}

func (r *fakeRecipeRepo) Create(line *entity.RecipeLine) error {
	line.ID = r.nextID
	r.nextID++
	r.lines[line.ID] = line
	return nil
}
func (r *fakeRecipeRepo) ListByProduct(_ string, productID int) ([]*entity.RecipeLine, error) {
	out := make([]*entity.RecipeLine, 0)
	for _, line := range r.lines {
		if line.ProductID == productID {
			out = append(out, line)
		}
	}
	return out, nil
}
func (r *fakeRecipeRepo) ListByOrganization(_ string) ([]*entity.RecipeLine, error) {
	out := make([]*entity.RecipeLine, 0, len(r.lines))
	for _, line := range r.lines {
		out = append(out, line)
	}
	return out, nil
}
func (r *fakeRecipeRepo) Delete(_ string, id int) error { delete(r.lines, id); return nil }

type fakeSellerRepo struct {
	sellers map[int]*entity.Seller
	nextID  int
}

func newFakeSellerRepo() *fakeSellerRepo {
	return &fakeSellerRepo{sellers: make(map[int]*entity.Seller), nextID: 1}
}

func (r *fakeSellerRepo) Create(s *entity.Seller) error {
	s.ID = r.nextID
	r.nextID++
	r.sellers[s.ID] = s
	return nil
}
func (r *fakeSellerRepo) GetByID(_ string, id int) (*entity.Seller, error) {
	s, ok := r.sellers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (r *fakeSellerRepo) ListByOrganization(_ string) ([]*entity.Seller, error) {
	out := make([]*entity.Seller, 0, len(r.sellers))
	for _, s := range r.sellers {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSellerRepo) UpdateCommission(s *entity.Seller) error { r.sellers[s.ID] = s; return nil }
func (r *fakeSellerRepo) UpdateBalance(_ string, _ int, _ decimal.Decimal) error {
	return nil
}
func (r *fakeSellerRepo) Delete(_ string, id int) error { delete(r.sellers, id); return nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc             *catalog.UseCase
	productRepo    *fakeProductRepo
	ingredientRepo *fakeIngredientRepo
	recipeRepo     *fakeRecipeRepo
	sellerRepo     *fakeSellerRepo
}

func buildFixture(products ...*entity.Product) *fixture {
	f := &fixture{
		productRepo:    newFakeProductRepo(products...),
		ingredientRepo: newFakeIngredientRepo(),
		recipeRepo:     newFakeRecipeRepo(),
		sellerRepo:     newFakeSellerRepo(),
	}
	orgRepo := &fakeOrgRepo{org: &entity.Organization{
		ID:           testOrgID,
		Name:         "Panadería La Espiga",
		BusinessType: entity.BusinessPanaderia,
		Plan:         entity.PlanBasic,
	}}
	f.uc = catalog.NewUseCase(orgRepo, f.productRepo, f.ingredientRepo, f.recipeRepo, f.sellerRepo)
	return f
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_FamiliaVacia_AsignaBaseDelRango(t *testing.T) {
	f := buildFixture()

	p, err := f.uc.CreateProduct(testOrgID, dto.CreateProductRequest{
		Name: "Bolillo", Family: "Pan Salado", Price: dec("2.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, 100, p.ID, "la familia Pan Salado arranca en 100")
	assert.Equal(t, "Pan Salado", p.Family)
}

func TestCreateProduct_FamiliaConProductos_AsignaSiguienteID(t *testing.T) {
	f := buildFixture(
		&entity.Product{ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
		&entity.Product{ID: 101, OrganizationID: testOrgID, Name: "Telera", Price: dec("3")},
	)

	p, err := f.uc.CreateProduct(testOrgID, dto.CreateProductRequest{
		Name: "Birote", Family: "Pan Salado", Price: dec("4"),
	})
	require.NoError(t, err)
	assert.Equal(t, 102, p.ID, "siguiente ID libre después de 101")
}

func TestCreateProduct_FamiliaLlena_RetornaError(t *testing.T) {
	f := buildFixture(
		&entity.Product{ID: 199, OrganizationID: testOrgID, Name: "Último Pan", Price: dec("5")},
	)

	_, err := f.uc.CreateProduct(testOrgID, dto.CreateProductRequest{
		Name: "Uno Más", Family: "Pan Salado", Price: dec("5"),
	})
	assert.ErrorIs(t, err, domain.ErrFamilyFull, "el rango 100-199 agotado debe rechazar el alta")
}

func TestCreateProduct_FamiliaDesconocida_RetornaError(t *testing.T) {
	f := buildFixture()

	_, err := f.uc.CreateProduct(testOrgID, dto.CreateProductRequest{
		Name: "Tortilla", Family: "Tortilla", Price: dec("1"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una panadería no tiene la familia Tortilla")
}

func TestDeleteProduct_BorraTambienSuReceta(t *testing.T) {
	f := buildFixture(
		&entity.Product{ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
	)
	require.NoError(t, f.recipeRepo.Create(&entity.RecipeLine{
		OrganizationID: testOrgID, ProductID: 100, IngredientID: 1, Quantity: dec("50"),
	}))

	require.NoError(t, f.uc.DeleteProduct(testOrgID, 100))

	assert.Empty(t, f.productRepo.products)
	assert.Empty(t, f.recipeRepo.lines, "las líneas de receta del producto deben borrarse con él")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Insumos
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateIngredient_PresentacionNormalizada(t *testing.T) {
	f := buildFixture()

	ing, err := f.uc.CreateIngredient(testOrgID, dto.CreateIngredientRequest{
		Name: "Harina", Unit: entity.UnitGramos, InitialStock: dec("25000"),
	})
	require.NoError(t, err)

	assert.True(t, ing.CurrentStock.Equal(dec("25000")), "el stock se guarda en gramos")
	assert.True(t, ing.DisplayStock.Equal(dec("25")), "25000 g se presentan como 25 kg")
	assert.Equal(t, "kg", ing.DisplayUnit)
}

func TestDeleteIngredient_UsadoEnReceta_Rechazado(t *testing.T) {
	f := buildFixture()
	ing, err := f.uc.CreateIngredient(testOrgID, dto.CreateIngredientRequest{
		Name: "Harina", Unit: entity.UnitGramos, InitialStock: dec("1000"),
	})
	require.NoError(t, err)
	require.NoError(t, f.recipeRepo.Create(&entity.RecipeLine{
		OrganizationID: testOrgID, ProductID: 100, IngredientID: ing.ID, Quantity: dec("50"),
	}))

	err = f.uc.DeleteIngredient(testOrgID, ing.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un insumo usado por una receta no debe poder borrarse")
	assert.Empty(t, f.ingredientRepo.deleted)
}

func TestDeleteIngredient_SinRecetas_SeBorra(t *testing.T) {
	f := buildFixture()
	ing, err := f.uc.CreateIngredient(testOrgID, dto.CreateIngredientRequest{
		Name: "Levadura", Unit: entity.UnitGramos, InitialStock: dec("500"),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.DeleteIngredient(testOrgID, ing.ID))
	assert.Equal(t, []int{ing.ID}, f.ingredientRepo.deleted)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Recetas
// ──────────────────────────────────────────────────────────────────────────────

func TestSetRecipe_ReemplazaLineasExistentes(t *testing.T) {
	f := buildFixture(
		&entity.Product{ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
	)
	harina, err := f.uc.CreateIngredient(testOrgID, dto.CreateIngredientRequest{
		Name: "Harina", Unit: entity.UnitGramos, InitialStock: dec("1000"),
	})
	require.NoError(t, err)
	sal, err := f.uc.CreateIngredient(testOrgID, dto.CreateIngredientRequest{
		Name: "Sal", Unit: entity.UnitGramos, InitialStock: dec("500"),
	})
	require.NoError(t, err)

	// Receta inicial solo con harina
	require.NoError(t, f.uc.SetRecipe(testOrgID, 100, dto.SetRecipeRequest{
		Lines: []dto.RecipeLineRequest{{IngredientID: harina.ID, Quantity: dec("60")}},
	}))
	// Reemplazo completo: harina ajustada + sal
	require.NoError(t, f.uc.SetRecipe(testOrgID, 100, dto.SetRecipeRequest{
		Lines: []dto.RecipeLineRequest{
			{IngredientID: harina.ID, Quantity: dec("50")},
			{IngredientID: sal.ID, Quantity: dec("2")},
		},
	}))

	recipe, err := f.uc.GetRecipe(testOrgID, 100)
	require.NoError(t, err)
	require.Len(t, recipe, 2, "la receta anterior debe quedar reemplazada, no acumulada")
}

func TestSetRecipe_CantidadNoPositiva_Rechazada(t *testing.T) {
	f := buildFixture(
		&entity.Product{ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
	)
	harina, err := f.uc.CreateIngredient(testOrgID, dto.CreateIngredientRequest{
		Name: "Harina", Unit: entity.UnitGramos, InitialStock: dec("1000"),
	})
	require.NoError(t, err)

	err = f.uc.SetRecipe(testOrgID, 100, dto.SetRecipeRequest{
		Lines: []dto.RecipeLineRequest{{IngredientID: harina.ID, Quantity: decimal.Zero}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSetRecipe_InsumoInexistente_Rechazada(t *testing.T) {
	f := buildFixture(
		&entity.Product{ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
	)

	err := f.uc.SetRecipe(testOrgID, 100, dto.SetRecipeRequest{
		Lines: []dto.RecipeLineRequest{{IngredientID: 99, Quantity: dec("10")}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Vendedores
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateCommission_ConfiguraEsquema(t *testing.T) {
	f := buildFixture()
	seller, err := f.uc.CreateSeller(testOrgID, dto.CreateSellerRequest{
		Name: "Don Chuy", RouteName: "Ruta Centro",
	})
	require.NoError(t, err)
	assert.False(t, seller.CommissionActive, "el alta es de sueldo fijo por omisión")

	updated, err := f.uc.UpdateCommission(testOrgID, seller.ID, dto.UpdateCommissionRequest{
		CommissionActive: true,
		BaseSalary:       dec("1500"),
		CommissionRate:   dec("10"),
		BonusThreshold:   dec("5"),
		BonusAmount:      dec("200"),
	})
	require.NoError(t, err)

	assert.True(t, updated.CommissionActive)
	assert.True(t, updated.CommissionRate.Equal(dec("10")))
	assert.True(t, updated.BonusAmount.Equal(dec("200")))
}
