// Package catalog contiene los casos de uso de administración del catálogo:
// productos, insumos, recetas y vendedores.
package catalog

import (
	"time"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase administra el catálogo de la organización.
type UseCase struct {
	orgRepo        repository.OrganizationRepository
	productRepo    repository.ProductRepository
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
	sellerRepo     repository.SellerRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	orgRepo repository.OrganizationRepository,
	productRepo repository.ProductRepository,
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	sellerRepo repository.SellerRepository,
) *UseCase {
	return &UseCase{
		orgRepo:        orgRepo,
		productRepo:    productRepo,
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
		sellerRepo:     sellerRepo,
	}
}

// ── Productos ──────────────────────────────────────────────────────────────

// CreateProduct asigna el siguiente ID libre dentro del rango de la familia
// y persiste el producto. Devuelve ErrFamilyFull si el rango se agotó.
func (uc *UseCase) CreateProduct(organizationID string, in dto.CreateProductRequest) (*dto.ProductDTO, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}

	var family *entity.ProductFamily
	for _, f := range entity.FamiliesForBusiness(org.BusinessType) {
		if f.Label == in.Family {
			fam := f
			family = &fam
			break
		}
	}
	if family == nil {
		return nil, domain.ErrInvalidInput
	}

	maxUsed, err := uc.productRepo.MaxIDInRange(organizationID, family.Base, family.Max)
	if err != nil {
		return nil, err
	}
	nextID := family.Base
	if maxUsed > 0 {
		nextID = maxUsed + 1
	}
	if nextID > family.Max {
		return nil, domain.ErrFamilyFull
	}

	product := &entity.Product{
		ID:             nextID,
		OrganizationID: organizationID,
		Name:           in.Name,
		Price:          in.Price,
		CreatedAt:      time.Now(),
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return uc.toProductDTO(org.BusinessType, product), nil
}

// UpdateProduct modifica nombre y precio. El precio nuevo aplica de inmediato
// a nómina y reportes porque los movimientos no congelan precio.
func (uc *UseCase) UpdateProduct(organizationID string, id int, in dto.UpdateProductRequest) (*dto.ProductDTO, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(organizationID, id)
	if err != nil {
		return nil, err
	}
	product.Name = in.Name
	product.Price = in.Price
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return uc.toProductDTO(org.BusinessType, product), nil
}

// ListProducts devuelve el catálogo completo con su familia resuelta.
func (uc *UseCase) ListProducts(organizationID string) ([]dto.ProductDTO, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, *uc.toProductDTO(org.BusinessType, p))
	}
	return out, nil
}

// DeleteProduct elimina el producto y sus líneas de receta. El historial de
// movimientos del producto se conserva: el ledger nunca se toca.
func (uc *UseCase) DeleteProduct(organizationID string, id int) error {
	lines, err := uc.recipeRepo.ListByProduct(organizationID, id)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := uc.recipeRepo.Delete(organizationID, line.ID); err != nil {
			return err
		}
	}
	return uc.productRepo.Delete(organizationID, id)
}

func (uc *UseCase) toProductDTO(businessType string, p *entity.Product) *dto.ProductDTO {
	familyLabel := ""
	if family, ok := entity.FamilyFor(businessType, p.ID); ok {
		familyLabel = family.Label
	}
	return &dto.ProductDTO{
		ID:     p.ID,
		Name:   p.Name,
		Family: familyLabel,
		Price:  p.Price,
	}
}

// ── Insumos ────────────────────────────────────────────────────────────────

// CreateIngredient da de alta un insumo con su stock inicial en unidad base.
func (uc *UseCase) CreateIngredient(organizationID string, in dto.CreateIngredientRequest) (*dto.IngredientDTO, error) {
	ing := &entity.Ingredient{
		OrganizationID: organizationID,
		Name:           in.Name,
		Unit:           in.Unit,
		CurrentStock:   in.InitialStock,
		CreatedAt:      time.Now(),
	}
	if err := uc.ingredientRepo.Create(ing); err != nil {
		return nil, err
	}
	return toIngredientDTO(ing), nil
}

// ListIngredients devuelve los insumos con presentación normalizada.
func (uc *UseCase) ListIngredients(organizationID string) ([]dto.IngredientDTO, error) {
	ingredients, err := uc.ingredientRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.IngredientDTO, 0, len(ingredients))
	for _, ing := range ingredients {
		out = append(out, *toIngredientDTO(ing))
	}
	return out, nil
}

// DeleteIngredient elimina el insumo si ninguna receta lo usa.
func (uc *UseCase) DeleteIngredient(organizationID string, id int) error {
	lines, err := uc.recipeRepo.ListByOrganization(organizationID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if line.IngredientID == id {
			return domain.ErrInvalidInput
		}
	}
	return uc.ingredientRepo.Delete(organizationID, id)
}

func toIngredientDTO(ing *entity.Ingredient) *dto.IngredientDTO {
	displayQty, displayUnit := entity.DisplayQuantity(ing.CurrentStock, ing.Unit)
	return &dto.IngredientDTO{
		ID:           ing.ID,
		Name:         ing.Name,
		Unit:         ing.Unit,
		CurrentStock: ing.CurrentStock,
		DisplayStock: displayQty,
		DisplayUnit:  displayUnit,
	}
}

// ── Recetas ────────────────────────────────────────────────────────────────

// SetRecipe reemplaza la receta completa de un producto: borra las líneas
// existentes e inserta las nuevas. Cantidades no positivas se rechazan.
func (uc *UseCase) SetRecipe(organizationID string, productID int, in dto.SetRecipeRequest) error {
	if _, err := uc.productRepo.GetByID(organizationID, productID); err != nil {
		return err
	}
	for _, line := range in.Lines {
		if !line.Quantity.IsPositive() {
			return domain.ErrInvalidInput
		}
		if _, err := uc.ingredientRepo.GetByID(organizationID, line.IngredientID); err != nil {
			return err
		}
	}

	existing, err := uc.recipeRepo.ListByProduct(organizationID, productID)
	if err != nil {
		return err
	}
	for _, line := range existing {
		if err := uc.recipeRepo.Delete(organizationID, line.ID); err != nil {
			return err
		}
	}
	for _, line := range in.Lines {
		if err := uc.recipeRepo.Create(&entity.RecipeLine{
			OrganizationID: organizationID,
			ProductID:      productID,
			IngredientID:   line.IngredientID,
			Quantity:       line.Quantity,
		}); err != nil {
			return err
		}
	}
	return nil
}

// GetRecipe devuelve la receta de un producto con nombres de insumo resueltos.
func (uc *UseCase) GetRecipe(organizationID string, productID int) ([]dto.RecipeLineDTO, error) {
	lines, err := uc.recipeRepo.ListByProduct(organizationID, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RecipeLineDTO, 0, len(lines))
	for _, line := range lines {
		ing, err := uc.ingredientRepo.GetByID(organizationID, line.IngredientID)
		if err != nil {
			return nil, err
		}
		out = append(out, dto.RecipeLineDTO{
			IngredientID: line.IngredientID,
			Name:         ing.Name,
			Unit:         ing.Unit,
			Quantity:     line.Quantity,
		})
	}
	return out, nil
}

// ── Vendedores ─────────────────────────────────────────────────────────────

// CreateSeller da de alta un vendedor sin esquema de comisión (sueldo fijo).
func (uc *UseCase) CreateSeller(organizationID string, in dto.CreateSellerRequest) (*dto.SellerDTO, error) {
	seller := &entity.Seller{
		OrganizationID: organizationID,
		Name:           in.Name,
		RouteName:      in.RouteName,
		CreatedAt:      time.Now(),
	}
	if err := uc.sellerRepo.Create(seller); err != nil {
		return nil, err
	}
	return toSellerDTO(seller), nil
}

// UpdateCommission configura el esquema de pago del vendedor.
func (uc *UseCase) UpdateCommission(organizationID string, id int, in dto.UpdateCommissionRequest) (*dto.SellerDTO, error) {
	seller, err := uc.sellerRepo.GetByID(organizationID, id)
	if err != nil {
		return nil, err
	}
	seller.CommissionActive = in.CommissionActive
	seller.BaseSalary = in.BaseSalary
	seller.CommissionRate = in.CommissionRate
	seller.BonusThreshold = in.BonusThreshold
	seller.BonusAmount = in.BonusAmount
	if err := uc.sellerRepo.UpdateCommission(seller); err != nil {
		return nil, err
	}
	return toSellerDTO(seller), nil
}

// ListSellers devuelve el roster con saldos.
func (uc *UseCase) ListSellers(organizationID string) ([]dto.SellerDTO, error) {
	sellers, err := uc.sellerRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SellerDTO, 0, len(sellers))
	for _, s := range sellers {
		out = append(out, *toSellerDTO(s))
	}
	return out, nil
}

// DeleteSeller elimina el vendedor del roster. Sus movimientos históricos se
// conservan y el reporte diario lo materializa como "Ex-Vendedor".
func (uc *UseCase) DeleteSeller(organizationID string, id int) error {
	return uc.sellerRepo.Delete(organizationID, id)
}

func toSellerDTO(s *entity.Seller) *dto.SellerDTO {
	return &dto.SellerDTO{
		ID:               s.ID,
		Name:             s.Name,
		RouteName:        s.RouteName,
		Balance:          s.Balance,
		CommissionActive: s.CommissionActive,
		BaseSalary:       s.BaseSalary,
		CommissionRate:   s.CommissionRate,
		BonusThreshold:   s.BonusThreshold,
		BonusAmount:      s.BonusAmount,
	}
}
