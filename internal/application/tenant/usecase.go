// Package tenant contiene el alta y administración de organizaciones
// (tenants): cada negocio nace con su usuario administrador y un catálogo
// plantilla según el giro.
package tenant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase provisiona y administra tenants.
type UseCase struct {
	txRunner TxRunner
	orgRepo  repository.OrganizationRepository
	userRepo repository.UserRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, orgRepo repository.OrganizationRepository, userRepo repository.UserRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orgRepo: orgRepo, userRepo: userRepo}
}

// Provision crea la organización completa en una sola transacción:
// organización, admin con password hasheado y el catálogo plantilla del giro
// (productos con numeración de familia, insumos, recetas y vendedores).
func (uc *UseCase) Provision(ctx context.Context, in dto.ProvisionTenantRequest) (*dto.ProvisionTenantResponse, error) {
	existing, err := uc.userRepo.FindByEmail(in.AdminEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	plan := in.Plan
	if plan == "" {
		plan = entity.PlanBasic
	}
	now := time.Now()
	org := &entity.Organization{
		ID:           uuid.New().String(),
		Name:         in.Name,
		BusinessType: in.BusinessType,
		Plan:         plan,
		AdminPIN:     in.AdminPIN,
		TicketHeader: in.Name,
		TicketFooter: "¡Gracias por su compra!",
		CreatedAt:    now,
	}
	admin := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: org.ID,
		Email:          in.AdminEmail,
		PasswordHash:   string(hash),
		FullName:       in.AdminName,
		Role:           entity.RoleAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	tpl := templateFor(in.BusinessType)
	resp := &dto.ProvisionTenantResponse{
		OrganizationID: org.ID,
		AdminUserID:    admin.ID,
	}

	err = uc.txRunner.RunProvision(ctx, func(
		orgRepo repository.OrganizationRepository,
		userRepo repository.UserRepository,
		productRepo repository.ProductRepository,
		ingredientRepo repository.IngredientRepository,
		recipeRepo repository.RecipeRepository,
		sellerRepo repository.SellerRepository,
	) error {
		if err := orgRepo.Create(org); err != nil {
			return err
		}
		if err := userRepo.Create(admin); err != nil {
			return err
		}

		for _, seed := range tpl.products {
			if err := productRepo.Create(&entity.Product{
				ID:             seed.id,
				OrganizationID: org.ID,
				Name:           seed.name,
				Price:          mustDecimal(seed.price),
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}

		// Los IDs de insumo los asigna la BD; se indexan por nombre para
		// resolver las recetas plantilla.
		ingredientIDs := make(map[string]int, len(tpl.ingredients))
		for _, seed := range tpl.ingredients {
			ing := &entity.Ingredient{
				OrganizationID: org.ID,
				Name:           seed.name,
				Unit:           seed.unit,
				CurrentStock:   mustDecimal(seed.stock),
				CreatedAt:      now,
			}
			if err := ingredientRepo.Create(ing); err != nil {
				return err
			}
			ingredientIDs[seed.name] = ing.ID
		}

		for _, seed := range tpl.recipes {
			ingID, ok := ingredientIDs[seed.ingredient]
			if !ok {
				continue
			}
			if err := recipeRepo.Create(&entity.RecipeLine{
				OrganizationID: org.ID,
				ProductID:      seed.productID,
				IngredientID:   ingID,
				Quantity:       mustDecimal(seed.quantity),
			}); err != nil {
				return err
			}
		}

		for _, seed := range tpl.sellers {
			if err := sellerRepo.Create(&entity.Seller{
				OrganizationID: org.ID,
				Name:           seed.name,
				RouteName:      seed.route,
				CreatedAt:      now,
			}); err != nil {
				return err
			}
		}

		resp.Products = len(tpl.products)
		resp.Ingredients = len(tpl.ingredients)
		resp.Sellers = len(tpl.sellers)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetOrganization devuelve los datos visibles del tenant.
func (uc *UseCase) GetOrganization(organizationID string) (*dto.OrganizationDTO, error) {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return nil, err
	}
	return &dto.OrganizationDTO{
		ID:           org.ID,
		Name:         org.Name,
		BusinessType: org.BusinessType,
		Plan:         org.Plan,
		TicketHeader: org.TicketHeader,
		TicketFooter: org.TicketFooter,
	}, nil
}

// ListOrganizations devuelve tenants paginados. Uso administrativo (CLI de
// operación), no se expone en la API del punto de venta.
func (uc *UseCase) ListOrganizations(page dto.PageRequest) ([]dto.OrganizationDTO, error) {
	page.DefaultPage()
	orgs, err := uc.orgRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrganizationDTO, 0, len(orgs))
	for _, org := range orgs {
		out = append(out, dto.OrganizationDTO{
			ID:           org.ID,
			Name:         org.Name,
			BusinessType: org.BusinessType,
			Plan:         org.Plan,
			TicketHeader: org.TicketHeader,
			TicketFooter: org.TicketFooter,
		})
	}
	return out, nil
}

// UpdatePlan cambia el plan de la organización (basic ↔ pro).
func (uc *UseCase) UpdatePlan(organizationID, plan string) error {
	if plan != entity.PlanBasic && plan != entity.PlanPro {
		return domain.ErrInvalidInput
	}
	if _, err := uc.orgRepo.GetByID(organizationID); err != nil {
		return err
	}
	return uc.orgRepo.UpdatePlan(organizationID, plan)
}
