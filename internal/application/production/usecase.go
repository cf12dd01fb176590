// Package production contiene los casos de uso del módulo de producción:
// el pronóstico de cuánto producir y la confirmación que descuenta insumos.
package production

import (
	"context"
	"fmt"
	"time"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/forecast"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// UseCase calcula el plan de producción y lo confirma contra el almacén.
//
// El pronóstico es puro (domain/forecast); aquí solo se arma el snapshot de
// datos y se traduce a DTOs. La confirmación sí muta estado y corre en una
// sola transacción con bloqueo de fila por insumo.
type UseCase struct {
	txRunner       TxRunner
	productRepo    repository.ProductRepository
	movementRepo   repository.MovementRepository
	recipeRepo     repository.RecipeRepository
	ingredientRepo repository.IngredientRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	recipeRepo repository.RecipeRepository,
	ingredientRepo repository.IngredientRepository,
) *UseCase {
	return &UseCase{
		txRunner:       txRunner,
		productRepo:    productRepo,
		movementRepo:   movementRepo,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
	}
}

// snapshot es el conjunto de datos del pronóstico. Se arma completo o no se
// arma: si cualquier consulta falla se aborta en vez de pronosticar con datos
// parciales.
type snapshot struct {
	products    []*entity.Product
	movements   []*entity.Movement
	recipes     []*entity.RecipeLine
	ingredients []*entity.Ingredient
}

// Forecast construye el plan de producción para la fecha objetivo.
func (uc *UseCase) Forecast(ctx context.Context, organizationID string, targetDate time.Time) (*dto.ProductionPlanDTO, error) {
	snap, err := uc.loadSnapshot(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	plan := uc.buildPlan(targetDate, snap)
	return plan, nil
}

// Confirm recalcula el plan para la fecha y, si los insumos alcanzan,
// descuenta el requerimiento de cada uno dentro de una transacción con
// SELECT FOR UPDATE y deja constancia en la bitácora.
//
// El stock se re-verifica fila por fila ya bloqueada: si otro proceso consumió
// insumo entre el cálculo y el commit, la confirmación falla completa.
func (uc *UseCase) Confirm(ctx context.Context, organizationID string, targetDate time.Time) (*dto.ProductionPlanDTO, error) {
	snap, err := uc.loadSnapshot(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	forecasts := forecast.SuggestProduction(targetDate, snap.products, snap.movements)
	materials := forecast.PlanMaterials(forecasts, snap.recipes, snap.ingredients)
	if !materials.CanProduce {
		return nil, domain.ErrInsufficientStock
	}

	err = uc.txRunner.RunProduction(ctx, func(
		ingredientRepo repository.IngredientRepository,
		auditRepo repository.AuditLogRepository,
	) error {
		for _, req := range materials.Items {
			if !req.TotalNeeded.IsPositive() {
				continue
			}
			ing, err := ingredientRepo.GetForUpdate(organizationID, req.IngredientID)
			if err != nil {
				return err
			}
			if ing.CurrentStock.LessThan(req.TotalNeeded) {
				return domain.ErrInsufficientStock
			}
			newStock := ing.CurrentStock.Sub(req.TotalNeeded)
			if err := ingredientRepo.UpdateStock(organizationID, ing.ID, newStock); err != nil {
				return err
			}
		}
		return auditRepo.Create(&entity.AuditLog{
			OrganizationID: organizationID,
			Action:         "Producción Confirmada",
			Details:        fmt.Sprintf("Plan del %s: %d insumos descontados", targetDate.Format("2006-01-02"), len(materials.Items)),
			CreatedAt:      time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.buildPlanFrom(targetDate, forecasts, materials), nil
}

// loadSnapshot trae las cuatro colecciones del pronóstico en paralelo.
func (uc *UseCase) loadSnapshot(ctx context.Context, organizationID string) (*snapshot, error) {
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type movementsResult struct {
		movements []*entity.Movement
		err       error
	}
	type recipesResult struct {
		recipes     []*entity.RecipeLine
		ingredients []*entity.Ingredient
		err         error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)
	recipesCh := make(chan recipesResult, 1)

	go func() {
		products, err := uc.productRepo.ListByOrganization(organizationID)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		movements, err := uc.movementRepo.ListByOrganization(ctx, organizationID)
		movementsCh <- movementsResult{movements, err}
	}()
	go func() {
		recipes, err := uc.recipeRepo.ListByOrganization(organizationID)
		if err != nil {
			recipesCh <- recipesResult{err: err}
			return
		}
		ingredients, err := uc.ingredientRepo.ListByOrganization(organizationID)
		recipesCh <- recipesResult{recipes, ingredients, err}
	}()

	products := <-productsCh
	movements := <-movementsCh
	recipes := <-recipesCh

	if products.err != nil {
		return nil, fmt.Errorf("producción: catálogo: %w", products.err)
	}
	if movements.err != nil {
		return nil, fmt.Errorf("producción: historial: %w", movements.err)
	}
	if recipes.err != nil {
		return nil, fmt.Errorf("producción: recetas e insumos: %w", recipes.err)
	}

	return &snapshot{
		products:    products.products,
		movements:   movements.movements,
		recipes:     recipes.recipes,
		ingredients: recipes.ingredients,
	}, nil
}

func (uc *UseCase) buildPlan(targetDate time.Time, snap *snapshot) *dto.ProductionPlanDTO {
	forecasts := forecast.SuggestProduction(targetDate, snap.products, snap.movements)
	materials := forecast.PlanMaterials(forecasts, snap.recipes, snap.ingredients)
	return uc.buildPlanFrom(targetDate, forecasts, materials)
}

func (uc *UseCase) buildPlanFrom(targetDate time.Time, forecasts []forecast.ProductForecast, materials forecast.MaterialPlan) *dto.ProductionPlanDTO {
	plan := &dto.ProductionPlanDTO{
		TargetDate: targetDate.Format("2006-01-02"),
		Weekday:    weekdayLabel(targetDate),
		CanProduce: materials.CanProduce,
	}
	plan.Forecasts = make([]dto.ProductForecastDTO, 0, len(forecasts))
	for _, f := range forecasts {
		plan.Forecasts = append(plan.Forecasts, dto.ProductForecastDTO{
			ProductID:    f.ProductID,
			ProductName:  f.ProductName,
			AvgSale:      f.AvgSale,
			Suggested:    f.Suggested,
			HistoryCount: f.HistoryCount,
			Status:       f.Status,
		})
	}
	plan.Materials = make([]dto.MaterialRequirementDTO, 0, len(materials.Items))
	for _, req := range materials.Items {
		displayQty, displayUnit := entity.DisplayQuantity(req.TotalNeeded, req.Unit)
		plan.Materials = append(plan.Materials, dto.MaterialRequirementDTO{
			IngredientID:  req.IngredientID,
			Name:          req.Name,
			Unit:          req.Unit,
			TotalNeeded:   req.TotalNeeded,
			CurrentStock:  req.CurrentStock,
			Shortfall:     req.Shortfall(),
			Status:        req.Status,
			DisplayNeeded: displayQty,
			DisplayUnit:   displayUnit,
		})
	}
	return plan
}

// weekdayLabel devuelve el día de la semana legible, ej: "Sábado".
func weekdayLabel(t time.Time) string {
	days := [...]string{
		"Domingo", "Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado",
	}
	return days[t.Weekday()]
}
