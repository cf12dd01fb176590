package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/amasasystem/amasa-api/internal/application/checkout"
	"github.com/amasasystem/amasa-api/internal/application/dispatch"
	"github.com/amasasystem/amasa-api/internal/application/production"
	"github.com/amasasystem/amasa-api/internal/application/settlement"
	"github.com/amasasystem/amasa-api/internal/application/tenant"
	"github.com/amasasystem/amasa-api/internal/application/warehouse"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

// El runner cubre los contratos transaccionales de todos los casos de uso.
var (
	_ production.TxRunner = (*TxRunner)(nil)
	_ warehouse.TxRunner  = (*TxRunner)(nil)
	_ settlement.TxRunner = (*TxRunner)(nil)
	_ checkout.TxRunner   = (*TxRunner)(nil)
	_ dispatch.TxRunner   = (*TxRunner)(nil)
	_ tenant.TxRunner     = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProduction inicia una transacción con repos de insumos y bitácora
// (confirmación de producción y entradas de almacén).
func (r *TxRunner) RunProduction(ctx context.Context, fn func(
	ingredientRepo repository.IngredientRepository,
	auditRepo repository.AuditLogRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewIngredientRepository(tx), NewAuditLogRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSales inicia una transacción con los repos del flujo de venta
// (mostrador, despacho y corte de caja).
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	movementRepo repository.MovementRepository,
	paymentRepo repository.PaymentRepository,
	sellerRepo repository.SellerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovementRepository(tx), NewPaymentRepository(tx), NewSellerRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunProvision inicia una transacción con todos los repos del alta de tenant.
func (r *TxRunner) RunProvision(ctx context.Context, fn func(
	orgRepo repository.OrganizationRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	sellerRepo repository.SellerRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewOrganizationRepository(tx),
		NewUserRepository(tx),
		NewProductRepository(tx),
		NewIngredientRepository(tx),
		NewRecipeRepository(tx),
		NewSellerRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
