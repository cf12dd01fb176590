// Package http expone la API sobre Fiber: routing, middlewares y handlers.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amasasystem/amasa-api/internal/application/auth"
	"github.com/amasasystem/amasa-api/internal/application/catalog"
	"github.com/amasasystem/amasa-api/internal/application/checkout"
	"github.com/amasasystem/amasa-api/internal/application/dispatch"
	"github.com/amasasystem/amasa-api/internal/application/payroll"
	"github.com/amasasystem/amasa-api/internal/application/production"
	"github.com/amasasystem/amasa-api/internal/application/reporting"
	"github.com/amasasystem/amasa-api/internal/application/settlement"
	"github.com/amasasystem/amasa-api/internal/application/tenant"
	"github.com/amasasystem/amasa-api/internal/application/warehouse"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.UseCase
	TenantUC     *tenant.UseCase
	CatalogUC    *catalog.UseCase
	ProductionUC *production.UseCase
	PayrollUC    *payroll.UseCase
	ReportingUC  *reporting.UseCase
	CheckoutUC   *checkout.UseCase
	DispatchUC   *dispatch.UseCase
	SettlementUC *settlement.UseCase
	WarehouseUC  *warehouse.UseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC)
	tenantHandler := NewTenantHandler(deps.TenantUC)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	productionHandler := NewProductionHandler(deps.ProductionUC)
	payrollHandler := NewPayrollHandler(deps.PayrollUC)
	reportHandler := NewReportHandler(deps.ReportingUC)
	salesHandler := NewSalesHandler(deps.CheckoutUC, deps.DispatchUC, deps.SettlementUC)
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)

	// Público
	api.Post("/auth/login", authHandler.Login)
	api.Post("/tenants", tenantHandler.Provision)

	// Protegido (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	requireAdmin := RequireRole(entity.RoleAdmin)
	requirePro := RequirePlan(entity.PlanPro, deps.TenantUC)

	protected.Post("/auth/register", requireAdmin, authHandler.Register)
	protected.Post("/auth/verify-pin", authHandler.VerifyPIN)

	protected.Get("/organization", tenantHandler.GetOrganization)
	protected.Put("/organization/plan", requireAdmin, tenantHandler.UpdatePlan)

	// Catálogo: lectura para todos, escritura solo admin
	protected.Get("/products", catalogHandler.ListProducts)
	protected.Post("/products", requireAdmin, catalogHandler.CreateProduct)
	protected.Put("/products/:id", requireAdmin, catalogHandler.UpdateProduct)
	protected.Delete("/products/:id", requireAdmin, catalogHandler.DeleteProduct)
	protected.Get("/products/:id/recipe", catalogHandler.GetRecipe)
	protected.Put("/products/:id/recipe", requireAdmin, catalogHandler.SetRecipe)

	protected.Get("/ingredients", catalogHandler.ListIngredients)
	protected.Post("/ingredients", requireAdmin, catalogHandler.CreateIngredient)
	protected.Delete("/ingredients/:id", requireAdmin, catalogHandler.DeleteIngredient)

	protected.Get("/sellers", catalogHandler.ListSellers)
	protected.Post("/sellers", requireAdmin, catalogHandler.CreateSeller)
	protected.Put("/sellers/:id/commission", requireAdmin, catalogHandler.UpdateCommission)
	protected.Delete("/sellers/:id", requireAdmin, catalogHandler.DeleteSeller)

	// Flujo de venta
	protected.Post("/checkout", salesHandler.Checkout)
	protected.Post("/dispatch", salesHandler.Dispatch)
	protected.Get("/settlement/:seller_id", salesHandler.SettlementPreview)
	protected.Post("/settlement", salesHandler.Settle)

	// Almacén
	protected.Post("/warehouse/stock", requireAdmin, warehouseHandler.AddStock)

	// Producción y nómina: funciones del plan pro
	protected.Get("/production/forecast", requirePro, productionHandler.Forecast)
	protected.Post("/production/confirm", requirePro, requireAdmin, productionHandler.Confirm)
	protected.Get("/payroll", requirePro, requireAdmin, payrollHandler.Compute)

	// Reportes
	protected.Get("/reports/daily", reportHandler.Daily)
	protected.Get("/reports/activity", requireAdmin, reportHandler.Activity)
}
