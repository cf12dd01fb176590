package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/amasasystem/amasa-api/internal/application/auth"
	"github.com/amasasystem/amasa-api/internal/application/catalog"
	"github.com/amasasystem/amasa-api/internal/application/checkout"
	"github.com/amasasystem/amasa-api/internal/application/dispatch"
	apppayroll "github.com/amasasystem/amasa-api/internal/application/payroll"
	"github.com/amasasystem/amasa-api/internal/application/production"
	"github.com/amasasystem/amasa-api/internal/application/reporting"
	"github.com/amasasystem/amasa-api/internal/application/settlement"
	"github.com/amasasystem/amasa-api/internal/application/tenant"
	"github.com/amasasystem/amasa-api/internal/application/warehouse"
	"github.com/amasasystem/amasa-api/internal/infrastructure/notify"
	"github.com/amasasystem/amasa-api/internal/infrastructure/postgres"
	httpRouter "github.com/amasasystem/amasa-api/internal/interfaces/http"
	"github.com/amasasystem/amasa-api/pkg/config"
	"github.com/amasasystem/amasa-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	orgRepo := postgres.NewOrganizationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	ingredientRepo := postgres.NewIngredientRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	sellerRepo := postgres.NewSellerRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	auditRepo := postgres.NewAuditLogRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	notifier := notify.NewTextMeBotNotifier(cfg.Notify)

	authUC := auth.NewUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenantUC := tenant.NewUseCase(txRunner, orgRepo, userRepo)
	catalogUC := catalog.NewUseCase(orgRepo, productRepo, ingredientRepo, recipeRepo, sellerRepo)
	productionUC := production.NewUseCase(txRunner, productRepo, movementRepo, recipeRepo, ingredientRepo)
	payrollUC := apppayroll.NewUseCase(sellerRepo, movementRepo)
	reportingUC := reporting.NewUseCase(sellerRepo, movementRepo, auditRepo)
	checkoutUC := checkout.NewUseCase(txRunner, productRepo, sellerRepo)
	dispatchUC := dispatch.NewUseCase(txRunner, productRepo, sellerRepo)
	settlementUC := settlement.NewUseCase(txRunner, sellerRepo, movementRepo, paymentRepo, notifier)
	warehouseUC := warehouse.NewUseCase(txRunner, ingredientRepo, notifier)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AMASA API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		TenantUC:     tenantUC,
		CatalogUC:    catalogUC,
		ProductionUC: productionUC,
		PayrollUC:    payrollUC,
		ReportingUC:  reportingUC,
		CheckoutUC:   checkoutUC,
		DispatchUC:   dispatchUC,
		SettlementUC: settlementUC,
		WarehouseUC:  warehouseUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
