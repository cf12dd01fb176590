// seedtenant da de alta un tenant de demostración directamente contra la BD:
// organización, admin y catálogo plantilla del giro.
//
// Uso: go run ./cmd/seedtenant -name "Panadería La Espiga" -type panaderia \
//        -email admin@espiga.mx -admin "Dueño" -password secreto123 -pin 1234
//
// Con -list imprime los tenants existentes en lugar de crear uno.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/application/tenant"
	"github.com/amasasystem/amasa-api/internal/infrastructure/postgres"
	"github.com/amasasystem/amasa-api/pkg/config"
	"github.com/amasasystem/amasa-api/pkg/validator"
)

func main() {
	name := flag.String("name", "", "nombre del negocio")
	businessType := flag.String("type", "panaderia", "giro: panaderia | tortilleria | pizzeria")
	plan := flag.String("plan", "basic", "plan: basic | pro")
	email := flag.String("email", "", "email del administrador")
	adminName := flag.String("admin", "", "nombre del administrador")
	password := flag.String("password", "", "password del administrador (mín. 8)")
	pin := flag.String("pin", "", "PIN de administrador (4 dígitos)")
	list := flag.Bool("list", false, "listar tenants existentes en lugar de crear uno")
	limit := flag.Int("limit", 20, "máximo de tenants a listar")
	offset := flag.Int("offset", 0, "desplazamiento del listado")
	flag.Parse()

	if *list {
		listTenants(*limit, *offset)
		return
	}

	req := dto.ProvisionTenantRequest{
		Name:         *name,
		BusinessType: *businessType,
		Plan:         *plan,
		AdminEmail:   *email,
		AdminName:    *adminName,
		Password:     *password,
		AdminPIN:     *pin,
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		fmt.Fprintf(os.Stderr, "Parámetros inválidos: %s\n", validator.Describe(errs))
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := tenant.NewUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewOrganizationRepository(pool),
		postgres.NewUserRepository(pool),
	)
	resp, err := uc.Provision(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Provisionar tenant: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Tenant creado: %s\n", resp.OrganizationID)
	fmt.Printf("  admin:       %s (%s)\n", resp.AdminUserID, *email)
	fmt.Printf("  productos:   %d\n", resp.Products)
	fmt.Printf("  insumos:     %d\n", resp.Ingredients)
	fmt.Printf("  vendedores:  %d\n", resp.Sellers)
}

func listTenants(limit, offset int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	uc := tenant.NewUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewOrganizationRepository(pool),
		postgres.NewUserRepository(pool),
	)
	orgs, err := uc.ListOrganizations(dto.PageRequest{Limit: limit, Offset: offset})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar tenants: %v\n", err)
		os.Exit(1)
	}

	for _, org := range orgs {
		fmt.Printf("%s  %-12s %-6s %s\n", org.ID, org.BusinessType, org.Plan, org.Name)
	}
	fmt.Printf("Total: %d\n", len(orgs))
}
