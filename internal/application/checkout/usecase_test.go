package checkout_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amasasystem/amasa-api/internal/application/checkout"
	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

const testOrgID = "org-mostrador-test"

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[int]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(_ string, id int) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
func (r *fakeProductRepo) ListByOrganization(_ string) ([]*entity.Product, error) { return nil, nil }
func (r *fakeProductRepo) Update(_ *entity.Product) error                         { return nil }
func (r *fakeProductRepo) Delete(_ string, _ int) error                           { return nil }
func (r *fakeProductRepo) MaxIDInRange(_ string, _, _ int) (int, error)           { return 0, nil }

type fakeSellerRepo struct {
	sellers map[int]*entity.Seller
}

func (r *fakeSellerRepo) Create(s *entity.Seller) error { r.sellers[s.ID] = s; return nil }
func (r *fakeSellerRepo) GetByID(_ string, id int) (*entity.Seller, error) {
	s, ok := r.sellers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (r *fakeSellerRepo) ListByOrganization(_ string) ([]*entity.Seller, error) { return nil, nil }
func (r *fakeSellerRepo) UpdateCommission(_ *entity.Seller) error               { return nil }
func (r *fakeSellerRepo) UpdateBalance(_ string, _ int, _ decimal.Decimal) error {
	return nil
}
func (r *fakeSellerRepo) Delete(_ string, _ int) error { return nil }

type fakeMovementRepo struct {
	created []*entity.Movement
}

func (r *fakeMovementRepo) CreateBatch(movements []*entity.Movement) error {
	r.created = append(r.created, movements...)
	return nil
}
func (r *fakeMovementRepo) ListByOrganization(_ context.Context, _ string) ([]*entity.Movement, error) {
	return nil, nil
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

type fakePaymentRepo struct {
	created []*entity.Payment
}

func (r *fakePaymentRepo) Create(p *entity.Payment) error { r.created = append(r.created, p); return nil }
func (r *fakePaymentRepo) ExistsForSellerOn(_ context.Context, _ string, _ int, _ time.Time) (bool, error) {
	return false, nil
}

type stubTxRunner struct {
	movementRepo *fakeMovementRepo
	paymentRepo  *fakePaymentRepo
	sellerRepo   *fakeSellerRepo
	runs         int
}

func (s *stubTxRunner) RunSales(_ context.Context, fn func(
	movementRepo repository.MovementRepository,
	paymentRepo repository.PaymentRepository,
	sellerRepo repository.SellerRepository,
) error) error {
	s.runs++
	return fn(s.movementRepo, s.paymentRepo, s.sellerRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildCheckoutFixture() (*checkout.UseCase, *stubTxRunner) {
	productRepo := &fakeProductRepo{products: map[int]*entity.Product{
		100: {ID: 100, OrganizationID: testOrgID, Name: "Bolillo", Price: dec("2.50")},
		200: {ID: 200, OrganizationID: testOrgID, Name: "Concha Vainilla", Price: dec("8")},
	}}
	sellerRepo := &fakeSellerRepo{sellers: map[int]*entity.Seller{
		1: {ID: 1, OrganizationID: testOrgID, Name: "Mostrador"},
	}}
	tx := &stubTxRunner{
		movementRepo: &fakeMovementRepo{},
		paymentRepo:  &fakePaymentRepo{},
		sellerRepo:   sellerRepo,
	}
	return checkout.NewUseCase(tx, productRepo, sellerRepo), tx
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckout_VentaCorrecta(t *testing.T) {
	// 10 bolillos a $2.50 + 2 conchas a $8 = $41; paga $50 → cambio $9.
	uc, tx := buildCheckoutFixture()

	resp, err := uc.Checkout(context.Background(), testOrgID, dto.CheckoutRequest{
		SellerID: 1,
		Items: []dto.CartItem{
			{ProductID: 100, Quantity: 10},
			{ProductID: 200, Quantity: 2},
		},
		AmountPaid: dec("50"),
	})
	require.NoError(t, err, "la venta con carrito válido no debe fallar")

	assert.True(t, resp.Total.Equal(dec("41")), "total: esperado 41, obtenido %s", resp.Total)
	assert.True(t, resp.Change.Equal(dec("9")), "cambio: esperado 9, obtenido %s", resp.Change)
	assert.Len(t, resp.Ticket, 4, "el folio del ticket es de 4 dígitos")

	// Las SALIDAs y el pago quedaron en la misma transacción
	assert.Equal(t, 1, tx.runs)
	require.Len(t, tx.movementRepo.created, 2)
	for _, m := range tx.movementRepo.created {
		assert.Equal(t, entity.MovementSalida, m.Type)
		assert.Equal(t, 1, m.SellerID)
	}

	require.Len(t, tx.paymentRepo.created, 1)
	pago := tx.paymentRepo.created[0]
	assert.Equal(t, entity.PaymentVenta, pago.Kind)
	assert.True(t, pago.Amount.Equal(dec("41")), "el pago registra el total, no lo entregado")
	assert.Contains(t, pago.Notes, resp.Ticket, "las notas del pago llevan el folio del ticket")
}

func TestCheckout_PagoExacto_CambioCero(t *testing.T) {
	uc, _ := buildCheckoutFixture()

	resp, err := uc.Checkout(context.Background(), testOrgID, dto.CheckoutRequest{
		SellerID:   1,
		Items:      []dto.CartItem{{ProductID: 200, Quantity: 1}},
		AmountPaid: dec("8"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Change.Equal(decimal.Zero))
}

func TestCheckout_PagoInsuficiente_RetornaError(t *testing.T) {
	uc, tx := buildCheckoutFixture()

	_, err := uc.Checkout(context.Background(), testOrgID, dto.CheckoutRequest{
		SellerID:   1,
		Items:      []dto.CartItem{{ProductID: 200, Quantity: 2}},
		AmountPaid: dec("10"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput, "pagar menos del total debe rechazarse")
	assert.Equal(t, 0, tx.runs, "una venta rechazada no debe abrir transacción")
}

func TestCheckout_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc, tx := buildCheckoutFixture()

	_, err := uc.Checkout(context.Background(), testOrgID, dto.CheckoutRequest{
		SellerID:   1,
		Items:      []dto.CartItem{{ProductID: 999, Quantity: 1}},
		AmountPaid: dec("100"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, tx.runs)
}

func TestCheckout_VendedorInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := buildCheckoutFixture()

	_, err := uc.Checkout(context.Background(), testOrgID, dto.CheckoutRequest{
		SellerID:   42,
		Items:      []dto.CartItem{{ProductID: 100, Quantity: 1}},
		AmountPaid: dec("100"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
