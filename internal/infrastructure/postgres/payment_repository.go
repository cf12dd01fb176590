package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository sobre PostgreSQL (usable
// con pool o tx).
//
// La columna pay_date (fecha calendario del pago) alimenta el índice único
// parcial payments_corte_once_per_day: la BD es quien garantiza "un corte por
// vendedor por día", no el código.
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create inserta el pago. Un segundo corte del mismo vendedor en el mismo día
// viola el índice único y se traduce a ErrRouteAlreadyClosed.
func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (organization_id, seller_id, kind, amount, notes, pay_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::date, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		payment.OrganizationID, payment.SellerID, payment.Kind,
		payment.Amount, payment.Notes, payment.CreatedAt,
	).Scan(&payment.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrRouteAlreadyClosed
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// ExistsForSellerOn informa si el vendedor ya tiene un corte en el día dado.
func (r *PaymentRepo) ExistsForSellerOn(ctx context.Context, organizationID string, sellerID int, day time.Time) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM payments
			WHERE organization_id = $1 AND seller_id = $2 AND kind = $3 AND pay_date = $4::date
		)`, organizationID, sellerID, entity.PaymentCorte, day,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists payment: %w", err)
	}
	return exists, nil
}
