package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre PostgreSQL (usable
// con pool o tx). El ledger es append-only: solo INSERT y SELECT.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// CreateBatch inserta el lote de movimientos. Llamar dentro de una tx cuando
// el lote debe ser atómico con otras escrituras.
func (r *MovementRepo) CreateBatch(movements []*entity.Movement) error {
	query := `
		INSERT INTO movements (organization_id, seller_id, product_id, quantity, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	for _, m := range movements {
		err := r.q.QueryRow(context.Background(), query,
			m.OrganizationID, m.SellerID, m.ProductID, m.Quantity, m.Type, m.CreatedAt,
		).Scan(&m.ID)
		if err != nil {
			return fmt.Errorf("insert movement: %w", err)
		}
	}
	return nil
}

// ListByOrganization trae el historial completo del tenant (snapshot del
// pronóstico de producción).
func (r *MovementRepo) ListByOrganization(ctx context.Context, organizationID string) ([]*entity.Movement, error) {
	query := `
		SELECT id, organization_id, seller_id, product_id, quantity, type, created_at
		FROM movements WHERE organization_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(
			&m.ID, &m.OrganizationID, &m.SellerID, &m.ProductID, &m.Quantity, &m.Type, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		out = append(out, &m)
	}
	return out, rows.Err()
}

// ListPricedInRange trae los movimientos del rango de días con el precio
// ACTUAL del producto unido. Movimientos de productos borrados valen $0.
func (r *MovementRepo) ListPricedInRange(ctx context.Context, organizationID string, from, to time.Time) ([]repository.PricedMovementRow, error) {
	query := `
		SELECT m.seller_id, m.type, m.quantity, COALESCE(p.price, 0)
		FROM movements m
		LEFT JOIN products p ON p.organization_id = m.organization_id AND p.id = m.product_id
		WHERE m.organization_id = $1
		  AND m.created_at::date BETWEEN $2::date AND $3::date`
	rows, err := r.q.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list priced movements: %w", err)
	}
	defer rows.Close()

	var out []repository.PricedMovementRow
	for rows.Next() {
		var row repository.PricedMovementRow
		if err := rows.Scan(&row.SellerID, &row.Type, &row.Quantity, &row.Price); err != nil {
			return nil, fmt.Errorf("scan priced movement: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListDayDetailed trae los movimientos del día con vendedor y producto
// resueltos. Vendedor o producto borrados llegan con nombre vacío/placeholder
// y el agregador decide cómo presentarlos.
func (r *MovementRepo) ListDayDetailed(ctx context.Context, organizationID string, day time.Time) ([]repository.DayMovementRow, error) {
	query := `
		SELECT m.seller_id, COALESCE(s.name, ''), COALESCE(p.name, 'Producto'),
		       COALESCE(p.price, 0), m.quantity, m.type
		FROM movements m
		LEFT JOIN sellers s ON s.organization_id = m.organization_id AND s.id = m.seller_id
		LEFT JOIN products p ON p.organization_id = m.organization_id AND p.id = m.product_id
		WHERE m.organization_id = $1 AND m.created_at::date = $2::date`
	rows, err := r.q.Query(ctx, query, organizationID, day)
	if err != nil {
		return nil, fmt.Errorf("list day movements: %w", err)
	}
	defer rows.Close()

	var out []repository.DayMovementRow
	for rows.Next() {
		var row repository.DayMovementRow
		if err := rows.Scan(
			&row.SellerID, &row.SellerName, &row.ProductName, &row.Price, &row.Quantity, &row.Type,
		); err != nil {
			return nil, fmt.Errorf("scan day movement: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListSellerDispatchOn trae las SALIDAs del vendedor en el día indicado
// (base del corte de caja).
func (r *MovementRepo) ListSellerDispatchOn(ctx context.Context, organizationID string, sellerID int, day time.Time) ([]repository.DispatchRow, error) {
	query := `
		SELECT m.product_id, COALESCE(p.name, 'Producto'), COALESCE(p.price, 0), m.quantity
		FROM movements m
		LEFT JOIN products p ON p.organization_id = m.organization_id AND p.id = m.product_id
		WHERE m.organization_id = $1 AND m.seller_id = $2
		  AND m.type = $3 AND m.created_at::date = $4::date`
	rows, err := r.q.Query(ctx, query, organizationID, sellerID, entity.MovementSalida, day)
	if err != nil {
		return nil, fmt.Errorf("list seller dispatch: %w", err)
	}
	defer rows.Close()

	var out []repository.DispatchRow
	for rows.Next() {
		var row repository.DispatchRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Price, &row.Quantity); err != nil {
			return nil, fmt.Errorf("scan seller dispatch: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
