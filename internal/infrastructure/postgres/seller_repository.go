package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.SellerRepository = (*SellerRepo)(nil)

// SellerRepo implementación de SellerRepository sobre PostgreSQL (usable con
// pool o tx).
type SellerRepo struct {
	q Querier
}

// NewSellerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSellerRepository(q Querier) *SellerRepo {
	return &SellerRepo{q: q}
}

// Create persiste un vendedor; el ID lo asigna la BD y queda en seller.ID.
func (r *SellerRepo) Create(seller *entity.Seller) error {
	query := `
		INSERT INTO sellers (organization_id, name, route_name, balance, commission_active,
			base_salary, commission_rate, bonus_threshold, bonus_amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		seller.OrganizationID, seller.Name, seller.RouteName, seller.Balance,
		seller.CommissionActive, seller.BaseSalary, seller.CommissionRate,
		seller.BonusThreshold, seller.BonusAmount, seller.CreatedAt,
	).Scan(&seller.ID)
	if err != nil {
		return fmt.Errorf("insert seller: %w", err)
	}
	return nil
}

// GetByID obtiene un vendedor de la organización.
func (r *SellerRepo) GetByID(organizationID string, id int) (*entity.Seller, error) {
	query := `
		SELECT id, organization_id, name, route_name, balance, commission_active,
			base_salary, commission_rate, bonus_threshold, bonus_amount, created_at
		FROM sellers WHERE organization_id = $1 AND id = $2`
	var s entity.Seller
	err := r.q.QueryRow(context.Background(), query, organizationID, id).Scan(
		&s.ID, &s.OrganizationID, &s.Name, &s.RouteName, &s.Balance, &s.CommissionActive,
		&s.BaseSalary, &s.CommissionRate, &s.BonusThreshold, &s.BonusAmount, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return &s, nil
}

// ListByOrganization devuelve el roster ordenado por nombre.
func (r *SellerRepo) ListByOrganization(organizationID string) ([]*entity.Seller, error) {
	query := `
		SELECT id, organization_id, name, route_name, balance, commission_active,
			base_salary, commission_rate, bonus_threshold, bonus_amount, created_at
		FROM sellers WHERE organization_id = $1 ORDER BY name`
	rows, err := r.q.Query(context.Background(), query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("list sellers: %w", err)
	}
	defer rows.Close()

	var out []*entity.Seller
	for rows.Next() {
		var s entity.Seller
		if err := rows.Scan(
			&s.ID, &s.OrganizationID, &s.Name, &s.RouteName, &s.Balance, &s.CommissionActive,
			&s.BaseSalary, &s.CommissionRate, &s.BonusThreshold, &s.BonusAmount, &s.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

// UpdateCommission persiste el esquema de pago del vendedor.
func (r *SellerRepo) UpdateCommission(seller *entity.Seller) error {
	tag, err := r.q.Exec(context.Background(), `
		UPDATE sellers SET commission_active = $3, base_salary = $4, commission_rate = $5,
			bonus_threshold = $6, bonus_amount = $7
		WHERE organization_id = $1 AND id = $2`,
		seller.OrganizationID, seller.ID, seller.CommissionActive, seller.BaseSalary,
		seller.CommissionRate, seller.BonusThreshold, seller.BonusAmount,
	)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateBalance fija el saldo pendiente del vendedor.
func (r *SellerRepo) UpdateBalance(organizationID string, id int, balance decimal.Decimal) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE sellers SET balance = $3 WHERE organization_id = $1 AND id = $2`,
		organizationID, id, balance,
	)
	if err != nil {
		return fmt.Errorf("update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina al vendedor del roster. Su historial de movimientos queda.
func (r *SellerRepo) Delete(organizationID string, id int) error {
	tag, err := r.q.Exec(context.Background(),
		`DELETE FROM sellers WHERE organization_id = $1 AND id = $2`, organizationID, id)
	if err != nil {
		return fmt.Errorf("delete seller: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
