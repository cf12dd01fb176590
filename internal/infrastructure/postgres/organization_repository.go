package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.OrganizationRepository = (*OrganizationRepo)(nil)

// OrganizationRepo implementación de OrganizationRepository sobre PostgreSQL
// (usable con pool o tx).
type OrganizationRepo struct {
	q Querier
}

// NewOrganizationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrganizationRepository(q Querier) *OrganizationRepo {
	return &OrganizationRepo{q: q}
}

// Create persiste una nueva organización.
func (r *OrganizationRepo) Create(org *entity.Organization) error {
	query := `
		INSERT INTO organizations (id, name, business_type, plan, admin_pin, ticket_header, ticket_footer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		org.ID, org.Name, org.BusinessType, org.Plan, org.AdminPIN,
		org.TicketHeader, org.TicketFooter, org.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert organization: %w", err)
	}
	return nil
}

// GetByID obtiene la organización por ID.
func (r *OrganizationRepo) GetByID(id string) (*entity.Organization, error) {
	query := `
		SELECT id, name, business_type, plan, admin_pin, ticket_header, ticket_footer, created_at
		FROM organizations WHERE id = $1`
	var org entity.Organization
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&org.ID, &org.Name, &org.BusinessType, &org.Plan, &org.AdminPIN,
		&org.TicketHeader, &org.TicketFooter, &org.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get organization: %w", err)
	}
	return &org, nil
}

// List devuelve organizaciones paginadas (uso administrativo).
func (r *OrganizationRepo) List(limit, offset int) ([]*entity.Organization, error) {
	query := `
		SELECT id, name, business_type, plan, admin_pin, ticket_header, ticket_footer, created_at
		FROM organizations ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var out []*entity.Organization
	for rows.Next() {
		var org entity.Organization
		if err := rows.Scan(
			&org.ID, &org.Name, &org.BusinessType, &org.Plan, &org.AdminPIN,
			&org.TicketHeader, &org.TicketFooter, &org.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan organization: %w", err)
		}
		out = append(out, &org)
	}
	return out, rows.Err()
}

// UpdatePlan cambia el plan de la organización.
func (r *OrganizationRepo) UpdatePlan(id, plan string) error {
	tag, err := r.q.Exec(context.Background(),
		`UPDATE organizations SET plan = $2 WHERE id = $1`, id, plan)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
