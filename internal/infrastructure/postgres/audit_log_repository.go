package postgres

import (
	"context"
	"fmt"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository sobre PostgreSQL (usable
// con pool o tx).
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Create agrega una entrada a la bitácora.
func (r *AuditLogRepo) Create(entry *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (organization_id, action, details, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		entry.OrganizationID, entry.Action, entry.Details, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListRecent devuelve las últimas entradas de la bitácora.
func (r *AuditLogRepo) ListRecent(organizationID string, limit int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, organization_id, action, details, created_at
		FROM audit_logs WHERE organization_id = $1
		ORDER BY created_at DESC LIMIT $2`
	rows, err := r.q.Query(context.Background(), query, organizationID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditLog
	for rows.Next() {
		var entry entity.AuditLog
		if err := rows.Scan(
			&entry.ID, &entry.OrganizationID, &entry.Action, &entry.Details, &entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		out = append(out, &entry)
	}
	return out, rows.Err()
}
