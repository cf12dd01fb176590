package repository

import "github.com/amasasystem/amasa-api/internal/domain/entity"

// AuditLogRepository define el puerto de la bitácora (append-only).
type AuditLogRepository interface {
	Create(entry *entity.AuditLog) error
	ListRecent(organizationID string, limit int) ([]*entity.AuditLog, error)
}
