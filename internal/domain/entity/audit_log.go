package entity

import "time"

// AuditLog es una entrada de bitácora append-only (solo escritura desde los
// casos de uso; el admin la consulta en su panel).
type AuditLog struct {
	ID             int64
	OrganizationID string
	Action         string // etiqueta corta: "Producción", "Compra Insumo", ...
	Details        string
	CreatedAt      time.Time
}
