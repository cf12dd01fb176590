package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User es el perfil de acceso de una persona dentro de una organización.
type User struct {
	ID             string // uuid
	OrganizationID string
	Email          string
	PasswordHash   string // bcrypt hash, nunca plano en dominio después de persistir
	FullName       string
	Role           string // admin | vendedor
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
