package entity

import "time"

// Tipos de negocio soportados por las plantillas de aprovisionamiento.
const (
	BusinessPanaderia   = "panaderia"
	BusinessTortilleria = "tortilleria"
	BusinessPizzeria    = "pizzeria"
)

// Planes de suscripción. El plan "pro" habilita producción y nómina.
const (
	PlanBasic = "basic"
	PlanPro   = "pro"
)

// Organization representa un tenant: una panadería, tortillería o pizzería.
// Todos los catálogos, movimientos y pagos cuelgan de una organización.
type Organization struct {
	ID           string // uuid
	Name         string
	BusinessType string // panaderia | tortilleria | pizzeria
	Plan         string // basic | pro
	AdminPIN     string // PIN corto para desbloquear la vista admin
	TicketHeader string
	TicketFooter string
	CreatedAt    time.Time
}
