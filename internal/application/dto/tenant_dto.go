package dto

// ProvisionTenantRequest alta de un negocio completo: organización, usuario
// administrador y catálogo plantilla según el giro.
type ProvisionTenantRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=120"`
	BusinessType string `json:"business_type" validate:"required,oneof=panaderia tortilleria pizzeria"`
	Plan         string `json:"plan" validate:"omitempty,oneof=basic pro"`
	AdminEmail   string `json:"admin_email" validate:"required,email"`
	AdminName    string `json:"admin_name" validate:"required,min=2,max=120"`
	Password     string `json:"password" validate:"required,min=8"`
	AdminPIN     string `json:"admin_pin" validate:"required,len=4,numeric"`
}

// ProvisionTenantResponse resumen de lo sembrado.
type ProvisionTenantResponse struct {
	OrganizationID string `json:"organization_id"`
	AdminUserID    string `json:"admin_user_id"`
	Products       int    `json:"products"`
	Ingredients    int    `json:"ingredients"`
	Sellers        int    `json:"sellers"`
}

// OrganizationDTO datos visibles de la organización.
type OrganizationDTO struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BusinessType string `json:"business_type"`
	Plan         string `json:"plan"`
	TicketHeader string `json:"ticket_header"`
	TicketFooter string `json:"ticket_footer"`
}

// UpdatePlanRequest cambio de plan de la organización.
type UpdatePlanRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic pro"`
}
