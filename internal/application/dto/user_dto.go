package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido y datos mínimos del usuario.
type LoginResponse struct {
	Token          string `json:"token"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
}

// RegisterUserRequest alta de usuario dentro de la organización del admin.
type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Role     string `json:"role" validate:"required,oneof=admin vendedor"`
}

// UserDTO usuario sin hash.
type UserDTO struct {
	ID             string `json:"id"`
	OrganizationID string `json:"organization_id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
}

// VerifyPINRequest verificación del PIN de administrador para operaciones
// sensibles del punto de venta.
type VerifyPINRequest struct {
	PIN string `json:"pin" validate:"required,len=4,numeric"`
}
