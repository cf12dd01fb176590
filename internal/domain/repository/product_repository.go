package repository

import "github.com/amasasystem/amasa-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para productos.
// Los IDs son explícitos (convención de familias por rango), no seriales.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(organizationID string, id int) (*entity.Product, error)
	ListByOrganization(organizationID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(organizationID string, id int) error
	// MaxIDInRange devuelve el mayor ID usado dentro de [base, max] para la
	// organización, o 0 si la familia está vacía.
	MaxIDInRange(organizationID string, base, max int) (int, error)
}
