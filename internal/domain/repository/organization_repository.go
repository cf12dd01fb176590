package repository

import "github.com/amasasystem/amasa-api/internal/domain/entity"

// OrganizationRepository define el puerto de persistencia para tenants (DIP).
type OrganizationRepository interface {
	Create(org *entity.Organization) error
	GetByID(id string) (*entity.Organization, error)
	List(limit, offset int) ([]*entity.Organization, error)
	UpdatePlan(id, plan string) error
}
