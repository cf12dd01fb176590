package repository

import (
	"github.com/shopspring/decimal"

	"github.com/amasasystem/amasa-api/internal/domain/entity"
)

// SellerRepository define el puerto de persistencia para vendedores.
type SellerRepository interface {
	Create(seller *entity.Seller) error
	GetByID(organizationID string, id int) (*entity.Seller, error)
	ListByOrganization(organizationID string) ([]*entity.Seller, error)
	UpdateCommission(seller *entity.Seller) error
	UpdateBalance(organizationID string, id int, balance decimal.Decimal) error
	Delete(organizationID string, id int) error
}
