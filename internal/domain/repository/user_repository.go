package repository

import "github.com/amasasystem/amasa-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para perfiles de acceso.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByEmail(email string) (*entity.User, error)
}
