// Package auth contiene los casos de uso de autenticación: login, alta de
// usuarios y verificación del PIN de administrador.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/amasasystem/amasa-api/internal/application/dto"
	"github.com/amasasystem/amasa-api/internal/domain"
	"github.com/amasasystem/amasa-api/internal/domain/entity"
	"github.com/amasasystem/amasa-api/internal/domain/repository"
	"github.com/amasasystem/amasa-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación.
type UseCase struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	jwtCfg   JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{userRepo: userRepo, orgRepo: orgRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.OrganizationID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:          token,
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		FullName:       user.FullName,
		Role:           user.Role,
	}, nil
}

// RegisterUser crea un usuario dentro de la organización indicada. Devuelve
// ErrEmailAlreadyExists si el email ya está registrado.
func (uc *UseCase) RegisterUser(organizationID string, in dto.RegisterUserRequest) (*dto.UserDTO, error) {
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if _, err := uc.orgRepo.GetByID(organizationID); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:             uuid.New().String(),
		OrganizationID: organizationID,
		Email:          in.Email,
		PasswordHash:   string(hash),
		FullName:       in.FullName,
		Role:           in.Role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return &dto.UserDTO{
		ID:             user.ID,
		OrganizationID: user.OrganizationID,
		Email:          user.Email,
		FullName:       user.FullName,
		Role:           user.Role,
	}, nil
}

// VerifyPIN compara el PIN capturado contra el PIN de administrador de la
// organización. Se usa para desbloquear acciones sensibles del punto de venta.
func (uc *UseCase) VerifyPIN(organizationID, pin string) error {
	org, err := uc.orgRepo.GetByID(organizationID)
	if err != nil {
		return err
	}
	if org.AdminPIN != pin {
		return domain.ErrUnauthorized
	}
	return nil
}
