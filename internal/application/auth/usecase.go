package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Turnos-api/internal/application/dto"
	"github.com/jhoicas/Turnos-api/internal/domain"
	"github.com/jhoicas/Turnos-api/internal/domain/authz"
	"github.com/jhoicas/Turnos-api/internal/domain/entity"
	"github.com/jhoicas/Turnos-api/internal/domain/repository"
	"github.com/jhoicas/Turnos-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner ejecuta el callback de registro dentro de una transacción: el
// get-or-create de la organización y el alta del usuario deben ser atómicos.
type TxRunner interface {
	Run(ctx context.Context, fn func(orgs repository.OrganizationRepository, users repository.UserRepository) error) error
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	users  repository.UserRepository
	tx     TxRunner
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(users repository.UserRepository, tx TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{users: users, tx: tx, jwtCfg: jwtCfg}
}

// Register crea un usuario. La organización se busca por nombre y se crea si no
// existe. Los tokens de permiso se validan contra la grilla conocida; un token
// desconocido rechaza todo el registro con ErrValidation.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" || strings.TrimSpace(in.Organization) == "" {
		return nil, domain.ErrValidation
	}
	for _, t := range in.Permissions {
		if _, ok := authz.ParseToken(t); !ok {
			return nil, domain.ErrValidation
		}
	}
	existing, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Permissions:  in.Permissions,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	err = uc.tx.Run(ctx, func(orgs repository.OrganizationRepository, users repository.UserRepository) error {
		org, err := orgs.GetByName(ctx, in.Organization)
		if err != nil {
			return err
		}
		if org == nil {
			org = &entity.Organization{
				ID:        uuid.New().String(),
				Name:      in.Organization,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := orgs.Create(ctx, org); err != nil {
				return err
			}
		}
		user.OrganizationID = org.ID
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password, genera JWT con organización y permisos.
// Username inexistente y password incorrecto responden igual para no revelar
// cuál de los dos falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.OrganizationID, user.Permissions, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	perms := u.Permissions
	if perms == nil {
		perms = []string{}
	}
	return &dto.UserResponse{
		ID:             u.ID,
		OrganizationID: u.OrganizationID,
		Username:       u.Username,
		Permissions:    perms,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
