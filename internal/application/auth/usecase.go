// Package auth casos de uso de autenticación: registro, login y refresh.
package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/internal/domain/repository"
	"github.com/inventorywise/api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret        string
	AccessMinutes int
	RefreshDays   int
	Issuer        string
}

// AuthUseCase casos de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: hashea el password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	role := in.Role
	switch role {
	case entity.RoleAdmin, entity.RoleStockManager, entity.RoleStaff:
	case "":
		role = entity.RoleStaff
	default:
		return nil, domain.ErrInvalidInput
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password y retorna el par access/refresh más el usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
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
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	access, refresh, err := uc.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *toUserResponse(user),
	}, nil
}

// Refresh valida el refresh token y emite un par nuevo. El rol se relee de la
// DB por si cambió desde la emisión original.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	claims, err := jwt.ParseRefresh(uc.jwtCfg.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	access, refresh, err := uc.issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (uc *AuthUseCase) issueTokens(user *entity.User) (access, refresh string, err error) {
	access, err = jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.AccessMinutes)
	if err != nil {
		return "", "", err
	}
	refresh, err = jwt.GenerateRefresh(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.RefreshDays)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
