package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inventorywise/api/internal/application/dto"
	"github.com/inventorywise/api/internal/domain"
	"github.com/inventorywise/api/internal/domain/entity"
	"github.com/inventorywise/api/pkg/jwt"
)

// memUserRepo fake en memoria del puerto UserRepository.
type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (m *memUserRepo) Create(u *entity.User) error {
	if _, ok := m.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	cp := *u
	m.byEmail[u.Email] = &cp
	return nil
}

func (m *memUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memUserRepo) ListByRoles(roles ...string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range m.byEmail {
		for _, r := range roles {
			if u.Role == r && u.Status == "active" {
				cp := *u
				out = append(out, &cp)
			}
		}
	}
	return out, nil
}

func testCfg() JWTConfig {
	return JWTConfig{
		Secret:        "test-secret",
		AccessMinutes: 120,
		RefreshDays:   7,
		Issuer:        "inventorywise-test",
	}
}

func TestRegister_HasheaPasswordYAsignaRolPorDefecto(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testCfg())

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleStaff, out.Role, "sin rol explícito se asigna staff")
	assert.Equal(t, "active", out.Status)

	stored, _ := repo.FindByEmail("ana@example.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "x12345"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "y12345"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolDesconocido(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testCfg())

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_EmiteAccessYRefresh(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testCfg())
	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	access, err := jwt.Parse("test-secret", out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, jwt.TypeAccess, access.TokenType)
	assert.Equal(t, entity.RoleAdmin, access.Role)

	refresh, err := jwt.ParseRefresh("test-secret", out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, access.UserID, refresh.UserID)

	assert.Equal(t, "ana@example.com", out.User.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testCfg())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := NewAuthUseCase(newMemUserRepo(), testCfg())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRefresh_EmiteParNuevo(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testCfg())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	login, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRefresh_RechazaAccessToken(t *testing.T) {
	repo := newMemUserRepo()
	uc := NewAuthUseCase(repo, testCfg())
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	login, err := uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized,
		"un access token no debe renovar la sesión")
}
