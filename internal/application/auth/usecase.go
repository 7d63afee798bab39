package auth

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/jwt"
)

// Mensajes de login.
const (
	MsgLoginRequired = "Usuario y contraseña son requeridos"
	MsgLoginOK       = "Login exitoso"
)

// dummyHash se compara cuando el usuario no existe para que ambos casos tarden lo mismo.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("distribuidora-dummy"), bcrypt.DefaultCost)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y sesión actual.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// HashPassword genera el hash bcrypt de una contraseña.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login verifica usuario/contraseña y genera el token de sesión.
// Usuario inexistente y contraseña incorrecta devuelven el mismo domain.ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.NewValidationError(MsgLoginRequired, "username", "password")
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(in.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsActive() {
		return nil, domain.ErrInactiveUser
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success:   true,
		Message:   MsgLoginOK,
		User:      toSessionUser(user),
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute),
	}, nil
}

// CurrentUser relee el usuario de la sesión; si fue borrado o desactivado la sesión deja de valer.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID int64) (*dto.SessionUser, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive() {
		return nil, domain.ErrUnauthorized
	}
	su := toSessionUser(user)
	return &su, nil
}

func toSessionUser(u *entity.User) dto.SessionUser {
	return dto.SessionUser{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Username,
	}
}
