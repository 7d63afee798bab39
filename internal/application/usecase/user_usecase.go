package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

// Mensajes de validación de usuarios.
const (
	MsgUserRequired    = "Nombre de usuario y contraseña son requeridos"
	MsgUsernameMissing = "El nombre de usuario y el rol son requeridos"
	MsgPasswordLength  = "La contraseña debe tener al menos 6 caracteres"
	MsgInvalidRole     = "Rol inválido (Administrador o Empleado)"
	MsgInvalidStatus   = "Estado inválido (activo o inactivo)"
	MsgUserActivated   = "Usuario activado exitosamente"
	MsgUserDeactivated = "Usuario desactivado exitosamente"
)

const minPasswordLength = 6

// UserUseCase aplica reglas de negocio para usuarios (solo administradores llegan aquí).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios sin el hash de contraseña.
func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Create hashea la contraseña con bcrypt y persiste. Nombre duplicado: domain.ErrDuplicate.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.NombreUsuario)
	if username == "" || in.Password == "" {
		return nil, domain.NewValidationError(MsgUserRequired, "nombre_usuario", "contraseña")
	}
	if len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError(MsgPasswordLength, "contraseña")
	}
	role := strings.TrimSpace(in.Rol)
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.ValidRole(role) {
		return nil, domain.NewValidationError(MsgInvalidRole, "rol")
	}
	status := strings.TrimSpace(in.Estado)
	if status == "" {
		status = entity.StatusActive
	}
	if !entity.ValidStatus(status) {
		return nil, domain.NewValidationError(MsgInvalidStatus, "estado")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update cambia nombre y rol; la contraseña se re-hashea solo si viene.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.NombreUsuario)
	role := strings.TrimSpace(in.Rol)
	if username == "" || role == "" {
		return nil, domain.NewValidationError(MsgUsernameMissing, "nombre_usuario", "rol")
	}
	if !entity.ValidRole(role) {
		return nil, domain.NewValidationError(MsgInvalidRole, "rol")
	}
	if in.Password != "" && len(in.Password) < minPasswordLength {
		return nil, domain.NewValidationError(MsgPasswordLength, "contraseña")
	}

	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Username = username
	user.Role = role
	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateStatus activa o desactiva y devuelve el mensaje para el cliente.
func (uc *UserUseCase) UpdateStatus(ctx context.Context, id int64, estado string) (string, error) {
	estado = strings.TrimSpace(estado)
	if !entity.ValidStatus(estado) {
		return "", domain.NewValidationError(MsgInvalidStatus, "estado")
	}
	if err := uc.repo.UpdateStatus(ctx, id, estado); err != nil {
		return "", err
	}
	if estado == entity.StatusActive {
		return MsgUserActivated, nil
	}
	return MsgUserDeactivated, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:            u.ID,
		NombreUsuario: u.Username,
		Rol:           u.Role,
		Estado:        u.Status,
		FechaCreacion: u.CreatedAt,
	}
}
