package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/internal/infrastructure/memory"
)

func TestUserCreate_HasheaYDefaults(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewUserUseCase(s.Users())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateUserRequest{NombreUsuario: "maria", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, "Empleado", out.Rol)
	assert.Equal(t, "activo", out.Estado)

	stored, err := s.Users().GetByUsername(ctx, "maria")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))

	_, err = uc.Create(ctx, dto.CreateUserRequest{NombreUsuario: "maria", Password: "otra123"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_Validaciones(t *testing.T) {
	uc := usecase.NewUserUseCase(memory.NewStore().Users())
	ctx := context.Background()

	cases := map[string]dto.CreateUserRequest{
		"sin password":    {NombreUsuario: "x"},
		"password corto":  {NombreUsuario: "x", Password: "123"},
		"rol inválido":    {NombreUsuario: "x", Password: "123456", Rol: "Gerente"},
		"estado inválido": {NombreUsuario: "x", Password: "123456", Estado: "suspendido"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestUserUpdate_PasswordOpcional(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewUserUseCase(s.Users())
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateUserRequest{NombreUsuario: "maria", Password: "secreta"})
	require.NoError(t, err)
	before, err := s.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.ID, dto.UpdateUserRequest{NombreUsuario: "maria.g", Rol: "Administrador"})
	require.NoError(t, err)
	assert.Equal(t, "maria.g", out.NombreUsuario)
	assert.Equal(t, "Administrador", out.Rol)

	after, err := s.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash, "sin contraseña no se cambia el hash")

	_, err = uc.Update(ctx, created.ID, dto.UpdateUserRequest{NombreUsuario: "maria.g", Rol: "Administrador", Password: "nueva123"})
	require.NoError(t, err)
	after, err = s.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(after.PasswordHash), []byte("nueva123")))

	_, err = uc.Update(ctx, 999, dto.UpdateUserRequest{NombreUsuario: "x", Rol: "Empleado"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserUpdateStatus(t *testing.T) {
	s := memory.NewStore()
	uc := usecase.NewUserUseCase(s.Users())
	ctx := context.Background()
	created, err := uc.Create(ctx, dto.CreateUserRequest{NombreUsuario: "maria", Password: "secreta"})
	require.NoError(t, err)

	msg, err := uc.UpdateStatus(ctx, created.ID, "inactivo")
	require.NoError(t, err)
	assert.Equal(t, "Usuario desactivado exitosamente", msg)

	msg, err = uc.UpdateStatus(ctx, created.ID, "activo")
	require.NoError(t, err)
	assert.Equal(t, "Usuario activado exitosamente", msg)

	_, err = uc.UpdateStatus(ctx, created.ID, "borrado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.UpdateStatus(ctx, 999, "activo")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
