package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// Mensajes de usuarios.
const (
	MsgUserCreated   = "Usuario creado exitosamente"
	MsgUserUpdated   = "Usuario actualizado exitosamente"
	MsgUserNotFound  = "Usuario no encontrado"
	MsgUserDuplicate = "El nombre de usuario ya existe"
)

// UserHandler administra usuarios. Todas las rutas requieren rol Administrador.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

func (h *UserHandler) fail(c *fiber.Ctx, err error, server string) error {
	return respondError(c, h.log, err, errorMessages{
		NotFound:  MsgUserNotFound,
		Duplicate: MsgUserDuplicate,
		Server:    server,
	})
}

// List godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.UserResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/usuarios [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.fail(c, err, "Error al obtener usuarios")
	}
	return c.JSON(dto.NewListResponse(out))
}

// Create godoc
// @Summary      Crear usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "nombre_usuario, contraseña, rol, estado"
// @Success      201   {object}  dto.UserCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/usuarios/nuevo [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, "Error al crear el usuario")
	}
	h.log.Info().
		Int64("user_id", out.ID).
		Str("rol", out.Rol).
		Int64("creado_por", GetUserID(c)).
		Msg("usuario creado")
	return c.Status(fiber.StatusCreated).JSON(dto.UserCreatedResponse{
		Success:   true,
		Message:   MsgUserCreated,
		IDUsuario: out.ID,
	})
}

// Update godoc
// @Summary      Actualizar usuario
// @Description  La contraseña solo cambia si se envía.
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "nombre_usuario, rol, contraseña opcional"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if _, err := h.uc.Update(c.UserContext(), id, in); err != nil {
		return h.fail(c, err, "Error al actualizar el usuario")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: MsgUserUpdated})
}

// UpdateStatus godoc
// @Summary      Activar o desactivar usuario
// @Tags         usuarios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "activo | inactivo"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/usuarios/{id}/estado [put]
func (h *UserHandler) UpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateUserStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	msg, err := h.uc.UpdateStatus(c.UserContext(), id, in.Estado)
	if err != nil {
		return h.fail(c, err, "Error al actualizar el estado")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: msg})
}
