package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// Códigos de error de la API.
const (
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidID         = "INVALID_ID"
	CodeValidation        = "VALIDATION"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeNotFound          = "NOT_FOUND"
	CodeDuplicate         = "DUPLICATE"
	CodeConflict          = "CONFLICT"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL"
)

// Mensajes comunes.
const (
	MsgInvalidBody  = "Cuerpo de la petición inválido"
	MsgInvalidID    = "ID inválido"
	MsgInvalidCreds = "credenciales inválidas"
	MsgInactiveUser = "Usuario inactivo"
	MsgForbidden    = "No tiene permisos para esta operación"
)

// errorMessages textos para el cliente según el error de dominio.
type errorMessages struct {
	NotFound  string
	Duplicate string
	Conflict  string
	Server    string
}

func errorJSON(c *fiber.Ctx, status int, code, msg string, detalles ...string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Success: false, Code: code, Error: msg, Detalles: detalles})
}

func badBody(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, MsgInvalidBody)
}

func badID(c *fiber.Ctx) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeInvalidID, MsgInvalidID)
}

// paramID lee :id como entero positivo.
func paramID(c *fiber.Ctx) (int64, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return int64(id), true
}

// respondError traduce errores de dominio a la respuesta HTTP. Los 5xx se registran con la causa.
func respondError(c *fiber.Ctx, log *logger.Logger, err error, msgs errorMessages) error {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, ve.Message, ve.Fields...)
	}
	var se *domain.InsufficientStockError
	if errors.As(err, &se) {
		return errorJSON(c, fiber.StatusBadRequest, CodeInsufficientStock, se.Error())
	}

	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, orDefault(msgs.NotFound, "Recurso no encontrado"))
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusBadRequest, CodeDuplicate, orDefault(msgs.Duplicate, "El registro ya existe"))
	case errors.Is(err, domain.ErrConflict):
		return errorJSON(c, fiber.StatusBadRequest, CodeConflict, orDefault(msgs.Conflict, "Operación no permitida"))
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, MsgInvalidCreds)
	case errors.Is(err, domain.ErrInactiveUser):
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, MsgInactiveUser)
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, MsgForbidden)
	}

	log.Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("error interno")
	return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, orDefault(msgs.Server, "Error interno del servidor"))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
