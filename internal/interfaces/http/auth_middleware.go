package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/pkg/jwt"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// Locals keys de la sesión en Fiber.
const (
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// Mensajes de sesión.
const (
	MsgNotAuthenticated = "No autenticado"
	MsgInvalidSession   = "Sesión inválida o expirada"
)

// SessionConfig datos para leer el token de sesión. Issuer vacío no se verifica.
type SessionConfig struct {
	Secret       string
	Issuer       string
	CookieName   string
	CookieSecure bool
}

// AuthMiddleware valida el token de sesión (cookie primero, luego Bearer) y carga
// user_id, username y role en c.Locals.
func AuthMiddleware(cfg SessionConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := sessionToken(c, cfg.CookieName)
		if tokenString == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_TOKEN", MsgNotAuthenticated)
		}
		session, err := jwt.Parse(cfg.Secret, tokenString, cfg.Issuer)
		if err != nil {
			return errorJSON(c, fiber.StatusUnauthorized, "INVALID_TOKEN", MsgInvalidSession)
		}
		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalUsername, session.Username)
		c.Locals(LocalRole, session.Role)
		return c.Next()
	}
}

// SessionLookup relee el usuario de la sesión (lo implementa auth.AuthUseCase).
type SessionLookup interface {
	CurrentUser(ctx context.Context, userID int64) (*dto.SessionUser, error)
}

// RefreshSession va después de AuthMiddleware: relee el usuario y reemplaza username y role
// con los actuales. Un usuario borrado o desactivado recibe 401 aunque su token siga vigente.
func RefreshSession(users SessionLookup, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := users.CurrentUser(c.UserContext(), GetUserID(c))
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, MsgNotAuthenticated)
			}
			return respondError(c, log, err, errorMessages{})
		}
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalRole, user.Role)
		return c.Next()
	}
}

func sessionToken(c *fiber.Ctx, cookieName string) string {
	if cookieName != "" {
		if v := strings.TrimSpace(c.Cookies(cookieName)); v != "" {
			return v
		}
	}
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireRole deja pasar solo a los roles indicados. Debe ir después de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return errorJSON(c, fiber.StatusUnauthorized, "MISSING_ROLE", MsgInvalidSession)
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, MsgForbidden)
	}
}

// GetUserID devuelve el id del usuario de la sesión (0 si no hay).
func GetUserID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(LocalUserID).(int64)
	return id
}

// GetUsername devuelve el nombre de usuario de la sesión.
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetRole devuelve el rol de la sesión.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}
