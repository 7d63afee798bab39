package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/auth"
	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/domain"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// MsgLogout mensaje de cierre de sesión.
const MsgLogout = "Logout exitoso"

// AuthHandler maneja login, verificación y logout.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	session SessionConfig
	log     *logger.Logger
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, session SessionConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, session: session, log: log}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  Devuelve el token y además lo deja en una cookie HttpOnly.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err, errorMessages{Server: "Error al iniciar sesión"})
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    out.Token,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	h.log.Info().Int64("user_id", out.User.ID).Str("username", out.User.Username).Msg("login")
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(c.UserContext(), GetUserID(c))
	if err != nil {
		return h.sessionError(c, err)
	}
	return c.JSON(dto.SessionResponse{Success: true, User: *user})
}

// Me godoc
// @Summary      Usuario de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return h.Verify(c)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     h.session.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.session.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.MessageResponse{Success: true, Message: MsgLogout})
}

// sessionError: usuario borrado o desactivado después de emitir el token → 401.
func (h *AuthHandler) sessionError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return errorJSON(c, fiber.StatusUnauthorized, CodeUnauthorized, MsgNotAuthenticated)
	}
	return respondError(c, h.log, err, errorMessages{})
}
