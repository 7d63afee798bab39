package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// APIVersion versión publicada en GET /.
const APIVersion = "2.0.0"

// SystemHandler health check, prueba de base de datos e información de la API.
type SystemHandler struct {
	health  repository.HealthChecker
	service string
	log     *logger.Logger
}

// NewSystemHandler construye el handler.
func NewSystemHandler(health repository.HealthChecker, service string, log *logger.Logger) *SystemHandler {
	return &SystemHandler{health: health, service: service, log: log}
}

// Health godoc
// @Summary      Health check
// @Tags         sistema
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *SystemHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "service": h.service})
}

// TestDB godoc
// @Summary      Probar conexión a la base de datos
// @Tags         sistema
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/test-db [get]
func (h *SystemHandler) TestDB(c *fiber.Ctx) error {
	if err := h.health.Ping(c.UserContext()); err != nil {
		h.log.Error().Err(err).Msg("test-db")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "Error en la base de datos")
	}
	return c.JSON(fiber.Map{"success": true, "message": "Conexión a la base de datos exitosa"})
}

// Info godoc
// @Summary      Información de la API
// @Tags         sistema
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       / [get]
func (h *SystemHandler) Info(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "API Distribuidora Martín",
		"version": APIVersion,
		"endpoints": fiber.Map{
			"auth":       "/api/auth (login, verify, logout, me)",
			"productos":  "/api/productos",
			"usuarios":   "/api/usuarios",
			"ventas":     "/api/ventas",
			"historial":  "/api/ventas/historial",
			"entradas":   "/api/inventario/entradas",
			"reportes":   "/api/reportes (resumen, ventas/pdf, ventas/excel)",
			"health":     "/health",
			"testDB":     "/api/test-db",
			"documentos": "/docs",
		},
	})
}
