package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// EntryHandler registra ingresos de mercadería (rol Administrador).
type EntryHandler struct {
	uc  *inventory.RegisterEntryUseCase
	log *logger.Logger
}

// NewEntryHandler construye el handler.
func NewEntryHandler(uc *inventory.RegisterEntryUseCase, log *logger.Logger) *EntryHandler {
	return &EntryHandler{uc: uc, log: log}
}

// Register godoc
// @Summary      Registrar entrada de inventario
// @Description  Con costoUnitario recalcula el precio de compra por promedio ponderado.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterEntryRequest  true  "productoId, cantidad, fecha, motivo, costoUnitario"
// @Success      200   {object}  dto.EntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventario/entradas [post]
func (h *EntryHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RegisterEntry(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err, errorMessages{
			NotFound: MsgProductNotFound,
			Server:   "Error al registrar la entrada",
		})
	}
	return c.JSON(out)
}
