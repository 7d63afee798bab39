package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/inventory"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// SaleHandler registra ventas y expone el historial.
type SaleHandler struct {
	register *inventory.RegisterSaleUseCase
	history  *inventory.SalesHistoryUseCase
	log      *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(register *inventory.RegisterSaleUseCase, history *inventory.SalesHistoryUseCase, log *logger.Logger) *SaleHandler {
	return &SaleHandler{register: register, history: history, log: log}
}

// Register godoc
// @Summary      Registrar venta
// @Description  Valida stock, registra el movimiento de salida y descuenta el stock en una sola transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "productoId, cantidad, fecha, motivo"
// @Success      200   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *SaleHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.register.RegisterSale(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, h.log, err, errorMessages{
			NotFound: MsgProductNotFound,
			Server:   "Error al registrar la venta",
		})
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de ventas
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        fechaDesde  query  string  false  "YYYY-MM-DD"
// @Param        fechaHasta  query  string  false  "YYYY-MM-DD"
// @Success      200         {object}  dto.ListResponse[dto.SaleHistoryItem]
// @Failure      400         {object}  dto.ErrorResponse
// @Router       /api/ventas/historial [get]
func (h *SaleHandler) History(c *fiber.Ctx) error {
	out, err := h.history.List(c.UserContext(), c.Query("fechaDesde"), c.Query("fechaHasta"))
	if err != nil {
		return respondError(c, h.log, err, errorMessages{Server: "Error al obtener el historial de ventas"})
	}
	return c.JSON(dto.NewListResponse(out))
}
