package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/distribuidora-api/internal/application/dto"
	"github.com/jhoicas/distribuidora-api/internal/application/usecase"
	"github.com/jhoicas/distribuidora-api/pkg/logger"
)

// Mensajes de productos.
const (
	MsgProductCreated   = "Producto creado exitosamente"
	MsgProductUpdated   = "Producto actualizado exitosamente"
	MsgProductDeleted   = "Producto eliminado exitosamente"
	MsgProductNotFound  = "Producto no encontrado"
	MsgProductDuplicate = "El código del producto ya existe"
	MsgProductHasMoves  = "No se puede eliminar el producto porque tiene movimientos registrados"
	MsgCodeAvailable    = "Código disponible"
	MsgCodeTaken        = "El código ya está en uso"
)

const defaultLowStockLimit = 5

// ProductHandler maneja las peticiones HTTP de productos (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, log: log}
}

func (h *ProductHandler) fail(c *fiber.Ctx, err error, server string) error {
	return respondError(c, h.log, err, errorMessages{
		NotFound:  MsgProductNotFound,
		Duplicate: MsgProductDuplicate,
		Conflict:  MsgProductHasMoves,
		Server:    server,
	})
}

// List godoc
// @Summary      Listar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Filtro por código o nombre"
// @Success      200     {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/productos [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return h.fail(c, err, "Error al obtener productos")
	}
	return c.JSON(dto.NewListResponse(out))
}

// Search godoc
// @Summary      Buscar productos
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        termino  path  string  true  "Código, nombre o descripción"
// @Success      200      {object}  dto.ProductSearchResponse
// @Router       /api/productos/buscar/{termino} [get]
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Params("termino")
	out, err := h.uc.Search(c.UserContext(), term)
	if err != nil {
		return h.fail(c, err, "Error al buscar productos")
	}
	return c.JSON(dto.ProductSearchResponse{ListResponse: dto.NewListResponse(out), Termino: term})
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        max  query  int  false  "Umbral de stock"  default(5)
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/productos/stock-bajo [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	limit := c.QueryInt("max", defaultLowStockLimit)
	if limit < 0 {
		limit = defaultLowStockLimit
	}
	out, err := h.uc.LowStock(c.UserContext(), limit)
	if err != nil {
		return h.fail(c, err, "Error al obtener productos")
	}
	return c.JSON(dto.NewListResponse(out))
}

// CheckCode godoc
// @Summary      Verificar si un código ya existe
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        codigo  path  string  true  "Código"
// @Success      200     {object}  dto.CodeCheckResponse
// @Router       /api/productos/validar-codigo/{codigo} [get]
func (h *ProductHandler) CheckCode(c *fiber.Ctx) error {
	exists, err := h.uc.CodeExists(c.UserContext(), c.Params("codigo"))
	if err != nil {
		return h.fail(c, err, "Error al validar el código")
	}
	msg := MsgCodeAvailable
	if exists {
		msg = MsgCodeTaken
	}
	return c.JSON(dto.CodeCheckResponse{Success: true, Existe: exists, Mensaje: msg})
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "Error al obtener el producto")
	}
	return c.JSON(fiber.Map{"success": true, "data": out})
}

// Create godoc
// @Summary      Crear producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductCreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos/nuevo [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, "Error al crear el producto")
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ProductCreatedResponse{
		Success:    true,
		Message:    MsgProductCreated,
		Data:       *out,
		IDProducto: out.ID,
	})
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         productos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos completos"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.fail(c, err, "Error al actualizar el producto")
	}
	return c.JSON(fiber.Map{"success": true, "message": MsgProductUpdated, "data": out})
}

// Delete godoc
// @Summary      Eliminar producto
// @Description  Solo si ningún movimiento lo referencia.
// @Tags         productos
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err, "Error al eliminar el producto")
	}
	return c.JSON(dto.MessageResponse{Success: true, Message: MsgProductDeleted})
}
