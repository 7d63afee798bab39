package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest cuerpo de POST /api/productos/nuevo. Precios como número o texto.
type CreateProductRequest struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra" swaggertype:"number"`
	PrecioVenta  decimal.Decimal `json:"precio_venta" swaggertype:"number"`
	StockActual  *int            `json:"stock_actual"` // por defecto 1
}

// UpdateProductRequest cuerpo de PUT /api/productos/:id (actualización completa).
type UpdateProductRequest struct {
	Codigo       string          `json:"codigo"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	PrecioCompra decimal.Decimal `json:"precio_compra" swaggertype:"number"`
	PrecioVenta  decimal.Decimal `json:"precio_venta" swaggertype:"number"`
	StockActual  *int            `json:"stock_actual"` // requerido
}

// ProductResponse salida de un producto con los nombres de columna del frontend.
type ProductResponse struct {
	ID                 int64      `json:"id_producto"`
	Codigo             string     `json:"codigo"`
	Nombre             string     `json:"nombre"`
	Descripcion        string     `json:"descripcion"`
	PrecioCompra       string     `json:"precio_compra" example:"12.50"`
	PrecioVenta        string     `json:"precio_venta" example:"20.00"`
	StockActual        int        `json:"stock_actual"`
	FechaCreacion      time.Time  `json:"fecha_creacion"`
	FechaActualizacion *time.Time `json:"fecha_actualizacion"`
}

// ProductCreatedResponse respuesta 201 de creación.
type ProductCreatedResponse struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       ProductResponse `json:"data"`
	IDProducto int64           `json:"id_producto"`
}

// ProductSearchResponse respuesta de /api/productos/buscar/:termino.
type ProductSearchResponse struct {
	ListResponse[ProductResponse]
	Termino string `json:"termino"`
}

// CodeCheckResponse respuesta de /api/productos/validar-codigo/:codigo.
type CodeCheckResponse struct {
	Success bool   `json:"success"`
	Existe  bool   `json:"existe"`
	Mensaje string `json:"mensaje"`
}
