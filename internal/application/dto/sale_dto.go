package dto

// RegisterSaleRequest cuerpo de POST /api/ventas.
// productoId y cantidad pueden llegar como número o como texto numérico.
type RegisterSaleRequest struct {
	ProductoID any    `json:"productoId" swaggertype:"integer"`
	Cantidad   any    `json:"cantidad" swaggertype:"integer"`
	Fecha      string `json:"fecha" example:"2024-01-01"`
	Motivo     string `json:"motivo"`
}

// SaleDTO confirmación de la venta registrada.
type SaleDTO struct {
	ID       int64  `json:"id"`
	Producto string `json:"producto"`
	Cantidad int    `json:"cantidad"`
	Total    string `json:"total" example:"60.00"`
}

// SaleResponse respuesta de POST /api/ventas.
type SaleResponse struct {
	Success    bool    `json:"success"`
	Message    string  `json:"message"`
	NuevoStock int     `json:"nuevoStock"`
	Venta      SaleDTO `json:"venta"`
}

// RegisterEntryRequest cuerpo de POST /api/inventario/entradas.
type RegisterEntryRequest struct {
	ProductoID    any    `json:"productoId" swaggertype:"integer"`
	Cantidad      any    `json:"cantidad" swaggertype:"integer"`
	Fecha         string `json:"fecha" example:"2024-01-01"`
	Motivo        string `json:"motivo"`
	CostoUnitario any    `json:"costoUnitario,omitempty" swaggertype:"number"`
}

// EntryDTO confirmación de la entrada registrada.
type EntryDTO struct {
	ID           int64  `json:"id"`
	Producto     string `json:"producto"`
	Cantidad     int    `json:"cantidad"`
	PrecioCompra string `json:"precioCompra"`
}

// EntryResponse respuesta de POST /api/inventario/entradas.
type EntryResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	NuevoStock int      `json:"nuevoStock"`
	Entrada    EntryDTO `json:"entrada"`
}

// SaleHistoryProduct producto dentro de un registro del historial.
type SaleHistoryProduct struct {
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	PrecioVenta string `json:"precioVenta"`
}

// SaleHistoryUser usuario que registró la venta.
type SaleHistoryUser struct {
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// SaleHistoryItem un registro de GET /api/ventas/historial.
type SaleHistoryItem struct {
	ID       int64              `json:"id"`
	Producto SaleHistoryProduct `json:"producto"`
	Cantidad int                `json:"cantidad"`
	Motivo   string             `json:"motivo"`
	Fecha    string             `json:"fecha"`
	Usuario  SaleHistoryUser    `json:"usuario"`
	Total    string             `json:"total"`
}
