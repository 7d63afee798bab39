package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRequest query params de /api/reportes/*.
type ReportRequest struct {
	FechaDesde string `query:"fechaDesde"` // YYYY-MM-DD
	FechaHasta string `query:"fechaHasta"` // YYYY-MM-DD
	Tipo       string `query:"tipo"`       // Salida (defecto) | Entrada | todos
	Limite     int    `query:"limite"`     // defecto 100, máx 1000
}

// ReportPeriodDTO período efectivo del reporte.
type ReportPeriodDTO struct {
	Desde time.Time `json:"desde"`
	Hasta time.Time `json:"hasta"`
}

// ReportSummaryDTO totales del período.
type ReportSummaryDTO struct {
	Movimientos   int             `json:"movimientos"`
	Unidades      int64           `json:"unidades"`
	Ingresos      decimal.Decimal `json:"ingresos"`
	Costo         decimal.Decimal `json:"costo"`
	GananciaBruta decimal.Decimal `json:"gananciaBruta"`
	MargenPct     decimal.Decimal `json:"margenPct"`
}

// ProductReportDTO fila por producto.
type ProductReportDTO struct {
	ProductoID       int64           `json:"productoId"`
	Codigo           string          `json:"codigo"`
	Nombre           string          `json:"nombre"`
	Unidades         int64           `json:"unidades"`
	Ingresos         decimal.Decimal `json:"ingresos"`
	Costo            decimal.Decimal `json:"costo"`
	Ganancia         decimal.Decimal `json:"ganancia"`
	MargenPct        decimal.Decimal `json:"margenPct"`
	ParticipacionPct decimal.Decimal `json:"participacionPct"`
}

// MovementReportDTO detalle de movimiento.
type MovementReportDTO struct {
	ID             int64           `json:"id"`
	Fecha          time.Time       `json:"fecha"`
	Tipo           string          `json:"tipo"`
	Codigo         string          `json:"codigo"`
	Producto       string          `json:"producto"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precioUnitario"`
	Total          decimal.Decimal `json:"total"`
	Usuario        string          `json:"usuario"`
	Motivo         string          `json:"motivo"`
}

// ReportResponse reporte completo (JSON y base de PDF/Excel).
type ReportResponse struct {
	Success     bool                `json:"success"`
	Periodo     ReportPeriodDTO     `json:"periodo"`
	Tipo        string              `json:"tipo"`
	Resumen     ReportSummaryDTO    `json:"resumen"`
	Productos   []ProductReportDTO  `json:"productos"`
	Movimientos []MovementReportDTO `json:"movimientos"`
	GeneradoEn  time.Time           `json:"generadoEn"`
}
