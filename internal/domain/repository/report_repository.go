package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ReportFilter parámetros comunes de las consultas de reporte.
// TypeName vacío incluye todos los tipos de movimiento.
type ReportFilter struct {
	From     time.Time
	To       time.Time
	TypeName string
	Limit    int
}

// ReportTotals totales crudos del período.
type ReportTotals struct {
	Movements int
	Units     int64
	Revenue   decimal.Decimal // Σ cantidad × precio_venta
	Cost      decimal.Decimal // Σ cantidad × precio_compra
}

// ProductReportRow agregado por producto.
type ProductReportRow struct {
	ProductID int64
	Code      string
	Name      string
	Units     int64
	Revenue   decimal.Decimal
	Cost      decimal.Decimal
}

// MovementReportRow detalle de un movimiento para el reporte.
type MovementReportRow struct {
	MovementID  int64
	Date        time.Time
	TypeName    string
	ProductCode string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Username    string
	Reason      string
}

// ReportRepository consultas de solo lectura para reportes.
type ReportRepository interface {
	GetTotals(ctx context.Context, f ReportFilter) (ReportTotals, error)
	GetProductRows(ctx context.Context, f ReportFilter) ([]ProductReportRow, error)
	GetMovementRows(ctx context.Context, f ReportFilter) ([]MovementReportRow, error)
}

// HealthChecker verifica la conexión con el almacenamiento.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
