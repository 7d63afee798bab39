package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de ventas y entradas.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// Filtro común: $1 desde, $2 hasta, $3 nombre de tipo ('' = todos).
const reportWhere = `
	WHERE m.fecha_movimiento BETWEEN $1::date AND $2::date
	  AND ($3 = '' OR t.nombre = $3)`

// GetTotals cantidad de movimientos, unidades, ingresos y costo del período.
// Usa COALESCE para devolver cero si no hay filas.
func (r *ReportRepo) GetTotals(ctx context.Context, f repository.ReportFilter) (repository.ReportTotals, error) {
	const query = `
	SELECT
	    COUNT(m.id_movimiento)                            AS movimientos,
	    COALESCE(SUM(m.cantidad), 0)                      AS unidades,
	    COALESCE(SUM(m.cantidad * p.precio_venta), 0)     AS ingresos,
	    COALESCE(SUM(m.cantidad * p.precio_compra), 0)    AS costo
	FROM movimientos m
	JOIN productos p        ON p.id_producto = m.id_producto
	JOIN tipos_movimiento t ON t.id_tipo_movimiento = m.id_tipo_movimiento` + reportWhere

	var out repository.ReportTotals
	err := r.q.QueryRow(ctx, query, f.From, f.To, f.TypeName).
		Scan(&out.Movements, &out.Units, &out.Revenue, &out.Cost)
	if err != nil {
		return repository.ReportTotals{}, fmt.Errorf("report.GetTotals: %w", err)
	}
	return out, nil
}

// GetProductRows agregado por producto ordenado por ingresos.
func (r *ReportRepo) GetProductRows(ctx context.Context, f repository.ReportFilter) ([]repository.ProductReportRow, error) {
	const query = `
	SELECT
	    p.id_producto,
	    p.codigo,
	    p.nombre,
	    SUM(m.cantidad)                    AS unidades,
	    SUM(m.cantidad * p.precio_venta)   AS ingresos,
	    SUM(m.cantidad * p.precio_compra)  AS costo
	FROM movimientos m
	JOIN productos p        ON p.id_producto = m.id_producto
	JOIN tipos_movimiento t ON t.id_tipo_movimiento = m.id_tipo_movimiento` + reportWhere + `
	GROUP BY p.id_producto, p.codigo, p.nombre
	ORDER BY ingresos DESC, p.nombre
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, f.From, f.To, f.TypeName, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("report.GetProductRows: %w", err)
	}
	defer rows.Close()

	results := []repository.ProductReportRow{}
	for rows.Next() {
		var row repository.ProductReportRow
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.Units, &row.Revenue, &row.Cost); err != nil {
			return nil, fmt.Errorf("report.GetProductRows scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.GetProductRows rows: %w", err)
	}
	return results, nil
}

// GetMovementRows detalle de movimientos, más recientes primero.
func (r *ReportRepo) GetMovementRows(ctx context.Context, f repository.ReportFilter) ([]repository.MovementReportRow, error) {
	const query = `
	SELECT
	    m.id_movimiento,
	    m.fecha_movimiento,
	    t.nombre,
	    p.codigo,
	    p.nombre,
	    m.cantidad,
	    p.precio_venta,
	    m.cantidad * p.precio_venta AS total,
	    u.nombre_usuario,
	    m.motivo
	FROM movimientos m
	JOIN productos p        ON p.id_producto = m.id_producto
	JOIN usuarios u         ON u.id_usuario = m.id_usuario
	JOIN tipos_movimiento t ON t.id_tipo_movimiento = m.id_tipo_movimiento` + reportWhere + `
	ORDER BY m.fecha_movimiento DESC, m.created_at DESC
	LIMIT $4`

	rows, err := r.q.Query(ctx, query, f.From, f.To, f.TypeName, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("report.GetMovementRows: %w", err)
	}
	defer rows.Close()

	results := []repository.MovementReportRow{}
	for rows.Next() {
		var row repository.MovementReportRow
		if err := rows.Scan(&row.MovementID, &row.Date, &row.TypeName, &row.ProductCode, &row.ProductName,
			&row.Quantity, &row.UnitPrice, &row.Total, &row.Username, &row.Reason); err != nil {
			return nil, fmt.Errorf("report.GetMovementRows scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report.GetMovementRows rows: %w", err)
	}
	return results, nil
}
