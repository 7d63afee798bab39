package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/distribuidora-api/internal/domain/entity"
	"github.com/jhoicas/distribuidora-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo movimientos de inventario sobre PostgreSQL.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create inserta el movimiento y completa ID y CreatedAt.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	query := `
		INSERT INTO movimientos (id_producto, id_usuario, id_tipo_movimiento, cantidad, fecha_movimiento, motivo)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id_movimiento, created_at`
	err := r.q.QueryRow(ctx, query,
		m.ProductID, m.UserID, m.MovementTypeID, m.Quantity, m.Date, m.Reason,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// CountByProduct cuántos movimientos referencian al producto.
func (r *MovementRepo) CountByProduct(ctx context.Context, productID int64) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM movimientos WHERE id_producto = $1`, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count movements: %w", err)
	}
	return n, nil
}

// ListSales historial de ventas con producto y usuario.
func (r *MovementRepo) ListSales(ctx context.Context, filter repository.SaleFilter) ([]*entity.SaleRecord, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT m.id_movimiento, p.codigo, p.nombre, p.precio_venta, m.cantidad, m.motivo,
		       m.fecha_movimiento, m.created_at, u.nombre_usuario, u.rol
		FROM movimientos m
		JOIN productos p        ON p.id_producto = m.id_producto
		JOIN usuarios u         ON u.id_usuario = m.id_usuario
		JOIN tipos_movimiento t ON t.id_tipo_movimiento = m.id_tipo_movimiento
		WHERE t.nombre = $1`)
	args := []any{entity.MovementTypeSalida}
	if filter.From != nil {
		args = append(args, *filter.From)
		fmt.Fprintf(&sb, " AND m.fecha_movimiento >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		fmt.Fprintf(&sb, " AND m.fecha_movimiento <= $%d", len(args))
	}
	sb.WriteString(" ORDER BY m.fecha_movimiento DESC, m.created_at DESC")

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list := []*entity.SaleRecord{}
	for rows.Next() {
		var s entity.SaleRecord
		if err := rows.Scan(&s.MovementID, &s.ProductCode, &s.ProductName, &s.ProductSalePrice, &s.Quantity,
			&s.Reason, &s.Date, &s.CreatedAt, &s.Username, &s.UserRole); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
